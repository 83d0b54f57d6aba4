package usecase

import (
	"context"
	"errors"
	"testing"

	"aquashield/internal/domain/entities"
	mock_interfaces "aquashield/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.Register(context.Background(), "  ", "jo@example.com", "secret")
		if !errors.Is(err, ErrMissingAuthFields) {
			t.Fatalf("expected ErrMissingAuthFields, got %v", err)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(entities.User{ID: "user-1"}, nil)

		_, err := uc.Register(context.Background(), "Jo", "JO@example.com", "secret")
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("repo lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(entities.User{}, errors.New("db"))

		_, err := uc.Register(context.Background(), "Jo", "jo@example.com", "secret")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success hashes password and normalizes email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user entities.User) (entities.User, error) {
				if user.ID == "" || user.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamp: %+v", user)
				}
				if user.Email != "jo@example.com" || user.Name != "Jo" {
					t.Fatalf("unexpected identity fields: %+v", user)
				}
				if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")); err != nil {
					t.Fatalf("stored hash does not match password: %v", err)
				}
				return user, nil
			},
		)

		res, err := uc.Register(context.Background(), " Jo ", " JO@Example.COM ", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Email != "jo@example.com" {
			t.Fatalf("unexpected email: %s", res.Email)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt setup: %v", err)
	}
	stored := entities.User{ID: "user-1", Name: "Jo", Email: "jo@example.com", PasswordHash: string(hash)}

	t.Run("missing fields", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, _, err := uc.Login(context.Background(), "jo@example.com", "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(entities.User{}, nil)

		_, _, err := uc.Login(context.Background(), "jo@example.com", "secret")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(stored, nil)

		_, _, err := uc.Login(context.Background(), "jo@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("token error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		uc := NewAuthUseCase(users, tokens)

		users.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(stored, nil)
		tokens.EXPECT().Generate(stored).Return("", errors.New("sign"))

		_, _, err := uc.Login(context.Background(), "jo@example.com", "secret")
		if err == nil || err.Error() != "sign" {
			t.Fatalf("expected sign error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		uc := NewAuthUseCase(users, tokens)

		users.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(stored, nil)
		tokens.EXPECT().Generate(stored).Return("token-abc", nil)

		user, token, err := uc.Login(context.Background(), " JO@example.com ", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "user-1" || token != "token-abc" {
			t.Fatalf("unexpected result: %+v %s", user, token)
		}
	})
}
