package interfaces

import (
	"context"

	"aquashield/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User accounts.
//
// GetByEmail resolves through the email GSI and returns a zero-value user
// (not an error) when no account matches, mirroring the repository
// convention used everywhere else in this service.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
