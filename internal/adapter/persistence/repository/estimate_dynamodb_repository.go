package repository

import (
	"context"
	"errors"
	"time"

	"aquashield/internal/domain/entities"
	"aquashield/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesUserIndexName    = "user_id-index"
)

type materialLineItem struct {
	Name       string  `dynamodbav:"name"`
	Quantity   float64 `dynamodbav:"quantity"`
	Unit       string  `dynamodbav:"unit"`
	UnitPrice  float64 `dynamodbav:"unit_price"`
	TotalPrice float64 `dynamodbav:"total_price"`
}

type manualEntryItem struct {
	Description string  `dynamodbav:"description"`
	Qty         float64 `dynamodbav:"qty"`
	Unit        string  `dynamodbav:"unit"`
	Cost        float64 `dynamodbav:"cost"`
}

type projectConfigItem struct {
	ProjectType      string  `dynamodbav:"project_type"`
	BuildingType     string  `dynamodbav:"building_type"`
	Material         string  `dynamodbav:"waterproofing_material"`
	AccessConditions string  `dynamodbav:"access_conditions"`
	UrgencyLevel     string  `dynamodbav:"urgency_level"`
	LaborRate        float64 `dynamodbav:"labor_rate"`
	ZipCode          string  `dynamodbav:"zip_code"`
	ClientName       string  `dynamodbav:"client_name"`
	ProjectName      string  `dynamodbav:"project_name"`
	Notes            string  `dynamodbav:"notes"`
}

type analysisItem struct {
	EstimatedArea         float64            `dynamodbav:"estimated_area"`
	ComplexityScore       float64            `dynamodbav:"complexity_score"`
	LaborHours            float64            `dynamodbav:"labor_hours"`
	SpecialConsiderations []string           `dynamodbav:"special_considerations"`
	Challenges            []string           `dynamodbav:"challenges"`
	EquipmentNeeded       []string           `dynamodbav:"equipment_needed"`
	Recommendations       []string           `dynamodbav:"recommendations"`
	Materials             []materialLineItem `dynamodbav:"materials"`
	AIAnalysisSubtotal    float64            `dynamodbav:"ai_analysis_subtotal"`
}

type breakdownItem struct {
	AnalyzedArea      float64 `dynamodbav:"analyzed_area"`
	ComplexityScore   float64 `dynamodbav:"complexity_score"`
	LaborHours        float64 `dynamodbav:"labor_hours"`
	LaborCost         float64 `dynamodbav:"labor_cost"`
	MaterialCost      float64 `dynamodbav:"material_cost"`
	EquipmentCost     float64 `dynamodbav:"equipment_cost"`
	MobilizationCost  float64 `dynamodbav:"mobilization_cost"`
	ContingencyAmount float64 `dynamodbav:"contingency_amount"`
	MarkupAmount      float64 `dynamodbav:"markup_amount"`
	TotalEstimate     float64 `dynamodbav:"total_estimate"`
}

type estimateItem struct {
	ID                    string             `dynamodbav:"id"`
	UserID                string             `dynamodbav:"user_id"`
	Project               projectConfigItem  `dynamodbav:"project"`
	BlueprintURL          string             `dynamodbav:"blueprint_url"`
	PhotoURLs             []string           `dynamodbav:"photo_urls"`
	Analysis              analysisItem       `dynamodbav:"ai_analysis"`
	Breakdown             breakdownItem      `dynamodbav:"breakdown"`
	Materials             []materialLineItem `dynamodbav:"materials"`
	ManualEntries         []manualEntryItem  `dynamodbav:"manual_entries"`
	AISubtotal            float64            `dynamodbav:"ai_subtotal"`
	MaterialsSubtotal     float64            `dynamodbav:"materials_subtotal"`
	ManualEntriesSubtotal float64            `dynamodbav:"manual_entries_subtotal"`
	GrandTotal            float64            `dynamodbav:"grand_total"`
	Status                string             `dynamodbav:"status"`
	CreatedAt             string             `dynamodbav:"created_at"`
	UpdatedAt             string             `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI "user_id-index": hash user_id, range created_at
//
// The GSI range key is the RFC3339Nano timestamp, so querying with
// ScanIndexForward=false yields a user's estimates newest-first without
// sorting in the service.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Estimate, error) {
	estimates := []entities.Estimate{}
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(estimatesUserIndexName),
			KeyConditionExpression: aws.String("#user_id = :user_id"),
			ExpressionAttributeNames: map[string]string{
				"#user_id": "user_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":user_id": &types.AttributeValueMemberS{Value: userID},
			},
			ScanIndexForward:  aws.Bool(false),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			estimates = append(estimates, fromEstimateItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return estimates, nil
}

func (r *EstimateDynamoRepository) UpdateMaterialsByID(ctx context.Context, id string, materials []entities.MaterialLine, materialsSubtotal, grandTotal float64) (entities.Estimate, error) {
	av, err := attributevalue.Marshal(toMaterialLineItems(materials))
	if err != nil {
		return entities.Estimate{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #materials = :materials, #materials_subtotal = :materials_subtotal, #grand_total = :grand_total, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":materials":          av,
			":materials_subtotal": floatAttr(materialsSubtotal),
			":grand_total":        floatAttr(grandTotal),
			":updated_at":         &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#materials":          "materials",
			"#materials_subtotal": "materials_subtotal",
			"#grand_total":        "grand_total",
			"#updated_at":         "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdateManualEntriesByID(ctx context.Context, id string, entries []entities.ManualEntry, manualSubtotal, grandTotal float64) (entities.Estimate, error) {
	av, err := attributevalue.Marshal(toManualEntryItems(entries))
	if err != nil {
		return entities.Estimate{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #manual_entries = :manual_entries, #manual_entries_subtotal = :manual_entries_subtotal, #grand_total = :grand_total, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":manual_entries":          av,
			":manual_entries_subtotal": floatAttr(manualSubtotal),
			":grand_total":             floatAttr(grandTotal),
			":updated_at":              &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#manual_entries":          "manual_entries",
			"#manual_entries_subtotal": "manual_entries_subtotal",
			"#grand_total":             "grand_total",
			"#updated_at":              "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Estimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func floatAttr(v float64) types.AttributeValue {
	av, err := attributevalue.Marshal(v)
	if err != nil {
		return &types.AttributeValueMemberN{Value: "0"}
	}
	return av
}

func toMaterialLineItems(lines []entities.MaterialLine) []materialLineItem {
	items := make([]materialLineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, materialLineItem{
			Name:       l.Name,
			Quantity:   l.Quantity,
			Unit:       l.Unit,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.TotalPrice,
		})
	}
	return items
}

func fromMaterialLineItems(items []materialLineItem) []entities.MaterialLine {
	lines := make([]entities.MaterialLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, entities.MaterialLine{
			Name:       it.Name,
			Quantity:   it.Quantity,
			Unit:       it.Unit,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return lines
}

func toManualEntryItems(entries []entities.ManualEntry) []manualEntryItem {
	items := make([]manualEntryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, manualEntryItem{
			Description: e.Description,
			Qty:         e.Qty,
			Unit:        e.Unit,
			Cost:        e.Cost,
		})
	}
	return items
}

func fromManualEntryItems(items []manualEntryItem) []entities.ManualEntry {
	entries := make([]entities.ManualEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, entities.ManualEntry{
			Description: it.Description,
			Qty:         it.Qty,
			Unit:        it.Unit,
			Cost:        it.Cost,
		})
	}
	return entries
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:     e.ID,
		UserID: e.UserID,
		Project: projectConfigItem{
			ProjectType:      string(e.Project.ProjectType),
			BuildingType:     e.Project.BuildingType,
			Material:         string(e.Project.Material),
			AccessConditions: string(e.Project.AccessConditions),
			UrgencyLevel:     string(e.Project.UrgencyLevel),
			LaborRate:        e.Project.LaborRate,
			ZipCode:          e.Project.ZipCode,
			ClientName:       e.Project.ClientName,
			ProjectName:      e.Project.ProjectName,
			Notes:            e.Project.Notes,
		},
		BlueprintURL: e.BlueprintURL,
		PhotoURLs:    e.PhotoURLs,
		Analysis: analysisItem{
			EstimatedArea:         e.Analysis.EstimatedArea,
			ComplexityScore:       e.Analysis.ComplexityScore,
			LaborHours:            e.Analysis.LaborHours,
			SpecialConsiderations: e.Analysis.SpecialConsiderations,
			Challenges:            e.Analysis.Challenges,
			EquipmentNeeded:       e.Analysis.EquipmentNeeded,
			Recommendations:       e.Analysis.Recommendations,
			Materials:             toMaterialLineItems(e.Analysis.Materials),
			AIAnalysisSubtotal:    e.Analysis.AIAnalysisSubtotal,
		},
		Breakdown: breakdownItem{
			AnalyzedArea:      e.Breakdown.AnalyzedArea,
			ComplexityScore:   e.Breakdown.ComplexityScore,
			LaborHours:        e.Breakdown.LaborHours,
			LaborCost:         e.Breakdown.LaborCost,
			MaterialCost:      e.Breakdown.MaterialCost,
			EquipmentCost:     e.Breakdown.EquipmentCost,
			MobilizationCost:  e.Breakdown.MobilizationCost,
			ContingencyAmount: e.Breakdown.ContingencyAmount,
			MarkupAmount:      e.Breakdown.MarkupAmount,
			TotalEstimate:     e.Breakdown.TotalEstimate,
		},
		Materials:             toMaterialLineItems(e.Materials),
		ManualEntries:         toManualEntryItems(e.ManualEntries),
		AISubtotal:            e.AISubtotal,
		MaterialsSubtotal:     e.MaterialsSubtotal,
		ManualEntriesSubtotal: e.ManualEntriesSubtotal,
		GrandTotal:            e.GrandTotal,
		Status:                string(e.Status),
		CreatedAt:             e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Estimate{
		ID:     it.ID,
		UserID: it.UserID,
		Project: entities.ProjectConfig{
			ProjectType:      entities.ProjectType(it.Project.ProjectType),
			BuildingType:     it.Project.BuildingType,
			Material:         entities.Material(it.Project.Material),
			AccessConditions: entities.AccessCondition(it.Project.AccessConditions),
			UrgencyLevel:     entities.UrgencyLevel(it.Project.UrgencyLevel),
			LaborRate:        it.Project.LaborRate,
			ZipCode:          it.Project.ZipCode,
			ClientName:       it.Project.ClientName,
			ProjectName:      it.Project.ProjectName,
			Notes:            it.Project.Notes,
		},
		BlueprintURL: it.BlueprintURL,
		PhotoURLs:    it.PhotoURLs,
		Analysis: entities.AnalysisResult{
			EstimatedArea:         it.Analysis.EstimatedArea,
			ComplexityScore:       it.Analysis.ComplexityScore,
			LaborHours:            it.Analysis.LaborHours,
			SpecialConsiderations: it.Analysis.SpecialConsiderations,
			Challenges:            it.Analysis.Challenges,
			EquipmentNeeded:       it.Analysis.EquipmentNeeded,
			Recommendations:       it.Analysis.Recommendations,
			Materials:             fromMaterialLineItems(it.Analysis.Materials),
			AIAnalysisSubtotal:    it.Analysis.AIAnalysisSubtotal,
		},
		Breakdown: entities.Breakdown{
			AnalyzedArea:      it.Breakdown.AnalyzedArea,
			ComplexityScore:   it.Breakdown.ComplexityScore,
			LaborHours:        it.Breakdown.LaborHours,
			LaborCost:         it.Breakdown.LaborCost,
			MaterialCost:      it.Breakdown.MaterialCost,
			EquipmentCost:     it.Breakdown.EquipmentCost,
			MobilizationCost:  it.Breakdown.MobilizationCost,
			ContingencyAmount: it.Breakdown.ContingencyAmount,
			MarkupAmount:      it.Breakdown.MarkupAmount,
			TotalEstimate:     it.Breakdown.TotalEstimate,
		},
		Materials:             fromMaterialLineItems(it.Materials),
		ManualEntries:         fromManualEntryItems(it.ManualEntries),
		AISubtotal:            it.AISubtotal,
		MaterialsSubtotal:     it.MaterialsSubtotal,
		ManualEntriesSubtotal: it.ManualEntriesSubtotal,
		GrandTotal:            it.GrandTotal,
		Status:                entities.EstimateStatus(it.Status),
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}
}
