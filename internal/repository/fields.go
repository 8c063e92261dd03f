package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"reportshub/dto"
	"reportshub/internal/models"
)

type FieldRepository interface {
	Insert(ctx context.Context, f models.DynamicField) error
	FindByID(ctx context.Context, id string) (*models.DynamicField, error)
	// FindActiveByIDs returns only non-deleted fields among the given ids,
	// in collection order.
	FindActiveByIDs(ctx context.Context, ids []string) ([]models.DynamicField, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]models.DynamicField, error)
	// Update applies the non-nil attributes of upd and refreshes
	// updated_at, returning the updated document.
	Update(ctx context.Context, id string, upd dto.DynamicFieldUpdate, now time.Time) (*models.DynamicField, error)
	SetDeleted(ctx context.Context, id string, deleted bool, now time.Time) error
	Sections(ctx context.Context) ([]string, error)
	CountActive(ctx context.Context) (int64, error)
	CountBySection(ctx context.Context, section string) (int64, error)
}

type mongoFieldRepository struct {
	col *mongo.Collection
}

func NewFieldRepository(db *mongo.Database) FieldRepository {
	return &mongoFieldRepository{col: db.Collection("dynamic_fields")}
}

// notDeleted matches documents whose deleted flag is unset or false.
var notDeleted = bson.M{"deleted": bson.M{"$ne": true}}

func (r *mongoFieldRepository) Insert(ctx context.Context, f models.DynamicField) error {
	_, err := r.col.InsertOne(ctx, f)
	return err
}

func (r *mongoFieldRepository) FindByID(ctx context.Context, id string) (*models.DynamicField, error) {
	var f models.DynamicField
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("find field: %w", err)
	}
	return &f, nil
}

func (r *mongoFieldRepository) FindActiveByIDs(ctx context.Context, ids []string) ([]models.DynamicField, error) {
	filter := bson.M{
		"id":      bson.M{"$in": ids},
		"deleted": bson.M{"$ne": true},
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find fields: %w", err)
	}
	var fields []models.DynamicField
	if err := cur.All(ctx, &fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return fields, nil
}

func (r *mongoFieldRepository) FindAll(ctx context.Context, includeDeleted bool) ([]models.DynamicField, error) {
	filter := bson.M{}
	if !includeDeleted {
		filter = notDeleted
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find fields: %w", err)
	}
	var fields []models.DynamicField
	if err := cur.All(ctx, &fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return fields, nil
}

func (r *mongoFieldRepository) Update(ctx context.Context, id string, upd dto.DynamicFieldUpdate, now time.Time) (*models.DynamicField, error) {
	set := bson.M{"updated_at": now}
	if upd.Section != nil {
		set["section"] = *upd.Section
	}
	if upd.Label != nil {
		set["label"] = *upd.Label
	}
	if upd.FieldType != nil {
		set["field_type"] = *upd.FieldType
	}
	if upd.Choices != nil {
		set["choices"] = upd.Choices
	}
	if upd.Validation != nil {
		set["validation"] = upd.Validation
	}
	if upd.Placeholder != nil {
		set["placeholder"] = *upd.Placeholder
	}
	if upd.HelpText != nil {
		set["help_text"] = *upd.HelpText
	}
	if upd.Deleted != nil {
		set["deleted"] = *upd.Deleted
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var f models.DynamicField
	err := r.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&f)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("update field: %w", err)
	}
	return &f, nil
}

func (r *mongoFieldRepository) SetDeleted(ctx context.Context, id string, deleted bool, now time.Time) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"deleted": deleted, "updated_at": now},
	})
	if err != nil {
		return fmt.Errorf("update field: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *mongoFieldRepository) Sections(ctx context.Context) ([]string, error) {
	res := r.col.Distinct(ctx, "section", notDeleted)
	if res.Err() != nil {
		return nil, fmt.Errorf("distinct sections: %w", res.Err())
	}
	var sections []string
	if err := res.Decode(&sections); err != nil {
		return nil, fmt.Errorf("decode sections: %w", err)
	}
	return sections, nil
}

func (r *mongoFieldRepository) CountActive(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, notDeleted)
}

func (r *mongoFieldRepository) CountBySection(ctx context.Context, section string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{
		"section": section,
		"deleted": bson.M{"$ne": true},
	})
}
