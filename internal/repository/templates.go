package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"reportshub/internal/models"
)

// TemplateUpdate carries a partial template update. Nil pointers leave
// the stored value alone; ReplaceFields swaps the whole field list.
type TemplateUpdate struct {
	Name          *string
	Description   *string
	Category      *string
	Active        *bool
	ReplaceFields bool
	Fields        []models.ReportField
	UpdatedAt     time.Time
}

type TemplateRepository interface {
	Insert(ctx context.Context, t models.ReportTemplate) error
	FindByID(ctx context.Context, id string) (*models.ReportTemplate, error)
	FindActiveByID(ctx context.Context, id string) (*models.ReportTemplate, error)
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
	FindAll(ctx context.Context) ([]models.ReportTemplate, error)
	FindActive(ctx context.Context) ([]models.ReportTemplate, error)
	Update(ctx context.Context, id string, upd TemplateUpdate) (*models.ReportTemplate, error)
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}

type mongoTemplateRepository struct {
	col *mongo.Collection
}

func NewTemplateRepository(db *mongo.Database) TemplateRepository {
	return &mongoTemplateRepository{col: db.Collection("report_templates")}
}

func (r *mongoTemplateRepository) Insert(ctx context.Context, t models.ReportTemplate) error {
	_, err := r.col.InsertOne(ctx, t)
	return err
}

func (r *mongoTemplateRepository) FindByID(ctx context.Context, id string) (*models.ReportTemplate, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoTemplateRepository) FindActiveByID(ctx context.Context, id string) (*models.ReportTemplate, error) {
	return r.findOne(ctx, bson.M{"id": id, "active": true})
}

func (r *mongoTemplateRepository) findOne(ctx context.Context, filter bson.M) (*models.ReportTemplate, error) {
	var t models.ReportTemplate
	if err := r.col.FindOne(ctx, filter).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("find template: %w", err)
	}
	return &t, nil
}

func (r *mongoTemplateRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	filter := bson.M{"name": name}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count templates: %w", err)
	}
	return count > 0, nil
}

func (r *mongoTemplateRepository) FindAll(ctx context.Context) ([]models.ReportTemplate, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoTemplateRepository) FindActive(ctx context.Context) ([]models.ReportTemplate, error) {
	return r.find(ctx, bson.M{"active": true})
}

func (r *mongoTemplateRepository) find(ctx context.Context, filter bson.M) ([]models.ReportTemplate, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find templates: %w", err)
	}
	var templates []models.ReportTemplate
	if err := cur.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("decode templates: %w", err)
	}
	return templates, nil
}

func (r *mongoTemplateRepository) Update(ctx context.Context, id string, upd TemplateUpdate) (*models.ReportTemplate, error) {
	set := bson.M{"updated_at": upd.UpdatedAt}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Active != nil {
		set["active"] = *upd.Active
	}
	if upd.ReplaceFields {
		set["fields"] = upd.Fields
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var t models.ReportTemplate
	err := r.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("update template: %w", err)
	}
	return &t, nil
}

func (r *mongoTemplateRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *mongoTemplateRepository) CountActive(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"active": true})
}
