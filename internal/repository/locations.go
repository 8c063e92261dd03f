package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"reportshub/internal/models"
)

type LocationRepository interface {
	Insert(ctx context.Context, l models.Location) error
	FindByID(ctx context.Context, id string) (*models.Location, error)
	FindByName(ctx context.Context, name string) (*models.Location, error)
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
	FindAll(ctx context.Context) ([]models.Location, error)
	UpdateName(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoLocationRepository struct {
	col *mongo.Collection
}

func NewLocationRepository(db *mongo.Database) LocationRepository {
	return &mongoLocationRepository{col: db.Collection("locations")}
}

func (r *mongoLocationRepository) Insert(ctx context.Context, l models.Location) error {
	_, err := r.col.InsertOne(ctx, l)
	return err
}

func (r *mongoLocationRepository) FindByID(ctx context.Context, id string) (*models.Location, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoLocationRepository) FindByName(ctx context.Context, name string) (*models.Location, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *mongoLocationRepository) findOne(ctx context.Context, filter bson.M) (*models.Location, error) {
	var l models.Location
	if err := r.col.FindOne(ctx, filter).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("find location: %w", err)
	}
	return &l, nil
}

func (r *mongoLocationRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	filter := bson.M{"name": name}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count locations: %w", err)
	}
	return count > 0, nil
}

func (r *mongoLocationRepository) FindAll(ctx context.Context) ([]models.Location, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find locations: %w", err)
	}
	var locations []models.Location
	if err := cur.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("decode locations: %w", err)
	}
	return locations, nil
}

func (r *mongoLocationRepository) UpdateName(ctx context.Context, id, name string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"name": name}})
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *mongoLocationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *mongoLocationRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
