package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"reportshub/internal/models"
)

// ErrNoDocument is returned by lookups that matched nothing. Callers
// translate it to their own not-found error.
var ErrNoDocument = errors.New("no document found")

type UserRepository interface {
	Insert(ctx context.Context, u models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	FindAll(ctx context.Context) ([]models.User, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	SetRole(ctx context.Context, id string, role string) error
	Delete(ctx context.Context, id string) error
	ExistsByLocation(ctx context.Context, locationID string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountApproved(ctx context.Context, approved bool) (int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type mongoUserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{col: db.Collection("users")}
}

func (r *mongoUserRepository) Insert(ctx context.Context, u models.User) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *mongoUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}
	count, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return count > 0, nil
}

func (r *mongoUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *mongoUserRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	return r.setField(ctx, id, bson.M{"approved": approved})
}

func (r *mongoUserRepository) SetRole(ctx context.Context, id string, role string) error {
	return r.setField(ctx, id, bson.M{"role": role})
}

func (r *mongoUserRepository) setField(ctx context.Context, id string, set bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *mongoUserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *mongoUserRepository) ExistsByLocation(ctx context.Context, locationID string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"location_id": locationID})
	if err != nil {
		return false, fmt.Errorf("count users by location: %w", err)
	}
	return count > 0, nil
}

func (r *mongoUserRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *mongoUserRepository) CountApproved(ctx context.Context, approved bool) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"approved": approved})
}

func (r *mongoUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"role": role})
}

func (r *mongoUserRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since}})
}
