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

// UpsertParams identifies a submission by its uniqueness triple and
// carries the new payload. NewID is only used when the upsert inserts.
type UpsertParams struct {
	NewID        string
	UserID       string
	TemplateID   string
	ReportPeriod string
	LocationID   *string
	Data         map[string]any
	Status       string
	Now          time.Time
}

// SubmissionFilter mirrors the admin search parameters. Zero values
// mean "no constraint"; date bounds are inclusive on created_at.
type SubmissionFilter struct {
	SearchTerm string
	Status     string
	TemplateID string
	UserID     string
	LocationID string
	DateFrom   *time.Time
	DateTo     *time.Time
}

type SubmissionRepository interface {
	// Upsert atomically creates or overwrites the one submission for
	// (user, template, period) in a single conditional write, so two
	// concurrent submits can never produce duplicate documents.
	Upsert(ctx context.Context, p UpsertParams) (*models.ReportSubmission, error)
	FindByID(ctx context.Context, id string) (*models.ReportSubmission, error)
	FindByUser(ctx context.Context, userID string) ([]models.ReportSubmission, error)
	FindAll(ctx context.Context) ([]models.ReportSubmission, error)
	Search(ctx context.Context, f SubmissionFilter, skip, limit int64) ([]models.ReportSubmission, int64, error)
	CountByIDs(ctx context.Context, ids []string) (int64, error)
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
	UpdateStatusByIDs(ctx context.Context, ids []string, status, reviewedBy string, reviewedAt time.Time) (int64, error)
	ExistsForTemplate(ctx context.Context, templateID string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type mongoSubmissionRepository struct {
	col *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) SubmissionRepository {
	return &mongoSubmissionRepository{col: db.Collection("report_submissions")}
}

func (r *mongoSubmissionRepository) Upsert(ctx context.Context, p UpsertParams) (*models.ReportSubmission, error) {
	filter := bson.M{
		"user_id":       p.UserID,
		"template_id":   p.TemplateID,
		"report_period": p.ReportPeriod,
	}

	// Pipeline update: field references resolve against the existing
	// document (all absent on insert), which lets one write decide the
	// insert-vs-update cases. submitted_at is stamped only on a
	// transition into "submitted"; location_id is written on insert
	// only, so a null stored at creation is never back-filled by a
	// later resubmit. Insert is detected by created_at being missing.
	// User-supplied data goes through $literal so map values are never
	// evaluated as expressions.
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"id":            bson.M{"$ifNull": bson.A{"$id", p.NewID}},
			"user_id":       p.UserID,
			"template_id":   p.TemplateID,
			"report_period": p.ReportPeriod,
			"location_id": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{bson.M{"$type": "$created_at"}, "missing"}},
				p.LocationID,
				"$location_id",
			}},
			"data":          bson.M{"$literal": p.Data},
			"status":        p.Status,
			"submitted_at": bson.M{"$cond": bson.A{
				bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{p.Status, models.StatusSubmitted}},
					bson.M{"$ne": bson.A{"$status", models.StatusSubmitted}},
				}},
				p.Now,
				bson.M{"$ifNull": bson.A{"$submitted_at", nil}},
			}},
			"attachments": bson.M{"$ifNull": bson.A{"$attachments", bson.A{}}},
			"created_at":  bson.M{"$ifNull": bson.A{"$created_at", p.Now}},
			"updated_at":  p.Now,
		}}},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var sub models.ReportSubmission
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&sub); err != nil {
		return nil, fmt.Errorf("upsert submission: %w", err)
	}
	return &sub, nil
}

func (r *mongoSubmissionRepository) FindByID(ctx context.Context, id string) (*models.ReportSubmission, error) {
	var sub models.ReportSubmission
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&sub); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return &sub, nil
}

func (r *mongoSubmissionRepository) FindByUser(ctx context.Context, userID string) ([]models.ReportSubmission, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *mongoSubmissionRepository) FindAll(ctx context.Context) ([]models.ReportSubmission, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoSubmissionRepository) find(ctx context.Context, filter bson.M) ([]models.ReportSubmission, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find submissions: %w", err)
	}
	var subs []models.ReportSubmission
	if err := cur.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	return subs, nil
}

func buildSearchQuery(f SubmissionFilter) bson.M {
	query := bson.M{}
	if f.SearchTerm != "" {
		query["$text"] = bson.M{"$search": f.SearchTerm}
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.TemplateID != "" {
		query["template_id"] = f.TemplateID
	}
	if f.UserID != "" {
		query["user_id"] = f.UserID
	}
	if f.LocationID != "" {
		query["location_id"] = f.LocationID
	}
	if f.DateFrom != nil || f.DateTo != nil {
		dateQuery := bson.M{}
		if f.DateFrom != nil {
			dateQuery["$gte"] = *f.DateFrom
		}
		if f.DateTo != nil {
			dateQuery["$lte"] = *f.DateTo
		}
		query["created_at"] = dateQuery
	}
	return query
}

func (r *mongoSubmissionRepository) Search(ctx context.Context, f SubmissionFilter, skip, limit int64) ([]models.ReportSubmission, int64, error) {
	query := buildSearchQuery(f)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count submissions: %w", err)
	}

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("search submissions: %w", err)
	}
	var subs []models.ReportSubmission
	if err := cur.All(ctx, &subs); err != nil {
		return nil, 0, fmt.Errorf("decode submissions: %w", err)
	}
	return subs, total, nil
}

func (r *mongoSubmissionRepository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"id": bson.M{"$in": ids}})
}

func (r *mongoSubmissionRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("delete submissions: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *mongoSubmissionRepository) UpdateStatusByIDs(ctx context.Context, ids []string, status, reviewedBy string, reviewedAt time.Time) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{
			"status":      status,
			"reviewed_at": reviewedAt,
			"reviewed_by": reviewedBy,
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("update submissions: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *mongoSubmissionRepository) ExistsForTemplate(ctx context.Context, templateID string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"template_id": templateID})
	if err != nil {
		return false, fmt.Errorf("count submissions: %w", err)
	}
	return count > 0, nil
}

func (r *mongoSubmissionRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *mongoSubmissionRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"status": status})
}

func (r *mongoSubmissionRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since}})
}
