package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates every index the application relies on. The
// compound unique index on report_submissions is the storage-level
// backstop for the one-submission-per-(user, template, period) rule;
// the wildcard text index backs admin free-text search.
func EnsureIndexes(db *mongo.Database) error {
	ctx := context.Background()

	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_username"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("locations").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_location_name"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("report_templates").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_template_name"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("report_submissions").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "template_id", Value: 1}}},
		{Keys: bson.D{{Key: "report_period", Value: 1}}},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "template_id", Value: 1},
				{Key: "report_period", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_user_template_period"),
		},
		{
			Keys:    bson.D{{Key: "$**", Value: "text"}},
			Options: options.Index().SetName("submissions_text"),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("dynamic_fields").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "section", Value: 1}}},
		{Keys: bson.D{{Key: "deleted", Value: 1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
	})
	return err
}
