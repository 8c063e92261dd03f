package bootstrap

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"reportshub/internal/models"
)

// Seed inserts the default admin account, location, dynamic fields and
// report template if they are missing. Safe to run on every startup.
func Seed(db *mongo.Database, logger *zap.Logger) error {
	ctx := context.Background()
	now := time.Now().UTC()

	users := db.Collection("users")
	adminID, err := seedAdmin(ctx, users, now, logger)
	if err != nil {
		return err
	}

	locations := db.Collection("locations")
	var loc models.Location
	err = locations.FindOne(ctx, bson.M{"name": "Main Office"}).Decode(&loc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		_, err = locations.InsertOne(ctx, models.Location{
			ID:        uuid.NewString(),
			Name:      "Main Office",
			CreatedAt: now,
		})
		if err != nil {
			return err
		}
		logger.Info("default location created", zap.String("name", "Main Office"))
	} else if err != nil {
		return err
	}

	if err := seedFields(ctx, db.Collection("dynamic_fields"), adminID, now, logger); err != nil {
		return err
	}
	return seedTemplate(ctx, db.Collection("report_templates"), adminID, now, logger)
}

func seedAdmin(ctx context.Context, users *mongo.Collection, now time.Time, logger *zap.Logger) (string, error) {
	var existing models.User
	err := users.FindOne(ctx, bson.M{"username": "admin"}).Decode(&existing)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	admin := models.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		Email:        "admin@monthlyreporthub.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Approved:     true,
		CreatedAt:    now,
	}
	if _, err := users.InsertOne(ctx, admin); err != nil {
		return "", err
	}
	logger.Info("admin user created", zap.String("username", "admin"))
	return admin.ID, nil
}

func seedFields(ctx context.Context, fields *mongo.Collection, adminID string, now time.Time, logger *zap.Logger) error {
	defaults := []models.DynamicField{
		{
			Section:     "Basic Information",
			Label:       "Employee Name",
			FieldType:   models.FieldTypeText,
			Placeholder: "Enter employee full name",
			HelpText:    "Enter the employee's full name as it appears in official records",
		},
		{
			Section:   "Basic Information",
			Label:     "Department",
			FieldType: models.FieldTypeDropdown,
			Choices:   []string{"Engineering", "Marketing", "Sales", "HR", "Finance", "Operations"},
			HelpText:  "Select the department the employee belongs to",
		},
		{
			Section:     "Performance Metrics",
			Label:       "Productivity Score",
			FieldType:   models.FieldTypeNumber,
			Placeholder: "0-100",
			Validation:  map[string]any{"min": 0, "max": 100},
			HelpText:    "Rate productivity on a scale of 0-100",
		},
		{
			Section:     "Performance Metrics",
			Label:       "Key Accomplishments",
			FieldType:   models.FieldTypeTextarea,
			Placeholder: "List key accomplishments for the month...",
			HelpText:    "Provide detailed description of major accomplishments",
		},
		{
			Section:   "Project Details",
			Label:     "Project Status",
			FieldType: models.FieldTypeDropdown,
			Choices:   []string{"Not Started", "In Progress", "On Hold", "Completed", "Cancelled"},
			HelpText:  "Select the current status of the main project",
		},
		{
			Section:     "Time Management",
			Label:       "Hours Worked",
			FieldType:   models.FieldTypeNumber,
			Placeholder: "Enter total hours",
			Validation:  map[string]any{"min": 0, "max": 744},
			HelpText:    "Total hours worked during the reporting period",
		},
	}

	for _, f := range defaults {
		count, err := fields.CountDocuments(ctx, bson.M{"label": f.Label, "section": f.Section})
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		f.ID = uuid.NewString()
		f.CreatedBy = adminID
		f.CreatedAt = now
		f.UpdatedAt = now
		if _, err := fields.InsertOne(ctx, f); err != nil {
			return err
		}
		logger.Info("created dynamic field",
			zap.String("label", f.Label), zap.String("section", f.Section))
	}
	return nil
}

func seedTemplate(ctx context.Context, templates *mongo.Collection, adminID string, now time.Time, logger *zap.Logger) error {
	const name = "Monthly Progress Report"
	count, err := templates.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tpl := models.ReportTemplate{
		ID:          uuid.NewString(),
		Name:        name,
		Description: "Standard monthly progress and metrics report",
		Category:    "General",
		Fields: []models.ReportField{
			{
				ID: uuid.NewString(), Name: "key_achievements", Label: "Key Achievements",
				FieldType: models.FieldTypeTextarea, Required: true,
				Placeholder: "List your key achievements for this month...", Order: 1,
			},
			{
				ID: uuid.NewString(), Name: "challenges", Label: "Challenges Faced",
				FieldType: models.FieldTypeTextarea, Required: true,
				Placeholder: "Describe any challenges you encountered...", Order: 2,
			},
			{
				ID: uuid.NewString(), Name: "goals_next_month", Label: "Goals for Next Month",
				FieldType: models.FieldTypeTextarea, Required: true,
				Placeholder: "What are your goals for next month?", Order: 3,
			},
			{
				ID: uuid.NewString(), Name: "satisfaction_rating", Label: "Overall Satisfaction",
				FieldType: models.FieldTypeDropdown, Required: true,
				Options: []string{"Very Satisfied", "Satisfied", "Neutral", "Dissatisfied", "Very Dissatisfied"},
				Order:   4,
			},
			{
				ID: uuid.NewString(), Name: "hours_worked", Label: "Total Hours Worked",
				FieldType: models.FieldTypeNumber, Required: true,
				Placeholder: "Enter total hours worked this month", Order: 5,
			},
		},
		Active:    true,
		CreatedBy: adminID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := templates.InsertOne(ctx, tpl); err != nil {
		return err
	}
	logger.Info("default report template created", zap.String("name", name))
	return nil
}
