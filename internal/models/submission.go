package models

import "time"

// Report submission statuses.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusReviewed  = "reviewed"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

var ValidStatuses = []string{
	StatusDraft,
	StatusSubmitted,
	StatusReviewed,
	StatusApproved,
	StatusRejected,
}

func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ReportSubmission holds one user's answers for one template for one
// reporting period ("YYYY-MM"). At most one document exists per
// (user_id, template_id, report_period); resubmits upsert in place.
type ReportSubmission struct {
	ID           string         `bson:"id" json:"id"`
	TemplateID   string         `bson:"template_id" json:"template_id"`
	UserID       string         `bson:"user_id" json:"user_id"`
	LocationID   *string        `bson:"location_id" json:"location_id,omitempty"`
	ReportPeriod string         `bson:"report_period" json:"report_period"`
	Data         map[string]any `bson:"data" json:"data"`
	Status       string         `bson:"status" json:"status"`
	SubmittedAt  *time.Time     `bson:"submitted_at" json:"submitted_at,omitempty"`
	ReviewedAt   *time.Time     `bson:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy   *string        `bson:"reviewed_by" json:"reviewed_by,omitempty"`
	ReviewNotes  string         `bson:"review_notes,omitempty" json:"review_notes,omitempty"`
	Attachments  []string       `bson:"attachments" json:"attachments"`
	CreatedAt    time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `bson:"updated_at" json:"updated_at"`
}
