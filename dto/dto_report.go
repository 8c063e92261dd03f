package dto

import "time"

type ReportSubmit struct {
	TemplateID   string         `json:"template_id"`
	ReportPeriod string         `json:"report_period"`
	Data         map[string]any `json:"data"`
	Status       string         `json:"status"`
}

// ReportResponse is a submission enriched with display names. The
// joins are best effort: a missing template or user degrades to a
// placeholder instead of failing the request.
type ReportResponse struct {
	ID           string         `json:"id"`
	TemplateID   string         `json:"template_id"`
	TemplateName string         `json:"template_name"`
	UserID       string         `json:"user_id"`
	Username     string         `json:"username"`
	LocationID   *string        `json:"location_id,omitempty"`
	LocationName *string        `json:"location_name,omitempty"`
	ReportPeriod string         `json:"report_period"`
	Data         map[string]any `json:"data"`
	Status       string         `json:"status"`
	SubmittedAt  *time.Time     `json:"submitted_at,omitempty"`
	ReviewedAt   *time.Time     `json:"reviewed_at,omitempty"`
	ReviewedBy   *string        `json:"reviewed_by,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type SearchQuery struct {
	SearchTerm string
	Status     string
	TemplateID string
	UserID     string
	LocationID string
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	Limit      int
}

type SearchResult struct {
	Reports    []ReportResponse `json:"reports"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int64            `json:"total_pages"`
}

type BulkActionRequest struct {
	Action    string   `json:"action"`
	ReportIDs []string `json:"report_ids"`
}

type ExportQuery struct {
	Format     string
	Status     string
	TemplateID string
	UserID     string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// ExportResult is the flattened record set; byte-level csv rendering
// is left to the consumer, xlsx is rendered server side.
type ExportResult struct {
	Format   string              `json:"format"`
	Data     []map[string]string `json:"data"`
	Filename string              `json:"filename"`
}
