package dto

type StatsResponse struct {
	TotalUsers          int64 `json:"total_users"`
	ApprovedUsers       int64 `json:"approved_users"`
	PendingUsers        int64 `json:"pending_users"`
	TotalLocations      int64 `json:"total_locations"`
	AdminUsers          int64 `json:"admin_users"`
	RegularUsers        int64 `json:"regular_users"`
	RecentRegistrations int64 `json:"recent_registrations"`
}

type AnalyticsResponse struct {
	StatsResponse

	TotalTemplates int64 `json:"total_templates"`
	TotalFields    int64 `json:"total_fields"`

	TotalReports       int64 `json:"total_reports"`
	SubmittedReports   int64 `json:"submitted_reports"`
	DraftReports       int64 `json:"draft_reports"`
	RecentSubmissions  int64 `json:"recent_submissions"`
	MonthlySubmissions int64 `json:"monthly_submissions"`

	FieldSections []string         `json:"field_sections"`
	SectionStats  map[string]int64 `json:"section_stats"`

	ApprovalRate   float64 `json:"approval_rate"`
	SubmissionRate float64 `json:"submission_rate"`
}
