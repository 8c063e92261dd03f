package models

import "time"

// ReportField is a frozen, template-local copy of a field's shape.
// It is snapshotted at template create/update time and never tracks
// later edits to the dynamic field it came from.
type ReportField struct {
	ID          string         `bson:"id" json:"id"`
	Name        string         `bson:"name" json:"name"`
	Label       string         `bson:"label" json:"label"`
	FieldType   string         `bson:"field_type" json:"field_type"`
	Required    bool           `bson:"required" json:"required"`
	Options     []string       `bson:"options,omitempty" json:"options,omitempty"`
	Placeholder string         `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
	Validation  map[string]any `bson:"validation,omitempty" json:"validation,omitempty"`
	Order       int            `bson:"order" json:"order"`
}

// ReportTemplate is a named collection of report fields users fill out
// once per reporting period. Name is globally unique.
type ReportTemplate struct {
	ID          string        `bson:"id" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description" json:"description"`
	Category    string        `bson:"category" json:"category"`
	Fields      []ReportField `bson:"fields" json:"fields"`
	Active      bool          `bson:"active" json:"active"`
	CreatedBy   string        `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}
