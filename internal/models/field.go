package models

import "time"

// Supported dynamic field types.
const (
	FieldTypeText        = "text"
	FieldTypeNumber      = "number"
	FieldTypeDate        = "date"
	FieldTypeDropdown    = "dropdown"
	FieldTypeMultiselect = "multiselect"
	FieldTypeTextarea    = "textarea"
	FieldTypeFile        = "file"
	FieldTypeCheckbox    = "checkbox"
)

var ValidFieldTypes = []string{
	FieldTypeText,
	FieldTypeNumber,
	FieldTypeDate,
	FieldTypeDropdown,
	FieldTypeMultiselect,
	FieldTypeTextarea,
	FieldTypeFile,
	FieldTypeCheckbox,
}

func IsValidFieldType(t string) bool {
	for _, v := range ValidFieldTypes {
		if v == t {
			return true
		}
	}
	return false
}

// FieldTypeRequiresChoices reports whether a field type only makes sense
// with a predefined choice list.
func FieldTypeRequiresChoices(t string) bool {
	return t == FieldTypeDropdown || t == FieldTypeMultiselect
}

// DynamicField is a reusable, admin-authored field definition grouped by section.
// Soft-deleted fields stay in the collection and can be restored.
type DynamicField struct {
	ID          string         `bson:"id" json:"id"`
	Section     string         `bson:"section" json:"section"`
	Label       string         `bson:"label" json:"label"`
	FieldType   string         `bson:"field_type" json:"field_type"`
	Choices     []string       `bson:"choices,omitempty" json:"choices,omitempty"`
	Validation  map[string]any `bson:"validation,omitempty" json:"validation,omitempty"`
	Placeholder string         `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
	HelpText    string         `bson:"help_text,omitempty" json:"help_text,omitempty"`
	Deleted     bool           `bson:"deleted" json:"deleted"`
	CreatedBy   string         `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `bson:"updated_at" json:"updated_at"`
}
