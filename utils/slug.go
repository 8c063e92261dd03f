package utils

import "strings"

// MachineName derives a machine key from a display label: lowercased,
// spaces replaced with underscores. Submission data maps are keyed by
// this name, so it must stay stable for a given label.
func MachineName(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}
