package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkbook(t *testing.T) {
	rows := []map[string]string{
		{
			"report_id":     "s1",
			"template_name": "Monthly Progress Report",
			"username":      "alice",
			"report_period": "2025-01",
			"status":        "submitted",
			"data_hours":    "160",
		},
		{
			"report_id":     "s2",
			"template_name": "Monthly Progress Report",
			"username":      "bob",
			"report_period": "2025-01",
			"status":        "draft",
			"data_notes":    "slow month",
		},
	}

	book, err := BuildWorkbook(rows)
	require.NoError(t, err)
	defer book.Close()

	got, err := book.GetRows("Reports")
	require.NoError(t, err)
	require.Len(t, got, 3)

	header := got[0]
	assert.Equal(t, "report_id", header[0])
	// data_ columns come after the fixed set, sorted.
	assert.Equal(t, append(append([]string{}, exportColumns...), "data_hours", "data_notes"), header)

	cell, err := book.GetCellValue("Reports", "A2")
	require.NoError(t, err)
	assert.Equal(t, "s1", cell)
}

func TestBuildWorkbookEmpty(t *testing.T) {
	book, err := BuildWorkbook(nil)
	require.NoError(t, err)
	defer book.Close()

	got, err := book.GetRows("Reports")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0], len(exportColumns))
}
