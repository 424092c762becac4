package binding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-online/internal/types"
)

func TestReport_CountsAndLookup(t *testing.T) {
	report := &Report{Language: types.French}
	report.add("basic.name", Applied)
	report.add("contact", SkippedMissingField)
	report.add("profile.title", SkippedMissingTarget)
	report.add("profile.title", Applied)

	assert.Equal(t, 2, report.Count(Applied))
	assert.Equal(t, 1, report.Count(SkippedMissingField))
	assert.Equal(t, 1, report.Count(SkippedMissingTarget))

	outcome, found := report.Lookup("profile.title")
	require.True(t, found)
	assert.Equal(t, SkippedMissingTarget, outcome)

	_, found = report.Lookup("reference")
	assert.False(t, found)

	assert.Equal(t, []string{"basic.name", "profile.title"}, report.Fields(Applied))
}

func TestReport_JSON(t *testing.T) {
	report := &Report{Language: types.German}
	report.add("basic.name", Applied)
	report.add("contact", SkippedMissingField)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"language": "de",
		"steps": [
			{"field": "basic.name", "outcome": "applied"},
			{"field": "contact", "outcome": "skipped_missing_field"}
		]
	}`, string(data))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "applied", Applied.String())
	assert.Equal(t, "skipped_missing_target", SkippedMissingTarget.String())
	assert.Equal(t, "outcome(7)", Outcome(7).String())
}
