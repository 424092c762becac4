package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-online/internal/binding"
	"github.com/jonathan/cv-online/internal/types"
)

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<h1 class="cv-name">Old</h1>`))
	require.NoError(t, err)
	record := &types.LocalizedContentRecord{
		Basic:   &types.Basic{Name: "Jane"},
		Profile: &types.ProfileSection{Title: "Professional Profile"},
	}
	report := binding.Apply(doc, record, types.English)

	p.PrintReport(report)
	output := buf.String()

	assert.Contains(t, output, "BINDING REPORT")
	assert.Contains(t, output, "Language: en")
	assert.Contains(t, output, "Applied:  1")
	assert.Contains(t, output, "profile.title")
}

func TestPrintReport_TruncatesMissingTargets(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<p></p>`))
	require.NoError(t, err)
	items := make([]types.ExperienceItem, 8)
	report := binding.Apply(doc, &types.LocalizedContentRecord{
		Experience: &types.ExperienceSection{Title: "Career Summary", Items: items},
	}, types.English)

	p.PrintReport(report)

	assert.Contains(t, buf.String(), "... and 4 more")
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRecordSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecordSummary(types.French, &types.LocalizedContentRecord{
		Basic: &types.Basic{Name: "Marie Curie"},
		Experience: &types.ExperienceSection{Items: []types.ExperienceItem{
			{Role: "Chercheuse"}, {Role: "Professeure"},
		}},
		Skill: &types.SkillSection{Groups: []types.SkillGroup{{Item: []string{"Physique"}}}},
	})
	output := buf.String()

	assert.Contains(t, output, "CONTENT RECORD")
	assert.Contains(t, output, "Language: fr")
	assert.Contains(t, output, "Marie Curie")
	assert.Contains(t, output, "experience  2 item(s)")
	assert.Contains(t, output, "skill       1 item(s)")
	assert.Contains(t, output, "reference   -")
}

func TestPrintRecordSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRecordSummary(types.English, nil)
	assert.Empty(t, buf.String())
}
