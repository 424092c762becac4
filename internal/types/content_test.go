package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedContentRecord_PartialJSON(t *testing.T) {
	data := `{
		"basic": {"name": "Jane Doe"},
		"experience": {
			"title": "Career Summary",
			"items": [{"role": "Engineer", "company": "Acme"}]
		}
	}`

	var record LocalizedContentRecord
	require.NoError(t, json.Unmarshal([]byte(data), &record))

	require.NotNil(t, record.Basic)
	assert.Equal(t, "Jane Doe", record.Basic.Name)
	require.NotNil(t, record.Experience)
	assert.Len(t, record.Experience.Items, 1)
	assert.Equal(t, "Acme", record.Experience.Items[0].Company)
	assert.Empty(t, record.Experience.Items[0].Description)

	assert.Nil(t, record.Contact)
	assert.Nil(t, record.Profile)
	assert.Nil(t, record.Education)
	assert.Nil(t, record.Skill)
	assert.Nil(t, record.Project)
	assert.Nil(t, record.Reference)
}

func TestEducationItem_DegreeText(t *testing.T) {
	tests := []struct {
		name string
		item EducationItem
		want string
	}{
		{"degree only", EducationItem{Degree: "MSc"}, "MSc"},
		{"degree and major", EducationItem{Degree: "MSc", Major: "Computer Science"}, "MSc in Computer Science"},
		{"major without degree", EducationItem{Major: "Physics"}, ""},
		{"empty", EducationItem{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.DegreeText())
		})
	}
}

func TestSkillSection_FirstGroupItems(t *testing.T) {
	var nilSection *SkillSection
	assert.Nil(t, nilSection.FirstGroupItems())
	assert.Nil(t, (&SkillSection{}).FirstGroupItems())

	section := &SkillSection{Groups: []SkillGroup{
		{Item: []string{"Go", "SQL"}},
		{Item: []string{"ignored"}},
	}}
	assert.Equal(t, []string{"Go", "SQL"}, section.FirstGroupItems())
}

func TestParseLanguage(t *testing.T) {
	lang, err := ParseLanguage(" DE ")
	require.NoError(t, err)
	assert.Equal(t, German, lang)

	lang, err = ParseLanguage("fr")
	require.NoError(t, err)
	assert.Equal(t, French, lang)

	_, err = ParseLanguage("it")
	require.Error(t, err)
	var langErr *UnsupportedLanguageError
	assert.ErrorAs(t, err, &langErr)
	assert.Equal(t, "it", langErr.Tag)
}

func TestLanguage_ContinuedSuffix(t *testing.T) {
	assert.Equal(t, "(Fortsetzung)", German.ContinuedSuffix())
	assert.Equal(t, "(suite)", French.ContinuedSuffix())
	assert.Equal(t, "(continued)", English.ContinuedSuffix())
	assert.Equal(t, "(continued)", Language("es").ContinuedSuffix())
}

func TestLanguage_DataPath(t *testing.T) {
	assert.Equal(t, "/data_de.json", German.DataPath())
	assert.Equal(t, "/data_en.json", English.DataPath())
}
