package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"content_record.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)

			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]
			assert.True(t, hasSchema, "schema should declare $schema")
			assert.True(t, hasProps, "schema should declare properties")
		})
	}
}

func TestContentRecord_EmbeddedMatchesFile(t *testing.T) {
	data, err := os.ReadFile("content_record.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), ContentRecord)
}

func TestContentRecord_CoversAllSections(t *testing.T) {
	var schemaObj struct {
		Properties map[string]json.RawMessage `json:"properties"`
	}
	require.NoError(t, json.Unmarshal([]byte(ContentRecord), &schemaObj))

	for _, section := range []string{"basic", "contact", "profile", "experience", "education", "skill", "project", "reference"} {
		assert.Contains(t, schemaObj.Properties, section)
	}
}
