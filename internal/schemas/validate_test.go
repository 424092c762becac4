package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"count": {"type": "integer"}
	}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", testSchema)
	jsonPath := writeFile(t, "doc.json", `{"name": "x", "count": 2}`)

	err := ValidateJSON(schemaPath, jsonPath)
	assert.NoError(t, err)
}

func TestValidateJSON_InvalidJSON_MissingField(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", testSchema)
	jsonPath := writeFile(t, "doc.json", `{"count": 2}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	jsonPath := writeFile(t, "doc.json", `{"name": "x"}`)

	err := ValidateJSON("testdata/nonexistent_schema.json", jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", testSchema)

	err := ValidateJSON(schemaPath, "testdata/nonexistent_json.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": 5}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Errors[0].Field)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateContentRecord_Valid(t *testing.T) {
	record := `{
		"basic": {"name": "Erika Mustermann"},
		"contact": {"email": "erika@example.de"},
		"profile": {"title": "Berufliches Profil", "description": "**Hi**"},
		"experience": {"title": "Beruflicher Werdegang", "items": [{"role": "Dev", "description": "+ a"}]},
		"education": {"items": [{"institution": "TU", "degree": "MSc", "major": "CS"}]},
		"skill": {"groups": [{"item": ["Go", "SQL"]}]},
		"project": {"items": [{"name": "cv"}]},
		"reference": {"items": [{"name": "Max"}]}
	}`

	assert.NoError(t, ValidateContentRecord([]byte(record)))
}

func TestValidateContentRecord_Empty(t *testing.T) {
	assert.NoError(t, ValidateContentRecord([]byte(`{}`)))
}

func TestValidateContentRecord_WrongTypes(t *testing.T) {
	record := `{"skill": {"groups": [{"item": ["Go", 3]}]}, "experience": {"items": {"role": "x"}}}`

	err := ValidateContentRecord([]byte(record))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 2)
}

func TestValidateContentRecord_Malformed(t *testing.T) {
	err := ValidateContentRecord([]byte(`{ invalid json }`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateContentRecordFile(t *testing.T) {
	path := writeFile(t, "data_en.json", `{"basic": {"name": "Jane"}}`)
	assert.NoError(t, ValidateContentRecordFile(path))

	err := ValidateContentRecordFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read content record")
}

func TestSchemaLoadError_Unwrap(t *testing.T) {
	cause := os.ErrNotExist
	err := &SchemaLoadError{Path: "x.json", Message: "boom", Cause: cause}
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "x.json")
}
