package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-online/internal/types"
)

func TestParseRecord_Valid(t *testing.T) {
	record, err := ParseRecord("inline", []byte(`{"basic":{"name":"Jane"},"extra":true}`))
	require.NoError(t, err)
	require.NotNil(t, record.Basic)
	assert.Equal(t, "Jane", record.Basic.Name)
}

func TestParseRecord_Malformed(t *testing.T) {
	_, err := ParseRecord("inline", []byte(`<html>not json</html>`))
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "inline", parseErr.Source)
	assert.Contains(t, err.Error(), "failed to parse content record")
}

func TestHTTPSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data_fr.json":
			_, _ = w.Write([]byte(`{"profile":{"title":"Profil professionnel"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL+"/", nil)

	record, err := source.Fetch(context.Background(), types.French)
	require.NoError(t, err)
	require.NotNil(t, record.Profile)
	assert.Equal(t, "Profil professionnel", record.Profile.Title)

	_, err = source.Fetch(context.Background(), types.German)
	require.Error(t, err)
	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestHTTPSource_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("oops"))
	}))
	defer server.Close()

	_, err := NewHTTPSource(server.URL, nil).Fetch(context.Background(), types.English)
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestDirSource_Fetch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data_de.json"), []byte(`{"basic":{"name":"Erika"}}`), 0644))

	source := NewDirSource(dir)
	assert.Equal(t, filepath.Join(dir, "data_de.json"), source.Path(types.German))

	record, err := source.Fetch(context.Background(), types.German)
	require.NoError(t, err)
	assert.Equal(t, "Erika", record.Basic.Name)

	_, err = source.Fetch(context.Background(), types.English)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"basic":{"name":"Any"}}`), 0644))

	source := &FileSource{Path: path}
	for _, lang := range types.SupportedLanguages {
		record, err := source.Fetch(context.Background(), lang)
		require.NoError(t, err)
		assert.Equal(t, "Any", record.Basic.Name)
	}
}

func TestNewSource(t *testing.T) {
	assert.IsType(t, &HTTPSource{}, NewSource("https://cv.example.com", nil))
	assert.IsType(t, &DirSource{}, NewSource("./public", nil))
}
