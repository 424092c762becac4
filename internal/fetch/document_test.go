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
)

const testSkeleton = `<!DOCTYPE html><html><head></head><body><h1 class="cv-name">Old</h1></body></html>`

func TestLoadSkeleton_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(testSkeleton), 0644))

	skeleton, err := LoadSkeleton(context.Background(), path, nil)
	require.NoError(t, err)

	doc, err := skeleton.Document()
	require.NoError(t, err)
	assert.Equal(t, "Old", doc.Find(".cv-name").Text())
}

func TestLoadSkeleton_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(testSkeleton))
	}))
	defer server.Close()

	skeleton, err := LoadSkeleton(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, skeleton.Location)
	assert.Equal(t, testSkeleton, string(skeleton.HTML))
}

func TestLoadSkeleton_Errors(t *testing.T) {
	_, err := LoadSkeleton(context.Background(), "", nil)
	assert.Error(t, err)

	_, err = LoadSkeleton(context.Background(), "/nonexistent/index.html", nil)
	require.Error(t, err)
	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestSkeleton_DocumentsAreIndependent(t *testing.T) {
	skeleton := &Skeleton{Location: "inline", HTML: []byte(testSkeleton)}

	first, err := skeleton.Document()
	require.NoError(t, err)
	first.Find(".cv-name").SetText("Changed")

	second, err := skeleton.Document()
	require.NoError(t, err)
	assert.Equal(t, "Old", second.Find(".cv-name").Text())
}

func TestRenderDocument(t *testing.T) {
	skeleton := &Skeleton{Location: "inline", HTML: []byte(testSkeleton)}
	doc, err := skeleton.Document()
	require.NoError(t, err)

	html, err := RenderDocument(doc)
	require.NoError(t, err)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `<h1 class="cv-name">Old</h1>`)
}
