package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sites.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadBasic(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "title,url,image,description\nGmail,https://gmail.com,,Correo web\n")
	header, records, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"title", "url", "image", "description"}, header)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].Line)
	assert.Equal(t, "Gmail", records[0].Fields["title"])
	assert.Equal(t, "https://gmail.com", records[0].Fields["url"])
	assert.Equal(t, "", records[0].Fields["image"])
	assert.Equal(t, "Correo web", records[0].Fields["description"])
}

func TestReadStripsBOM(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "\xef\xbb\xbftitle,url,image,description\nWiki,https://wikipedia.org,,libre\n")
	header, records, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "title", header[0])
	require.Len(t, records, 1)
	assert.Equal(t, "Wiki", records[0].Fields["title"])
}

func TestReadExtraColumnsAndShortRows(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "title,url,image,description,tag\nA,https://a.example,,,news\nB,https://b.example\n")
	header, records, err := Read(path)
	require.NoError(t, err)

	assert.Contains(t, header, "tag")
	require.Len(t, records, 2)
	assert.Equal(t, "news", records[0].Fields["tag"])
	// Short rows pad the missing trailing fields.
	assert.Equal(t, "", records[1].Fields["description"])
	assert.Equal(t, "", records[1].Fields["tag"])
	assert.Equal(t, 3, records[1].Line)
}

func TestReadMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestReadEmptyFile(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "")
	_, _, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}
