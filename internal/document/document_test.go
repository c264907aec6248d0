package document_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/hasbyte1/go-semantic-collections/internal/document"
	"github.com/hasbyte1/go-semantic-collections/semantic"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]document.Format{
		"json": document.FormatJSON,
		"YAML": document.FormatYAML,
		"yml":  document.FormatYAML,
	} {
		got, err := document.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := document.ParseFormat("toml")
	assert.ErrorIs(t, err, document.ErrUnknownFormat)

	_, err = document.FormatOf("config")
	assert.ErrorIs(t, err, document.ErrUnknownFormat)
}

func TestLoadJSONAndYAML(t *testing.T) {
	j := writeFile(t, "a.json", `{"b":1,"a":{"c":2}}`)
	y := writeFile(t, "b.yml", "b: 3\nd: [1, 2]\n")

	docs, err := document.LoadAll([]string{j, y})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, []string{"b", "a"}, docs[0].Keys())
	assert.Equal(t, []string{"b", "d"}, docs[1].Keys())
}

func TestLoadAllCollectsErrors(t *testing.T) {
	good := writeFile(t, "good.json", `{}`)
	list := writeFile(t, "list.json", `[1]`)
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	bad := writeFile(t, "bad.txt", `x`)

	_, err := document.LoadAll([]string{good, list, missing, bad})
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	assert.ErrorIs(t, errs[0], document.ErrNotMapping)
	assert.ErrorIs(t, errs[1], os.ErrNotExist)
	assert.ErrorIs(t, errs[2], document.ErrUnknownFormat)
}

func TestLoadInvalidJSON(t *testing.T) {
	_, err := document.Load(writeFile(t, "broken.json", `{"a":`))
	assert.ErrorIs(t, err, semantic.ErrInvalidDocument)
}

func TestLoadContainer(t *testing.T) {
	c, err := document.LoadContainer(writeFile(t, "list.yaml", "- 1\n- 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = document.LoadContainer(writeFile(t, "scalar.json", `3`))
	assert.ErrorIs(t, err, document.ErrNotContainer)
}

func TestEncode(t *testing.T) {
	m := semantic.MappingOf(semantic.E("b", 1), semantic.E("a", []any{"x", 2.0}))

	var buf bytes.Buffer
	require.NoError(t, document.Encode(&buf, semantic.Map(m), document.FormatJSON))
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    \"x\",\n    2.0\n  ]\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, document.Encode(&buf, semantic.Map(m), document.FormatYAML))
	assert.Equal(t, "b: 1\na:\n  - x\n  - 2.0\n", buf.String())

	buf.Reset()
	require.NoError(t, document.Encode(&buf, semantic.String("hi"), document.FormatJSON))
	assert.Equal(t, "\"hi\"\n", buf.String())

	assert.ErrorIs(t, document.Encode(&buf, semantic.Null(), "xml"), document.ErrUnknownFormat)
}
