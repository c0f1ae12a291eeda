package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseCmd_Use(t *testing.T) {
	assert.Equal(t, "parse [file]", parseCmd.Use)
}

func TestParseCmd_OutputsJSONTree(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTempFile(t, "post.md", "# Title\n\nBody text.")

	out, err := execute("parse", path)
	require.NoError(t, err)

	var blocks []domain.Block
	require.NoError(t, json.Unmarshal([]byte(out), &blocks))
	require.Len(t, blocks, 2)
	assert.Equal(t, domain.KindHeading, blocks[0].Kind)
	assert.Equal(t, domain.KindParagraph, blocks[1].Kind)
}

func TestParseCmd_CompactFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { parseCompact = false }()

	path := writeTempFile(t, "post.md", "# Title")

	out, err := execute("parse", "--compact", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "\n  ")
}

func TestParseCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("parse", "/does/not/exist.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading /does/not/exist.md")
}

func TestRenderCmd_Use(t *testing.T) {
	assert.Equal(t, "render [file]", renderCmd.Use)
}

func TestRenderCmd_RoundTripsParseOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	source := "# Title\n\n- one\n- two\n"
	parsed, err := execute("parse", writeTempFile(t, "in.md", source))
	require.NoError(t, err)

	out, err := execute("render", writeTempFile(t, "tree.json", parsed))
	require.NoError(t, err)
	assert.Equal(t, source, out)
}

func TestRenderCmd_RejectsCorruptJSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("render", writeTempFile(t, "bad.json", "{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding tree")
}
