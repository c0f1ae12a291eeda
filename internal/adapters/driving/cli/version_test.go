package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_PrintsVersion(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	oldVersion := version
	version = "1.2.3"
	defer func() { version = oldVersion }()

	out, err := execute("version")
	require.NoError(t, err)
	assert.Equal(t, "inkforge version 1.2.3\n", out)
}
