package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverlay(t *testing.T) {
	env := map[string]string{
		"MENUGEN_USER":     "bob",
		"MENUGEN_DATA_DIR": "",
		"MENUGEN_VERBOSE":  "1",
		"MENUGEN_MCP_PORT": "not-a-port",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	overlay := envOverlay(lookup)

	assert.Equal(t, map[string]any{
		"user.id":     "bob",
		"log.verbose": true,
	}, overlay)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MENUGEN_USER", "")
	t.Setenv("MENUGEN_DATA_DIR", "")
	t.Setenv("MENUGEN_VERBOSE", "")
	t.Setenv("MENUGEN_MCP_PORT", "")
	assert.Empty(t, EnvOverrides())

	t.Setenv("MENUGEN_MCP_PORT", "9000")
	t.Setenv("MENUGEN_USER", "carol")

	assert.Equal(t, []string{"user.id", "mcp.port"}, EnvOverrides())
}
