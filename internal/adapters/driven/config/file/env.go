package file

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// envBinding maps an environment variable onto a config key.
type envBinding struct {
	env   string
	key   string
	parse func(string) (any, bool)
}

func asString(v string) (any, bool) { return v, v != "" }

func asInt(v string) (any, bool) {
	n, err := strconv.ParseInt(v, 10, 64)
	return n, err == nil
}

func asBool(v string) (any, bool) {
	b, err := strconv.ParseBool(v)
	return b, err == nil
}

var envBindings = []envBinding{
	{env: "MENUGEN_USER", key: "user.id", parse: asString},
	{env: "MENUGEN_DATA_DIR", key: "storage.data_dir", parse: asString},
	{env: "MENUGEN_VERBOSE", key: "log.verbose", parse: asBool},
	{env: "MENUGEN_MCP_PORT", key: "mcp.port", parse: asInt},
}

// envOverlay reads the bound variables from lookup. Unset and unparsable
// variables are skipped.
func envOverlay(lookup func(string) (string, bool)) map[string]any {
	overlay := make(map[string]any)
	for _, b := range envBindings {
		raw, ok := lookup(b.env)
		if !ok {
			continue
		}
		if v, ok := b.parse(raw); ok {
			overlay[b.key] = v
		}
	}
	return overlay
}

// LoadDotEnv loads variables from the .env file at path into the process
// environment. Variables already set are not overridden and a missing
// file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// EnvOverrides returns the config keys currently overridden by the
// environment.
func EnvOverrides() []string {
	overlay := envOverlay(os.LookupEnv)
	keys := make([]string, 0, len(overlay))
	for _, b := range envBindings {
		if _, ok := overlay[b.key]; ok {
			keys = append(keys, b.key)
		}
	}
	return keys
}
