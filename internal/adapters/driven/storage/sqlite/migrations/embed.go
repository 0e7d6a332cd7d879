// Package migrations embeds the SQL schema for the SQLite store and lists
// the versioned up migrations in apply order.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// FS holds the NNN_name.up.sql and NNN_name.down.sql files.
//
//go:embed *.sql
var FS embed.FS

// Migration is one up script.
type Migration struct {
	Version int
	Name    string
}

// List returns the up migrations in fsys ordered by version. Files whose
// name does not start with a version number are skipped.
func List(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading migrations directory: %w", err)
	}

	var out []Migration
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		out = append(out, Migration{Version: version, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}
