package localization

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tables maps table names to their key/value entries.
type Tables map[string]map[string]string

// LoadTables walks fsys and parses every JSON/YAML file into a table named
// after the file. A nil filesystem yields an empty set.
func LoadTables(fsys fs.FS) (Tables, error) {
	tables := make(Tables)
	if fsys == nil {
		return tables, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isTableFile(p) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("localization: read %s: %w", p, err)
		}

		entries, err := parseTable(data, p)
		if err != nil {
			return err
		}

		name := tableName(p)
		if name == "" {
			return fmt.Errorf("localization: file %s has an empty table name", p)
		}
		if _, exists := tables[name]; exists {
			return fmt.Errorf("%w %q (file %s)", ErrDuplicateTable, name, p)
		}
		tables[name] = entries
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tables, nil
}

func parseTable(data []byte, source string) (map[string]string, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return map[string]string{}, nil
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err == nil {
		return normaliseEntries(entries), nil
	}
	if err := yaml.Unmarshal(data, &entries); err == nil {
		return normaliseEntries(entries), nil
	}
	return nil, fmt.Errorf("localization: parse %s: invalid JSON or YAML", source)
}

func normaliseEntries(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			continue
		}
		out[trimmed] = value
	}
	return out
}

func isTableFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func tableName(p string) string {
	base := path.Base(p)
	return strings.TrimSpace(strings.TrimSuffix(base, path.Ext(base)))
}
