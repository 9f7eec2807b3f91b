package sqlite

import (
	"embed"
	"io/fs"
	"sort"
)

// Схема хранилища: файлы NNN_*.sql применяются по порядку имени.
//
//go:embed migrations/*.sql
var migrationFS embed.FS

// migrationScripts возвращает тексты миграций в порядке применения.
func migrationScripts() ([]string, error) {
	names, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	scripts := make([]string, 0, len(names))
	for _, n := range names {
		b, err := migrationFS.ReadFile(n)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, string(b))
	}
	return scripts, nil
}
