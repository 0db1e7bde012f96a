// Package embedded provides access to embedded language tables.
package embedded

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed lang/*.yaml
var langFS embed.FS

// LanguageData returns the raw YAML translation table for locale.
func LanguageData(locale string) ([]byte, error) {
	data, err := langFS.ReadFile(path.Join("lang", locale+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("no translations for locale '%s': %w", locale, err)
	}
	return data, nil
}

// Locales returns the locales that have an embedded translation table, sorted.
func Locales() []string {
	entries, err := langFS.ReadDir("lang")
	if err != nil {
		return nil
	}

	locales := make([]string, 0, len(entries))
	for _, entry := range entries {
		locales = append(locales, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(locales)
	return locales
}
