package exceptions

import (
	"sort"
	"strings"
)

// FormatFieldErrors flattens a field error map into a single readable line,
// with paths sorted so the output is stable.
func FormatFieldErrors(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}

	paths := make([]string, 0, len(fields))
	for path := range fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, path+": "+fields[path])
	}
	return strings.Join(parts, ", ")
}
