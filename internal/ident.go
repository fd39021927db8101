package internal

import (
	"path/filepath"
	"strings"
)

// ArrayName derives a C identifier from a file path.
// The directory and the last extension are dropped, and every rune that is not
// valid inside a C identifier is replaced with '_' ("index_html_gz.h" -> "index_html_gz").
func ArrayName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "data"
	}

	var sb strings.Builder
	for i, r := range base {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
			sb.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
