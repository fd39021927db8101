package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"index_html_gz.h", "index_html_gz"},
		{"main/index_html_gz.h", "index_html_gz"},
		{"/abs/path/logo.png.h", "logo_png"},
		{"style-min.css", "style_min"},
		{"404.html", "_404"},
		{"noext", "noext"},
		{"änderung.h", "_nderung"},
		{".h", "data"},
		{"", "data"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ArrayName(tt.path), "path %q", tt.path)
	}
}
