package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Web Development", "web-development"},
		{"mixed case", "ACME Storefront", "acme-storefront"},
		{"punctuation collapses", "Brand & Identity -- Refresh!", "brand-identity-refresh"},
		{"leading and trailing junk", "  --Hello World--  ", "hello-world"},
		{"digits survive", "Top 10 Launches of 2025", "top-10-launches-of-2025"},
		{"unicode drops out", "Café Étoile", "caf-toile"},
		{"only junk", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}
