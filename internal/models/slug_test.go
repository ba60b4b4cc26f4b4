package models_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wahidu1/portfolio-core/internal/models"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":           "hello-world",
		"  Spaces  Everywhere ": "spaces-everywhere",
		"Go 1.24 Released!":     "go-1-24-released",
		"already-a-slug":        "already-a-slug",
		"___":                   "",
		"":                      "",
	}
	for in, want := range cases {
		require.Equal(t, want, models.Slugify(in), "input %q", in)
	}
}
