package pipeline

import (
	"strings"
	"testing"
)

func TestAddNamespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare svg tag",
			input: `<svg></svg>`,
			want:  `<svg xmlns="http://www.w3.org/2000/svg"></svg>`,
		},
		{
			name:  "existing attributes pushed after namespace",
			input: `<svg width="10" height="10"><rect/></svg>`,
			want:  `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect/></svg>`,
		},
		{
			name:  "already namespaced is unchanged",
			input: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1 1"></svg>`,
			want:  `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1 1"></svg>`,
		},
		{
			name:  "only the first svg token is touched",
			input: `<svg><svg></svg></svg>`,
			want:  `<svg xmlns="http://www.w3.org/2000/svg"><svg></svg></svg>`,
		},
		{
			name:  "single quoted namespace is not an exact match",
			input: `<svg xmlns='http://www.w3.org/2000/svg'></svg>`,
			want:  `<svg xmlns="http://www.w3.org/2000/svg" xmlns='http://www.w3.org/2000/svg'></svg>`,
		},
		{
			name:  "no svg token",
			input: `<div></div>`,
			want:  `<div></div>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := AddNamespace(tt.input); got != tt.want {
				t.Errorf("AddNamespace() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddNamespace_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`<svg></svg>`,
		"<?xml version=\"1.0\"?>\n<svg width=\"1\">\n</svg>",
		`<SVG></SVG>`,
	}

	for _, in := range inputs {
		once := AddNamespace(in)
		twice := AddNamespace(once)
		if once != twice {
			t.Errorf("AddNamespace not idempotent for %q: %q then %q", in, once, twice)
		}
		if strings.Contains(in, "<svg") && strings.Count(once, SVGNamespace) != 1 {
			t.Errorf("AddNamespace(%q) inserted %d namespaces, want 1", in, strings.Count(once, SVGNamespace))
		}
	}
}
