package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateMediaName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "script", input: "preview.js"},
		{name: "stylesheet", input: "background.css"},
		{name: "svg icon", input: "icon.svg"},
		{name: "hyphenated", input: "dark-theme.css"},
		{name: "empty", input: "", wantErr: true},
		{name: "forward slash", input: "media/preview.js", wantErr: true},
		{name: "backslash", input: `media\preview.js`, wantErr: true},
		{name: "parent traversal", input: "..css", wantErr: true},
		{name: "null byte", input: "a\x00.js", wantErr: true},
		{name: "no extension", input: "preview", wantErr: true},
		{name: "html not allowed", input: "index.html", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateMediaName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMediaName) {
					t.Errorf("ValidateMediaName(%q) = %v, want ErrInvalidMediaName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateMediaName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestValidateMediaName_ErrorMessages(t *testing.T) {
	t.Parallel()

	err := ValidateMediaName("index.html")
	if err == nil || !strings.Contains(err.Error(), "unsupported extension") {
		t.Errorf("error = %v, want mention of unsupported extension", err)
	}

	err = ValidateMediaName("")
	if err == nil || !strings.Contains(err.Error(), "empty name") {
		t.Errorf("error = %v, want mention of empty name", err)
	}
}
