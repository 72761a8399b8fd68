package common

import "testing"

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "https://example.com", "https://example.com"},
		{"surrounding whitespace", "  https://example.com \n", "https://example.com"},
		{"trailing comma", "https://example.com,", "https://example.com"},
		{"markdown link", "[docs](https://example.com/docs)", "https://example.com/docs"},
		{"wrapped in parens", "(https://example.com)", "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"https", "https://example.com", false},
		{"http with path", "http://example.com/a/b?q=1", false},
		{"empty", "", true},
		{"literal space", "https://example.com/a b", true},
		{"no scheme", "example.com", true},
		{"ftp", "ftp://example.com", true},
		{"braces in host", "https://example.com{}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}
