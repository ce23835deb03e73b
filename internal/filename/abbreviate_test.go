package filename

import "testing"

func TestAbbreviateToken(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		maxLen int
		want   string
	}{
		{"short token unchanged", "notes", 10, "notes"},
		{"exactly at limit", "abcdefghij", 10, "abcdefghij"},
		{"digits never abbreviated", "123456789012345", 10, "123456789012345"},
		{"camel case initials", "NetworkConfigurationProtocol", 10, "NCP"},
		{"two caps suffice", "SuperlongidentifierValue", 10, "SV"},
		{"snake case initials", "very_long_identifier_name", 10, "vlin"},
		{"hyphenated initials", "multi-part-token-name", 10, "mptn"},
		{"vowel drop keeps ends", "supplementary", 10, "spplmntry"},
		{"vowel drop truncates", "incomprehensibilities", 10, "incmprhnsb"},
		{"all vowels falls back to prefix", "aaaaaaaaaaaa", 10, "aaaaaaaaaa"},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AbbreviateToken(tt.token, tt.maxLen); got != tt.want {
				t.Errorf("AbbreviateToken(%q, %d) = %q, want %q", tt.token, tt.maxLen, got, tt.want)
			}
		})
	}
}
