package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSectionHeader(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"Experience header", "EXPERIENCE", true},
		{"Education header", "Education", true},
		{"Skills header with decoration", "--- Skills ---", true},
		{"Projects header", "Projects", true},
		{"Certifications header", "Certifications", true},
		{"Languages header", "Languages", true},
		{"Plain sentence", "I enjoy building things.", false},
		{"Long sentence mentioning education", "Throughout my career I have valued continuous education and professional growth.", false},
		{"Empty line", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSectionHeader(tt.line))
		})
	}
}

func TestIsLikelyName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"Simple two-word name", "Jane Smith", true},
		{"Three-word name", "Mary Jane Watson", true},
		{"Name with middle initial", "John Q. Public", true},
		{"All caps name", "JANE SMITH", true},
		{"Single word", "Jane", false},
		{"Five words", "One Two Three Four Five", false},
		{"Lowercase word", "jane Smith", false},
		{"Resume heading", "RESUME 2024", false},
		{"Curriculum vitae", "CURRICULUM VITAE", false},
		{"Contact section", "CONTACT INFORMATION", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLikelyName(tt.text))
		})
	}
}

func TestEmailPatterns(t *testing.T) {
	text := "Reach me at jane.smith@example.com or on LinkedIn."
	assert.Equal(t, "jane.smith@example.com", Email[0].FindString(text))
}

func TestPhonePatterns(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"NANP formatted", "(555) 123-4567"},
		{"International", "+44 2071234567"},
		{"Loose digit run", "555.123.4567 x89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := false
			for _, pattern := range Phone {
				if pattern.MatchString(tt.text) {
					found = true
					break
				}
			}
			assert.True(t, found, "expected a phone pattern to match %q", tt.text)
		})
	}
}

func TestSocialLinkPatterns(t *testing.T) {
	text := "https://www.linkedin.com/in/jane-smith and github.com/janesmith"
	var matches []string
	for _, pattern := range SocialLinks {
		matches = append(matches, pattern.FindAllString(text, -1)...)
	}
	assert.Len(t, matches, 2)
}

func TestDateRangePatterns(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"Year to year", "2019 - 2022", true},
		{"Year to present", "2021 - Present", true},
		{"Month year range", "January 2020 - March 2023", true},
		{"No dates", "Built internal tooling", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := false
			for _, pattern := range DateRange {
				if pattern.MatchString(tt.line) {
					found = true
					break
				}
			}
			assert.Equal(t, tt.expected, found)
		})
	}
}
