package extract

import (
	"strings"

	"github.com/jonathan/portfolio-builder/internal/patterns"
)

// Email returns the first match of the email patterns in the raw text
func Email(rawText string) (string, bool) {
	for _, pattern := range patterns.Email {
		if match := pattern.FindString(rawText); match != "" {
			return match, true
		}
	}
	return DefaultEmail, false
}

// Phone returns the first match among the phone pattern variants
func Phone(rawText string) (string, bool) {
	for _, pattern := range patterns.Phone {
		if match := pattern.FindString(rawText); match != "" {
			return strings.TrimSpace(match), true
		}
	}
	return DefaultPhone, false
}

// Address returns the first US street-address match, or empty when none
// is found. Address has no fallback sentinel: it is an optional field.
func Address(rawText string) (string, bool) {
	for _, pattern := range patterns.Address {
		if match := pattern.FindString(rawText); match != "" {
			return strings.TrimSpace(match), true
		}
	}
	return "", false
}

// SocialLinks returns all known-platform profile URLs found in the raw
// text, deduplicated in detection order.
func SocialLinks(rawText string) ([]string, bool) {
	var links []string
	seen := make(map[string]bool)
	for _, pattern := range patterns.SocialLinks {
		for _, match := range pattern.FindAllString(rawText, -1) {
			if !seen[match] {
				seen[match] = true
				links = append(links, match)
			}
		}
	}
	return links, len(links) > 0
}
