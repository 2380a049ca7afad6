package tailor

import (
	"regexp"
	"strings"

	"resumetailor/internal/artifact"
)

// keywordsHeader carries the comma-separated keywords the service wove into
// the resume.
const keywordsHeader = "X-Keywords-Added"

var filenamePattern = regexp.MustCompile(`filename="?([^"]+)"?`)

// parseFilename extracts the suggested filename from a
// Content-Disposition-style header value, falling back to the default
// artifact name when the header is absent or does not match.
func parseFilename(header string) string {
	match := filenamePattern.FindStringSubmatch(header)
	if len(match) < 2 {
		return artifact.DefaultName
	}
	name := strings.TrimSpace(match[1])
	if name == "" {
		return artifact.DefaultName
	}
	return name
}

// parseKeywords splits the keyword header on commas, trimming whitespace and
// dropping empty tokens. Values are kept verbatim otherwise.
func parseKeywords(header string) []string {
	if strings.TrimSpace(header) == "" {
		return nil
	}
	parts := strings.Split(header, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			out = append(out, token)
		}
	}
	return out
}
