package tailor

import (
	"reflect"
	"testing"

	"resumetailor/internal/artifact"
)

func TestParseFilename(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"quoted", `attachment; filename="Jane_Doe_Resume.pdf"`, "Jane_Doe_Resume.pdf"},
		{"unquoted", `attachment; filename=Resume_Acme_SRE.pdf`, "Resume_Acme_SRE.pdf"},
		{"missing header", "", artifact.DefaultName},
		{"no filename param", "attachment", artifact.DefaultName},
		{"empty value", `attachment; filename=" "`, artifact.DefaultName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseFilename(tc.header); got != tc.want {
				t.Fatalf("parseFilename(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}

func TestParseKeywordsDropsEmptyTokens(t *testing.T) {
	got := parseKeywords("Python, , Go")
	want := []string{"Python", "Go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseKeywords = %v, want %v", got, want)
	}
}

func TestParseKeywordsAbsentHeader(t *testing.T) {
	if got := parseKeywords(""); got != nil {
		t.Fatalf("expected nil for absent header, got %v", got)
	}
}

func TestParseKeywordsVerbatimValues(t *testing.T) {
	got := parseKeywords("CI/CD,  Kubernetes , gRPC")
	want := []string{"CI/CD", "Kubernetes", "gRPC"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseKeywords = %v, want %v", got, want)
	}
}
