package submission_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resumetailor/internal/submission"
)

func validDocument() submission.Document {
	return submission.Document{
		Name:      "resume.pdf",
		MediaType: "application/pdf",
		Data:      []byte("%PDF-1.7 fake"),
	}
}

func longCriteria() string {
	return strings.Repeat("senior gopher wanted ", 5)
}

func TestValidateReady(t *testing.T) {
	res := submission.Validate(submission.Submission{
		Document:     validDocument(),
		CriteriaText: longCriteria(),
	})
	if !res.Ready {
		t.Fatalf("expected ready, got reason %q", res.Reason)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		sub    submission.Submission
		reason string
	}{
		{
			name:   "missing document",
			sub:    submission.Submission{CriteriaText: longCriteria()},
			reason: "Select a resume",
		},
		{
			name: "wrong type",
			sub: submission.Submission{
				Document:     submission.Document{Name: "resume.docx", MediaType: "application/msword", Data: []byte("doc")},
				CriteriaText: longCriteria(),
			},
			reason: "must be a PDF",
		},
		{
			name: "oversized",
			sub: submission.Submission{
				Document: submission.Document{
					Name:      "resume.pdf",
					MediaType: "application/pdf",
					Data:      make([]byte, 11<<20),
				},
				CriteriaText: longCriteria(),
			},
			reason: "10 MB or smaller",
		},
		{
			name: "criteria too short",
			sub: submission.Submission{
				Document:     validDocument(),
				CriteriaText: strings.Repeat("x", 50),
			},
			reason: "longer than 50 characters",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := submission.Validate(tc.sub)
			if res.Ready {
				t.Fatal("expected rejection")
			}
			if !strings.Contains(res.Reason, tc.reason) {
				t.Fatalf("reason %q does not mention %q", res.Reason, tc.reason)
			}
		})
	}
}

func TestValidateBoundaryCriteriaLength(t *testing.T) {
	sub := submission.Submission{
		Document:     validDocument(),
		CriteriaText: strings.Repeat("a", 51),
	}
	if res := submission.Validate(sub); !res.Ready {
		t.Fatalf("51-character criteria should be ready, got %q", res.Reason)
	}
}

func TestValidateExtensionFallback(t *testing.T) {
	sub := submission.Submission{
		Document: submission.Document{
			Name:      "Resume.PDF",
			MediaType: "application/octet-stream",
			Data:      []byte("binary"),
		},
		CriteriaText: longCriteria(),
	}
	if res := submission.Validate(sub); !res.Ready {
		t.Fatalf("pdf extension should satisfy type check, got %q", res.Reason)
	}
}

func TestValidateSizeBoundary(t *testing.T) {
	sub := submission.Submission{
		Document: submission.Document{
			Name:      "resume.pdf",
			MediaType: "application/pdf",
			Data:      make([]byte, submission.MaxDocumentBytes),
		},
		CriteriaText: longCriteria(),
	}
	if res := submission.Validate(sub); !res.Ready {
		t.Fatalf("exactly 10 MiB should be accepted, got %q", res.Reason)
	}
}

func TestLoadDocumentSniffsPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "renamed.bin")
	if err := os.WriteFile(path, []byte("%PDF-1.4 content"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	doc, err := submission.LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument returned error: %v", err)
	}
	if doc.MediaType != "application/pdf" {
		t.Fatalf("expected sniffed pdf media type, got %q", doc.MediaType)
	}
	if doc.Name != "renamed.bin" {
		t.Fatalf("unexpected document name %q", doc.Name)
	}
	if !bytes.HasPrefix(doc.Data, []byte("%PDF-")) {
		t.Fatalf("unexpected data %q", doc.Data)
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	if _, err := submission.LoadDocument(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
