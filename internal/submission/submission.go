package submission

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"resumetailor/internal/services"
)

const (
	// MaxDocumentBytes is the upper bound on resume size (10 MiB).
	MaxDocumentBytes = 10 << 20
	// MinCriteriaLength is the job description length the criteria text must exceed.
	MinCriteriaLength = 50

	pdfMediaType = "application/pdf"
)

// Document is the resume file attached to a submission.
type Document struct {
	Name      string
	MediaType string
	Data      []byte
}

// Submission carries one user request through validation and payload assembly.
// It is constructed immediately before the request is issued and never mutated.
type Submission struct {
	Document     Document
	CriteriaText string
	CompanyName  string
	JobTitle     string
}

// ValidationResult reports whether a submission may be sent, with a
// human-readable reason when it may not.
type ValidationResult struct {
	Ready  bool
	Reason string
}

func notReady(reason string) ValidationResult {
	return ValidationResult{Reason: reason}
}

// Validate checks a submission without side effects. A submission is ready
// when a PDF document within the size bound is attached and the criteria text
// is long enough to be useful to the remote service.
func Validate(sub Submission) ValidationResult {
	if len(sub.Document.Data) == 0 {
		return notReady("Select a resume PDF to continue")
	}
	if !sub.Document.IsPDF() {
		return notReady("Resume must be a PDF file")
	}
	if len(sub.Document.Data) > MaxDocumentBytes {
		return notReady("Resume must be 10 MB or smaller")
	}
	if utf8.RuneCountInString(sub.CriteriaText) <= MinCriteriaLength {
		return notReady(fmt.Sprintf("Job description must be longer than %d characters", MinCriteriaLength))
	}
	return ValidationResult{Ready: true}
}

// IsPDF reports whether the document's media type or file extension
// indicates a PDF.
func (d Document) IsPDF() bool {
	mediaType := strings.ToLower(strings.TrimSpace(d.MediaType))
	if mediaType == pdfMediaType {
		return true
	}
	return strings.EqualFold(filepath.Ext(d.Name), ".pdf")
}

// LoadDocument reads a resume from disk, sniffing the media type from the
// file contents so renamed files are still recognized.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, services.Wrap(services.ErrValidation, "submission", "load document", "unable to read resume file", err)
	}
	return Document{
		Name:      filepath.Base(path),
		MediaType: detectMediaType(data),
		Data:      data,
	}, nil
}

func detectMediaType(data []byte) string {
	if len(data) >= 5 && string(data[:5]) == "%PDF-" {
		return pdfMediaType
	}
	return http.DetectContentType(data)
}
