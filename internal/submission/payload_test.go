package submission_test

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"resumetailor/internal/submission"
)

func parsePayload(t *testing.T, payload *submission.Payload) *multipart.Reader {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(payload.ContentType)
	if err != nil {
		t.Fatalf("parse content type: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("unexpected media type %q", mediaType)
	}
	return multipart.NewReader(bytes.NewReader(payload.Body), params["boundary"])
}

func TestBuildPayloadFullSubmission(t *testing.T) {
	payload, err := submission.BuildPayload(submission.Submission{
		Document:     validDocument(),
		CriteriaText: longCriteria(),
		CompanyName:  "Acme",
		JobTitle:     "Platform Engineer",
	})
	if err != nil {
		t.Fatalf("BuildPayload returned error: %v", err)
	}

	reader := parsePayload(t, payload)
	fields := map[string]string{}
	var resumeName, resumeType string
	var resumeBody []byte
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read part: %v", err)
		}
		data, err := io.ReadAll(part)
		if err != nil {
			t.Fatalf("read part body: %v", err)
		}
		if part.FormName() == submission.FieldResume {
			resumeName = part.FileName()
			resumeType = part.Header.Get("Content-Type")
			resumeBody = data
			continue
		}
		fields[part.FormName()] = string(data)
	}

	if resumeName != "resume.pdf" || resumeType != "application/pdf" {
		t.Fatalf("unexpected resume part: name=%q type=%q", resumeName, resumeType)
	}
	if !bytes.HasPrefix(resumeBody, []byte("%PDF-")) {
		t.Fatalf("unexpected resume body %q", resumeBody)
	}
	if fields[submission.FieldJobDescription] != longCriteria() {
		t.Fatalf("job description mismatch: %q", fields[submission.FieldJobDescription])
	}
	if fields[submission.FieldCompanyName] != "Acme" || fields[submission.FieldJobTitle] != "Platform Engineer" {
		t.Fatalf("unexpected optional fields: %v", fields)
	}
}

func TestBuildPayloadOmitsBlankOptionalFields(t *testing.T) {
	payload, err := submission.BuildPayload(submission.Submission{
		Document:     validDocument(),
		CriteriaText: longCriteria(),
		CompanyName:  "   ",
	})
	if err != nil {
		t.Fatalf("BuildPayload returned error: %v", err)
	}

	reader := parsePayload(t, payload)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read part: %v", err)
		}
		name := part.FormName()
		if name == submission.FieldCompanyName || name == submission.FieldJobTitle {
			t.Fatalf("optional field %q should be omitted entirely", name)
		}
		_, _ = io.Copy(io.Discard, part)
	}
}

func TestBuildPayloadDeterministicFieldSet(t *testing.T) {
	sub := submission.Submission{
		Document:     validDocument(),
		CriteriaText: longCriteria(),
		JobTitle:     "SRE",
	}
	first, err := submission.BuildPayload(sub)
	if err != nil {
		t.Fatalf("BuildPayload returned error: %v", err)
	}
	second, err := submission.BuildPayload(sub)
	if err != nil {
		t.Fatalf("BuildPayload returned error: %v", err)
	}

	names := func(p *submission.Payload) []string {
		reader := parsePayload(t, p)
		var out []string
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("read part: %v", err)
			}
			out = append(out, part.FormName())
			_, _ = io.Copy(io.Discard, part)
		}
		return out
	}

	if strings.Join(names(first), ",") != strings.Join(names(second), ",") {
		t.Fatal("payload field order should be deterministic")
	}
}
