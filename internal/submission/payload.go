package submission

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"resumetailor/internal/services"
)

// Form field names expected by the remote tailoring service.
const (
	FieldResume         = "resume"
	FieldJobDescription = "job_description"
	FieldCompanyName    = "company_name"
	FieldJobTitle       = "job_title"
)

// Payload is the assembled multipart request body.
type Payload struct {
	ContentType string
	Body        []byte
}

// BuildPayload packages a submission into a multipart/form-data body.
// Optional fields are omitted entirely when blank so the remote side can
// distinguish "not provided" from "provided empty".
func BuildPayload(sub Submission) (*Payload, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreatePart(documentPartHeader(sub.Document))
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "submission", "build payload", "create resume part", err)
	}
	if _, err := part.Write(sub.Document.Data); err != nil {
		return nil, services.Wrap(services.ErrValidation, "submission", "build payload", "write resume part", err)
	}

	if err := writer.WriteField(FieldJobDescription, sub.CriteriaText); err != nil {
		return nil, services.Wrap(services.ErrValidation, "submission", "build payload", "write job description", err)
	}
	if company := strings.TrimSpace(sub.CompanyName); company != "" {
		if err := writer.WriteField(FieldCompanyName, company); err != nil {
			return nil, services.Wrap(services.ErrValidation, "submission", "build payload", "write company name", err)
		}
	}
	if title := strings.TrimSpace(sub.JobTitle); title != "" {
		if err := writer.WriteField(FieldJobTitle, title); err != nil {
			return nil, services.Wrap(services.ErrValidation, "submission", "build payload", "write job title", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, services.Wrap(services.ErrValidation, "submission", "build payload", "finalize body", err)
	}

	return &Payload{
		ContentType: writer.FormDataContentType(),
		Body:        buf.Bytes(),
	}, nil
}

func documentPartHeader(doc Document) textproto.MIMEHeader {
	name := doc.Name
	if name == "" {
		name = "resume.pdf"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, FieldResume, name))
	header.Set("Content-Type", pdfMediaType)
	return header
}
