// Package submission validates user input and assembles the multipart
// payload sent to the remote tailoring service. Validation is pure and never
// reaches the orchestrator; invalid submissions surface a reason string the
// caller can display next to the offending input.
package submission
