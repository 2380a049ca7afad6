// Package tailor talks to the remote tailoring service and orchestrates the
// submission flow around it. The remote operation is a single opaque
// request-response; the orchestrator pairs it with the stage simulator and
// enforces cancel-before-terminal-write when the request settles.
package tailor
