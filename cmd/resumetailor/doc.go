// Command resumetailor submits a resume PDF and a job description to the
// remote tailoring service, renders staged progress while the request is in
// flight, and saves the generated resume.
package main
