package main

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"resumetailor/internal/submission"
)

func newValidateCommand(cctx *commandContext) *cobra.Command {
	var opts tailorOptions

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check inputs without submitting anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.resumePath, "resume", "r", "", "Path to the resume PDF")
	cmd.Flags().StringVarP(&opts.jobDescription, "job-description", "j", "", "Job description text")
	cmd.Flags().StringVarP(&opts.jobDescriptionFile, "job-description-file", "f", "", "Path to a file containing the job description")
	_ = cmd.MarkFlagRequired("resume")

	return cmd
}

func runValidate(cmd *cobra.Command, opts tailorOptions) error {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	fmt.Fprintln(out, renderSectionHeader("Input checks", colorize))

	failed := false
	report := func(label string, ok bool, detail string) {
		kind := statusOK
		if !ok {
			kind = statusError
			failed = true
		}
		fmt.Fprintln(out, renderStatusLine(label, kind, detail, colorize))
	}

	doc, err := submission.LoadDocument(opts.resumePath)
	if err != nil {
		report("Resume file", false, "unable to read "+opts.resumePath)
		return errors.New("input validation failed")
	}
	report("Resume file", true, doc.Name)
	report("PDF format", doc.IsPDF(), detailFor(doc.IsPDF(), doc.MediaType, "not recognized as PDF"))
	withinSize := len(doc.Data) <= submission.MaxDocumentBytes
	report("Size limit", withinSize, fmt.Sprintf("%d bytes", len(doc.Data)))

	criteria, err := resolveCriteria(opts)
	if err != nil {
		report("Job description", false, err.Error())
		return errors.New("input validation failed")
	}
	length := utf8.RuneCountInString(criteria)
	report("Job description", length > submission.MinCriteriaLength,
		fmt.Sprintf("%d characters (must exceed %d)", length, submission.MinCriteriaLength))

	if failed {
		return errors.New("input validation failed")
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderStatusLine("Ready", statusOK, "submission would be accepted", colorize))
	return nil
}

func detailFor(ok bool, okDetail, badDetail string) string {
	if ok {
		return okDetail
	}
	return badDetail
}
