package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"resumetailor/internal/artifact"
	"resumetailor/internal/config"
	"resumetailor/internal/progress"
	"resumetailor/internal/submission"
	"resumetailor/internal/tailor"
)

type tailorOptions struct {
	resumePath         string
	jobDescription     string
	jobDescriptionFile string
	companyName        string
	jobTitle           string
	outputDir          string
}

func newTailorCommand(cctx *commandContext) *cobra.Command {
	var opts tailorOptions

	cmd := &cobra.Command{
		Use:   "tailor",
		Short: "Generate a resume tailored to a job description",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTailor(cmd, cctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.resumePath, "resume", "r", "", "Path to the resume PDF")
	cmd.Flags().StringVarP(&opts.jobDescription, "job-description", "j", "", "Job description text")
	cmd.Flags().StringVarP(&opts.jobDescriptionFile, "job-description-file", "f", "", "Path to a file containing the job description")
	cmd.Flags().StringVar(&opts.companyName, "company", "", "Company name (inferred remotely when omitted)")
	cmd.Flags().StringVar(&opts.jobTitle, "title", "", "Job title (inferred remotely when omitted)")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "Directory to save the tailored resume into")
	_ = cmd.MarkFlagRequired("resume")

	return cmd
}

func runTailor(cmd *cobra.Command, cctx *commandContext, opts tailorOptions) error {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cctx.ensureLogger()
	if err != nil {
		return err
	}

	criteria, err := resolveCriteria(opts)
	if err != nil {
		return err
	}
	doc, err := submission.LoadDocument(opts.resumePath)
	if err != nil {
		return err
	}

	sub := submission.Submission{
		Document:     doc,
		CriteriaText: criteria,
		CompanyName:  opts.companyName,
		JobTitle:     opts.jobTitle,
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	if result := submission.Validate(sub); !result.Ready {
		fmt.Fprintln(out, renderStatusLine("Input", statusError, result.Reason, colorize))
		return errors.New(result.Reason)
	}

	outputDir := strings.TrimSpace(opts.outputDir)
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	} else if outputDir, err = config.ExpandPath(outputDir); err != nil {
		return err
	}

	tracker := progress.NewTracker()
	manager := artifact.NewManager(logger)
	client := tailor.NewClient(tailor.Config{
		BaseURL:        cfg.Endpoint.URL,
		TimeoutSeconds: cfg.Endpoint.RequestTimeout,
	})
	analyzing, tailoring, generating := cfg.StageDelays()
	orch := tailor.NewOrchestrator(client, tracker, manager, logger, tailor.WithSchedule(progress.Schedule{
		Analyzing:  analyzing,
		Tailoring:  tailoring,
		Generating: generating,
	}))

	fmt.Fprintln(out, renderSectionHeader("Tailoring "+doc.Name, colorize))

	type submitOutcome struct {
		art *artifact.Artifact
		err error
	}
	done := make(chan submitOutcome, 1)
	go func() {
		art, err := orch.Submit(cmd.Context(), sub)
		done <- submitOutcome{art: art, err: err}
	}()

	view := newStageView(out)
	ticker := time.NewTicker(120 * time.Millisecond)
	defer ticker.Stop()

	var outcome submitOutcome
wait:
	for {
		select {
		case outcome = <-done:
			break wait
		case <-ticker.C:
			view.render(tracker.Snapshot())
			view.tick()
		}
	}
	view.finish(tracker.Snapshot())

	if outcome.err != nil {
		state := tracker.Snapshot()
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderStatusLine("Result", statusError, state.ErrorMessage, colorize))
		fmt.Fprintln(out, statusIndent+"Run the command again to retry.")
		return errors.New(state.ErrorMessage)
	}

	path, err := manager.Export(outcome.art, outputDir)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderStatusLine("Result", statusOK, "resume generated", colorize))
	fmt.Fprintln(out, statusIndent+"Saved to "+path)
	printKeywords(out, outcome.art.AddedKeywords())

	// The session ends with the command; release the artifact explicitly.
	orch.Reset()
	return nil
}

func resolveCriteria(opts tailorOptions) (string, error) {
	inline := strings.TrimSpace(opts.jobDescription) != ""
	fromFile := strings.TrimSpace(opts.jobDescriptionFile) != ""
	switch {
	case inline && fromFile:
		return "", errors.New("use either --job-description or --job-description-file, not both")
	case inline:
		return opts.jobDescription, nil
	case fromFile:
		data, err := os.ReadFile(opts.jobDescriptionFile)
		if err != nil {
			return "", fmt.Errorf("read job description file: %w", err)
		}
		return string(data), nil
	default:
		return "", errors.New("a job description is required (--job-description or --job-description-file)")
	}
}

func printKeywords(out io.Writer, keywords []string) {
	if len(keywords) == 0 {
		fmt.Fprintln(out, statusIndent+"No keywords reported.")
		return
	}
	rows := make([][]string, 0, len(keywords))
	for i, keyword := range keywords {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), keyword})
	}
	fmt.Fprintln(out, renderTable([]string{"#", "Keyword added"}, rows))
}
