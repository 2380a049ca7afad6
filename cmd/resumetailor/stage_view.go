package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"resumetailor/internal/progress"
)

// stageView renders the stage projection incrementally: each stage gets one
// status line as it completes, and a spinner tracks the active stage on
// terminals.
type stageView struct {
	out      io.Writer
	colorize bool
	spinner  *progressbar.ProgressBar
	last     map[progress.Step]progress.Status
}

func newStageView(out io.Writer) *stageView {
	return &stageView{
		out:      out,
		colorize: shouldColorize(out),
		last:     make(map[progress.Step]progress.Status),
	}
}

// render prints the status lines for stages whose projected status changed
// since the last call. Idle states project nothing and render nothing.
func (v *stageView) render(state progress.State) {
	projection := progress.Project(state, progress.Stages())
	if projection == nil {
		return
	}

	for _, stage := range progress.Stages() {
		status := projection[stage]
		if v.last[stage] == status {
			continue
		}
		v.last[stage] = status

		switch status {
		case progress.StatusComplete:
			v.clearSpinner()
			fmt.Fprintln(v.out, renderStatusLine(stage.Label(), statusOK, "", v.colorize))
		case progress.StatusActive:
			if state.Step == progress.StepError {
				continue
			}
			if v.colorize {
				v.describeSpinner(stage.Label())
			} else {
				fmt.Fprintln(v.out, renderStatusLine(stage.Label(), statusInfo, "in progress", v.colorize))
			}
		}
	}
}

// tick animates the spinner between renders.
func (v *stageView) tick() {
	if v.spinner != nil {
		_ = v.spinner.Add(1)
	}
}

// finish stops the spinner and prints the terminal line for an errored flow.
func (v *stageView) finish(state progress.State) {
	v.render(state)
	v.clearSpinner()
	if state.Step == progress.StepError {
		fmt.Fprintln(v.out, renderStatusLine(state.ErroredAt.Label(), statusError, state.ErrorMessage, v.colorize))
	}
}

func (v *stageView) describeSpinner(label string) {
	if v.spinner == nil {
		v.spinner = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(v.out),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetDescription(statusIndent+label),
		)
		return
	}
	v.spinner.Describe(statusIndent + label)
}

func (v *stageView) clearSpinner() {
	if v.spinner == nil {
		return
	}
	_ = v.spinner.Clear()
}
