package tailor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"resumetailor/internal/artifact"
	"resumetailor/internal/logging"
	"resumetailor/internal/progress"
	"resumetailor/internal/services"
	"resumetailor/internal/submission"
)

// Orchestrator drives one submission through the full flow: validation,
// payload assembly, the real request racing the simulated stage timers, and
// the terminal transition. It owns the ordering rule that makes the race
// safe: the simulator is cancelled before the terminal state is written.
type Orchestrator struct {
	client    *Client
	tracker   *progress.Tracker
	artifacts *artifact.Manager
	schedule  progress.Schedule
	logger    *slog.Logger
}

// OrchestratorOption configures optional Orchestrator behavior.
type OrchestratorOption func(*Orchestrator)

// WithSchedule overrides the simulated stage offsets (tests use millisecond
// schedules).
func WithSchedule(schedule progress.Schedule) OrchestratorOption {
	return func(o *Orchestrator) {
		o.schedule = schedule
	}
}

// NewOrchestrator constructs an orchestrator around the shared tracker and
// artifact manager.
func NewOrchestrator(client *Client, tracker *progress.Tracker, artifacts *artifact.Manager, logger *slog.Logger, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		client:    client,
		tracker:   tracker,
		artifacts: artifacts,
		schedule:  progress.DefaultSchedule(),
		logger:    logging.NewComponentLogger(logger, "tailor"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Submit runs the submission flow to its terminal state and returns the
// materialized artifact on success. Validation failures never touch the state
// machine; a submit while another flow is in flight returns services.ErrBusy
// without any effect.
func (o *Orchestrator) Submit(ctx context.Context, sub submission.Submission) (*artifact.Artifact, error) {
	if result := submission.Validate(sub); !result.Ready {
		return nil, services.Wrap(services.ErrValidation, "tailor", "submit", result.Reason, nil)
	}

	tok, err := o.tracker.Begin()
	if err != nil {
		return nil, err
	}

	ctx = services.WithSubmissionID(ctx, uuid.NewString())
	ctx = services.WithRequestID(ctx, uuid.NewString())
	log := logging.WithContext(ctx, o.logger)

	payload, err := submission.BuildPayload(sub)
	if err != nil {
		o.tracker.Fail(tok, FallbackErrorMessage)
		log.Error("payload assembly failed", logging.Error(err))
		return nil, err
	}
	o.tracker.Advance(tok, progress.StepExtracting)

	sim := progress.NewSimulator()
	sim.Start(o.schedule, func(step progress.Step) {
		if o.tracker.Advance(tok, step) {
			stageCtx := services.WithStage(ctx, step.String())
			logging.WithContext(stageCtx, o.logger).Debug("simulated stage advance")
		}
	})

	log.Info("generation request issued",
		logging.String("document", sub.Document.Name),
		logging.Int("payload_bytes", len(payload.Body)),
	)
	result, err := o.client.Generate(ctx, payload)

	// Settle: cancel pending timers before the terminal write so a stale
	// advance can never land on top of complete or error.
	sim.Cancel()

	if err != nil {
		message := UserMessage(err)
		o.tracker.Fail(tok, message)
		log.Warn("generation failed",
			logging.String("user_message", message),
			logging.Error(err),
		)
		return nil, err
	}

	art := o.artifacts.Materialize(result.Data, artifact.Metadata{
		SuggestedName: result.SuggestedName,
		AddedKeywords: result.AddedKeywords,
	})
	o.tracker.Complete(tok)
	log.Info("generation complete",
		logging.String("suggested_name", art.SuggestedName()),
		logging.Int("bytes", art.Size()),
		logging.Int("keywords", len(art.AddedKeywords())),
	)
	return art, nil
}

// Reset releases the live artifact and returns the state machine to idle.
// Rejected while a flow is in flight.
func (o *Orchestrator) Reset() bool {
	if o.tracker.Snapshot().Step.InFlight() {
		return false
	}
	o.artifacts.Release()
	return o.tracker.Reset()
}
