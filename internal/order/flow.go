package order

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ironsheep/tokenorder/internal/menu"
)

// State is a step of the confirmation flow.
type State int

const (
	StateAwaitingObservations State = iota
	StateAssembled
	StateValidated
	StateAwaitingConfirmation
	StateRejected
	StateTerminal
)

var stateNames = map[State]string{
	StateAwaitingObservations: "awaiting_observations",
	StateAssembled:            "assembled",
	StateValidated:            "validated",
	StateAwaitingConfirmation: "awaiting_confirmation",
	StateRejected:             "rejected",
	StateTerminal:             "terminal",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome is how a flow ended.
type Outcome int

const (
	// OutcomeNoOrder means no recognized token was found.
	OutcomeNoOrder Outcome = iota + 1
	// OutcomeRejected means violations were recorded; nobody was asked to confirm.
	OutcomeRejected
	OutcomeConfirmed
	OutcomeCanceled
)

var outcomeNames = map[Outcome]string{
	OutcomeNoOrder:   "no_order",
	OutcomeRejected:  "rejected",
	OutcomeConfirmed: "confirmed",
	OutcomeCanceled:  "canceled",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result describes one finished flow.
type Result struct {
	RunID      string     `json:"run_id"`
	Outcome    Outcome    `json:"outcome"`
	Trace      []State    `json:"trace"`
	Order      *Order     `json:"order"`
	Violations Violations `json:"violations"`

	// Summary and Total are empty for OutcomeNoOrder.
	Summary string `json:"summary,omitempty"`
	Total   int    `json:"total"`

	// Response is the raw confirmation answer, if one was requested.
	Response string `json:"response,omitempty"`
}

// Recorder receives flow metrics. telemetry.Metrics implements it.
type Recorder interface {
	RecordFlow(outcome Outcome, selections, total int)
	RecordViolation(kind Kind)
}

type nopRecorder struct{}

func (nopRecorder) RecordFlow(Outcome, int, int) {}
func (nopRecorder) RecordViolation(Kind)         {}

// Flow runs assemble, validate, summarize and confirm for one order at a
// time. A Flow keeps no state between runs.
type Flow struct {
	assembler *Assembler
	out       io.Writer
	confirmer Confirmer
	logger    *slog.Logger
	recorder  Recorder
}

// FlowOption configures a Flow.
type FlowOption func(*Flow)

// WithLogger sets the logger used for run diagnostics.
func WithLogger(l *slog.Logger) FlowOption {
	return func(f *Flow) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) FlowOption {
	return func(f *Flow) {
		if r != nil {
			f.recorder = r
		}
	}
}

// NewFlow returns a flow that prices from catalog, prints its transcript to
// out and asks confirmer for the answer to the confirmation prompt.
func NewFlow(catalog *menu.Catalog, out io.Writer, confirmer Confirmer, opts ...FlowOption) *Flow {
	f := &Flow{
		assembler: NewAssembler(catalog),
		out:       out,
		confirmer: confirmer,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		recorder:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Process detects regions in img and runs the flow on them.
func (f *Flow) Process(ctx context.Context, detector RegionDetector, img image.Image) (*Result, error) {
	observations, err := detector.DetectRegions(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("failed to detect regions: %w", err)
	}
	return f.Run(ctx, observations)
}

// Run processes one set of observations to a terminal state. Violations and
// declined confirmations are reported through the Result; the error is
// non-nil only when writing the transcript fails.
func (f *Flow) Run(ctx context.Context, observations []Observation) (*Result, error) {
	res := &Result{
		RunID: uuid.NewString(),
		Trace: []State{StateAwaitingObservations},
	}
	log := f.logger.With("run_id", res.RunID)
	p := &printer{w: f.out}

	o, violations := f.assembler.Assemble(observations)
	res.Order = o
	res.Trace = append(res.Trace, StateAssembled)
	log.Debug("order assembled",
		"observations", len(observations),
		"selections", o.Len(),
		"conflicts", len(violations))

	if o.Empty() {
		p.println(MsgNoOrder)
		return f.finish(log, res, OutcomeNoOrder, p)
	}

	violations = append(violations, Validate(o)...)
	res.Violations = violations
	res.Trace = append(res.Trace, StateValidated)

	res.Summary, res.Total = Summarize(o)
	p.println(fmt.Sprintf(msgSummaryFormat, res.Summary))

	if len(violations) > 0 {
		res.Trace = append(res.Trace, StateRejected)
		for _, v := range violations {
			p.println(v.Message)
			f.recorder.RecordViolation(v.Kind)
		}
		return f.finish(log, res, OutcomeRejected, p)
	}

	res.Trace = append(res.Trace, StateAwaitingConfirmation)
	p.print(MsgConfirmPrompt)

	response, err := f.confirmer.Confirm(ctx)
	if err != nil {
		// Any failure to obtain an answer is a decline.
		log.Warn("confirmation not received", "error", err)
		response = ""
	}
	res.Response = response

	if IsAffirmative(response) {
		p.println(fmt.Sprintf(msgConfirmedFormat, res.Total))
		return f.finish(log, res, OutcomeConfirmed, p)
	}
	p.println(MsgCanceled)
	return f.finish(log, res, OutcomeCanceled, p)
}

func (f *Flow) finish(log *slog.Logger, res *Result, outcome Outcome, p *printer) (*Result, error) {
	res.Outcome = outcome
	res.Trace = append(res.Trace, StateTerminal)
	f.recorder.RecordFlow(outcome, res.Order.Len(), res.Total)
	log.Info("order flow finished",
		"outcome", outcome.String(),
		"selections", res.Order.Len(),
		"violations", len(res.Violations),
		"total", res.Total)

	if p.err != nil {
		return res, fmt.Errorf("failed to write order transcript: %w", p.err)
	}
	return res, nil
}

// printer remembers the first write error so the flow can finish its state
// transitions and report the failure once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) println(s string) {
	p.print(s + "\n")
}
