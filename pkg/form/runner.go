package form

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bustyanimebabesdotcom/safeinput/pkg/safeinput"
)

// Runner asks a form's questions in order.
type Runner struct {
	scanner *safeinput.Scanner
	prompt  io.Writer
	logger  *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithPrompt sets where question prompts are written. Default: nowhere.
func WithPrompt(w io.Writer) Option {
	return func(r *Runner) {
		r.prompt = w
	}
}

// WithLogger sets the logger for per-question debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner reading answers from s.
func NewRunner(s *safeinput.Scanner, opts ...Option) *Runner {
	r := &Runner{
		scanner: s,
		prompt:  io.Discard,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run validates f and asks each question.
//
// If the input ends early, Run returns the answers collected so far with an
// error wrapping both ErrIncomplete and io.EOF. The context is checked
// between questions; a blocked read is not interrupted.
func (r *Runner) Run(ctx context.Context, f *Form) (*Answers, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	answers := &Answers{Title: f.Title}
	for _, q := range f.Questions {
		if err := ctx.Err(); err != nil {
			return answers, err
		}

		if q.Prompt != "" {
			fmt.Fprint(r.prompt, q.Prompt)
		}

		start := r.scanner.Offset()
		v, err := Read(r.scanner, q.Type, q.Allowed)
		if err == io.EOF {
			r.logger.DebugContext(ctx, "input ended", "question", q.Name)
			return answers, fmt.Errorf("%w: at %q: %w", ErrIncomplete, q.Name, err)
		}
		if err != nil {
			return answers, fmt.Errorf("reading %q: %w", q.Name, err)
		}

		r.logger.DebugContext(ctx, "answered",
			slog.String("question", q.Name),
			slog.String("type", q.Type),
			slog.Int64("bytes", r.scanner.Offset()-start))
		answers.add(q.Name, q.Type, v)
	}
	return answers, nil
}
