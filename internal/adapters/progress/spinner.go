package progress

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/voteagora/agora-cli/internal/domain/config"
	"github.com/voteagora/agora-cli/internal/usecase"
)

// SpinnerSink renders progress events as a spinner on stderr
type SpinnerSink struct {
	spinner *spinner.Spinner
	out     io.Writer
	stages  []stageInfo
	debug   bool
}

type stageInfo struct {
	Stage     string
	StartTime time.Time
	EndTime   time.Time
}

// NewSpinnerSink creates a spinner sink writing to out
func NewSpinnerSink(out io.Writer, debug bool) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		spinner: s,
		out:     out,
		debug:   debug,
	}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.advance(event.Stage)

	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}
	if r.spinner.Active() {
		r.spinner.Stop()
	}

	if event.Stage == "complete" && r.debug {
		r.printTimings()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.pause(func() { color.New(color.FgCyan).Fprintln(r.out, message) })
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.pause(func() { color.New(color.FgRed).Fprintln(r.out, message) })
}

func (r *SpinnerSink) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

// advance closes the running stage when a new one starts
func (r *SpinnerSink) advance(stage string) {
	if stage == "" {
		return
	}
	now := time.Now()
	if n := len(r.stages); n > 0 {
		if r.stages[n-1].Stage == stage {
			return
		}
		r.stages[n-1].EndTime = now
	}
	r.stages = append(r.stages, stageInfo{Stage: stage, StartTime: now})
}

func (r *SpinnerSink) printTimings() {
	faint := color.New(color.Faint)
	for _, st := range r.stages {
		if st.EndTime.IsZero() {
			continue
		}
		faint.Fprintf(r.out, "  %-10s %s\n", st.Stage, st.EndTime.Sub(st.StartTime).Round(time.Millisecond))
	}
	r.stages = nil
}

// Provide picks the sink for the current invocation. Spinners only run on
// an interactive terminal and never alongside JSON output.
func Provide(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.JSON || cfg.NonInteractive || !isatty.IsTerminal(os.Stderr.Fd()) {
		return NewNopSink()
	}
	return NewSpinnerSink(os.Stderr, cfg.Debug)
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
