package progress

import (
	"context"

	"github.com/voteagora/agora-cli/internal/usecase"
)

// NopSink discards progress. Used for --json, --non-interactive and the API.
type NopSink struct{}

// NewNopSink creates a new no-op progress sink
func NewNopSink() *NopSink {
	return &NopSink{}
}

func (n *NopSink) OnProgress(context.Context, usecase.ProgressEvent) {}
func (n *NopSink) Info(string)                                       {}
func (n *NopSink) Error(string)                                      {}

var _ usecase.ProgressSink = (*NopSink)(nil)
