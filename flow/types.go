// This file defines the sentinel errors and options shared by the
// max-flow solver and the matching reduction.

package flow

import (
	"context"
	"errors"
)

var (
	// ErrNetworkNil is returned when a nil FlowNetwork is passed in.
	ErrNetworkNil = errors.New("flow: network is nil")

	// ErrSameSourceSink is returned when source and sink coincide.
	ErrSameSourceSink = errors.New("flow: source and sink must be distinct")

	// ErrNegativeSets is returned by BipartiteMatching when either side of
	// the bipartition has a negative size.
	ErrNegativeSets = errors.New("flow: bipartition sizes must be non-negative")
)

// Option configures optional behavior for FordFulkerson.
type Option func(*options)

type options struct {
	ctx context.Context // cancellation; defaults to Background
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithCancelContext returns an Option that sets the cancellation context,
// checked once per augmentation. Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
