package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathq/core"
	"github.com/katalvlaran/pathq/search"
)

// Attribute keys set on search spans.
const (
	AttrState       = attribute.Key("pathq.state")
	AttrSolutionLen = attribute.Key("pathq.solution_len")
	AttrPopped      = attribute.Key("pathq.popped")
	AttrDiscarded   = attribute.Key("pathq.discarded")
	AttrBranches    = attribute.Key("pathq.branches")
	AttrUID         = attribute.Key("pathq.uid")
	AttrDepth       = attribute.Key("pathq.depth")
)

// Trace runs fn inside a span named name. The span carries the terminal
// state and counters of the result, or the error with codes.Error.
//
// fn receives the span context; pass it to search.WithContext and to
// Events so cancellation and step events follow the span.
func Trace[E core.Element](ctx context.Context, tracer trace.Tracer, name string, fn func(ctx context.Context) (*search.Result[E], error)) (*search.Result[E], error) {
	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	res, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		AttrState.String(res.State.String()),
		AttrSolutionLen.Int(len(res.Solution)),
		AttrPopped.Int(res.Stats.Popped),
		AttrDiscarded.Int(res.Stats.Discarded),
		AttrBranches.Int(len(res.Searches)),
	)
	span.SetStatus(codes.Ok, "")

	return res, nil
}

// Events returns a hook adding one "accepted" event per accepted tracker
// to the span found in ctx. It is a no-op when ctx carries no recording span.
func Events(ctx context.Context) search.Option {
	span := trace.SpanFromContext(ctx)

	return search.WithOnVisit(func(uid string, depth int) error {
		if span.IsRecording() {
			span.AddEvent("accepted", trace.WithAttributes(AttrUID.String(uid), AttrDepth.Int(depth)))
		}
		return nil
	})
}
