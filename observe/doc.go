// Package observe wires searches into Prometheus and OpenTelemetry.
//
// Neither is required by the engine: both attach through the search hooks.
//
//	reg := prometheus.NewRegistry()
//	metrics := observe.NewMetrics(reg)
//	res, err := bfs.BFS(m, metrics.Options("breadth")...)
//
//	res, err := observe.Trace(ctx, otel.Tracer("pathq"), "bfs",
//	    func(ctx context.Context) (*search.Result[core.Node], error) {
//	        return bfs.BFS(m, search.WithContext(ctx), observe.Events(ctx))
//	    })
package observe
