// Package observability provides OpenTelemetry tracing and metrics for
// result sequences.
//
// Tracing:
//
//	cfg := observability.DefaultTracerConfig("ingest")
//	tp, err := observability.InitTracer(ctx, &cfg)
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	cfg := observability.DefaultMeterConfig("ingest")
//	mp, err := observability.InitMeter(ctx, &cfg)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("ingest"))
//	metrics.RecordElement(ctx, "lines", logger.BranchOk)
//
// Drains:
//
//	ctx, op := observability.StartOperation(ctx, observability.Tracer("ingest"), "lines", metrics)
//	op.End(ctx, okCount, failure)
package observability
