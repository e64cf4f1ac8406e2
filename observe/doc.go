// Package observe decorates result sequences with logging, metrics and
// tracing. Every decorator passes elements through unchanged, keeps the
// upstream size hint and closes the upstream on Close.
//
//	obs, err := observe.New(cfg.Observe, logger.Get("ingest"))
//	lines := observe.Sequence(ctx, obs, "lines", resiter.AndThenOk(raw, parse))
//	res := observe.Drain(ctx, obs, "lines", lines, store)
package observe
