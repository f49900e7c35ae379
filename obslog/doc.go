// Package obslog is a thin structured-logging façade used by package solver
// (given through solver.WithLogger) and by cmd/fimdpctl, which passes one to
// the solver under -v. The solver logs one record per objective it
// computes; reload-elimination rounds, fixpoint passes and package mincap's
// search steps are not logged. The façade spares callers from depending on
// generics directly.
//
// It wraps github.com/joeycumines/logiface's generic Logger[E] bound to
// github.com/joeycumines/logiface-slog's Event, giving callers a small
// fixed-arity Logger interface (Info/Debug/Warn/Error, each taking a message
// and alternating key-value pairs) instead of the builder chain.
package obslog
