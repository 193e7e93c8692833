// Package chain implements the ordered fallback evaluation shared by
// every fact category: an ordered list of named sources is probed until
// one returns a value passing the category's validation, or the list is
// exhausted.
package chain

import (
	"context"
	"fmt"

	"speccle/internal/logger"
)

// Source is one information provider for a category. Probe returns an
// error when the source is unavailable on this platform, denied, or
// produced nothing usable.
type Source[T any] struct {
	Name  string
	Probe func(ctx context.Context) (T, error)
}

// Resolve probes sources in order and returns the first value accepted
// by valid (valid == nil accepts anything). The second return reports
// whether any source succeeded; on exhaustion the zero value of T comes
// back and the caller substitutes its sentinel. A panicking source
// counts as a failed source, never as a failed collection.
func Resolve[T any](ctx context.Context, log logger.Logger, category string, sources []Source[T], valid func(T) bool) (T, bool) {
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			log.Debug("collection cancelled", "category", category, "error", err)
			break
		}

		val, err := probe(ctx, src)
		if err != nil {
			log.Debug("source failed", "category", category, "source", src.Name, "error", err)
			continue
		}
		if valid != nil && !valid(val) {
			log.Debug("source value rejected", "category", category, "source", src.Name)
			continue
		}

		log.Debug("source resolved", "category", category, "source", src.Name)
		return val, true
	}

	var zero T
	return zero, false
}

func probe[T any](ctx context.Context, src Source[T]) (val T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("source %s panicked: %v", src.Name, r)
		}
	}()
	return src.Probe(ctx)
}
