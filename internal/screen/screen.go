// Package screen holds the view-models behind each route: fetch-on-load,
// fail-fast joins for screens that need several resources, and local list
// updates applied once the server confirms a mutation. A screen instance is
// owned by a single goroutine; the session store is the only state shared
// across screens.
package screen

import (
	"errors"

	"github.com/calloway/gather/internal/api"
)

// Phase is the lifecycle of a screen: it starts Loading and reaches exactly
// one of Ready or Failed per load. A failed load exposes no partial data.
type Phase int

const (
	Loading Phase = iota
	Ready
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// failureMessage renders err for display, preferring the server-supplied
// message over the per-action fallback.
func failureMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
