// Package resolve implements the glob-map lookup and pipeline
// flattening at the center of pakt's configuration resolution.
package resolve

import (
	"github.com/pakt-build/pakt/pkg/errors"
	"github.com/pakt-build/pakt/pkg/glob"
	"github.com/pakt-build/pakt/pkg/logging"
	"github.com/pakt-build/pakt/pkg/types"
)

// One returns the value of the first pattern in declaration order that
// matches the given file path, against the full path or its base name.
// The second return is false when no pattern matches; absence is not an
// error at this layer.
func One[T any](filePath string, table types.GlobMap[T]) (T, bool) {
	for _, entry := range table {
		if glob.MatchPath(filePath, entry.Pattern) {
			return entry.Value, true
		}
	}
	var zero T
	return zero, false
}

// candidate is a matched pipeline queued for flattening, tagged with the
// pattern it came from for error reporting
type candidate struct {
	pattern  string
	pipeline types.Pipeline
}

// Pipeline collects every pipeline whose pattern matches filePath, in
// declaration order, and flattens them into one pipeline by splicing
// rest markers with the next match in the queue. Zero matches yield the
// empty pipeline; callers decide whether that is fatal for their stage.
func Pipeline(filePath string, table types.GlobMap[types.Pipeline]) (types.Pipeline, error) {
	logger := logging.GetLogger("resolve")

	var queue []candidate
	for _, entry := range table {
		if glob.MatchPath(filePath, entry.Pattern) {
			queue = append(queue, candidate{pattern: entry.Pattern, pipeline: entry.Value})
		}
	}

	logger.Debug().
		Str("file", filePath).
		Int("matches", len(queue)).
		Msg("collected matching pipelines")

	result, err := flatten(queue, 0)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("file", filePath).
		Strs("pipeline", result.Strings()).
		Msg("flattened pipeline")

	return result, nil
}

// flatten resolves queue[index], splicing any rest marker with the
// flattened remainder of the queue. Past the end of the queue it yields
// the empty pipeline, so a trailing rest marker splices in nothing.
func flatten(queue []candidate, index int) (types.Pipeline, error) {
	if index >= len(queue) {
		return types.Pipeline{}, nil
	}

	current := queue[index]

	// A source pipeline may carry at most one rest marker. Checked
	// before recursing so the failure names the offending pattern.
	if current.pipeline.CountRest() > 1 {
		return nil, errors.Newf(errors.ErrMalformedPipeline,
			"pipeline for pattern %q contains more than one %q entry",
			current.pattern, types.RestMarker).
			WithDetail("pattern", current.pattern).
			WithDetail("pipeline", current.pipeline.Strings())
	}

	restIndex := current.pipeline.RestIndex()
	if restIndex < 0 {
		// No marker: this pipeline is the result. Later queue entries
		// are only reachable through a rest splice.
		return current.pipeline, nil
	}

	rest, err := flatten(queue, index+1)
	if err != nil {
		return nil, err
	}

	result := make(types.Pipeline, 0, len(current.pipeline)-1+len(rest))
	result = append(result, current.pipeline[:restIndex]...)
	result = append(result, rest...)
	result = append(result, current.pipeline[restIndex+1:]...)
	return result, nil
}
