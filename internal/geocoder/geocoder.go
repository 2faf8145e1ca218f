// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package geocoder fills in missing place coordinates through a geocoding
// client and then rebuilds the aggregate index.
//
// Whether a place needs work is derived from its document on every run, so
// an interrupted run can simply be started again.
package geocoder

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/kiwimap/placebook/internal/index"
	"github.com/kiwimap/placebook/internal/store"
	"github.com/kiwimap/placebook/pkg/naver"
)

// Options controls a geocoding run.
type Options struct {
	// Delay is the pause after each updated place.
	Delay time.Duration

	// IndexPath is the aggregate file rebuilt at the end of the run.
	IndexPath string
}

// Summary counts what happened to each place in a run.
type Summary struct {
	Updated   int
	Complete  int
	NoAddress int
	NoResult  int
	Failed    int
}

// Total returns the number of places examined.
func (s Summary) Total() int {
	return s.Updated + s.Complete + s.NoAddress + s.NoResult + s.Failed
}

// sleep waits for d or until ctx ends. Tests replace it.
var sleep = func(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Run geocodes every place in s that lacks coordinates, one at a time in
// file-name order, and rewrites the aggregate at opts.IndexPath.
//
// Lookup problems for a single place are reported to w and skipped. An
// unreadable or malformed document, a failed write, or a failed index
// rebuild ends the run with an error. When the store directory does not
// exist, Run reports it and returns without touching the aggregate.
func Run(ctx context.Context, s *store.Store, client naver.Client, opts Options, w io.Writer) (Summary, error) {
	var summary Summary

	exists, err := s.Exists()
	if err != nil {
		return summary, err
	}
	if !exists {
		fmt.Fprintf(w, "No places dir: %s\n", s.Dir())
		return summary, nil
	}

	names, err := s.Names()
	if err != nil {
		return summary, err
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		doc, err := s.Read(name)
		if err != nil {
			return summary, err
		}
		if !NeedsGeocode(doc) {
			summary.Complete++
			continue
		}

		address := Address(doc)
		if address == "" {
			fmt.Fprintf(w, "Skip (no address): %s\n", name)
			summary.NoAddress++
			continue
		}

		result, err := client.Geocode(ctx, address)
		if err != nil {
			fmt.Fprintf(w, "Fail: %s - %v\n", name, err)
			summary.Failed++
			continue
		}
		if !result.Matched || !finite(result.Lat) || !finite(result.Lng) {
			fmt.Fprintf(w, "No result: %s\n", name)
			summary.NoResult++
			continue
		}

		patched, err := Patch(doc, result.Lat, result.Lng)
		if err != nil {
			return summary, fmt.Errorf("patching %s: %w", name, err)
		}
		if err := s.Write(name, patched); err != nil {
			return summary, err
		}
		summary.Updated++
		zap.L().Debug("geocoded",
			zap.String("file", name),
			zap.Float64("lat", result.Lat),
			zap.Float64("lng", result.Lng),
			zap.String("road_address", result.RoadAddress),
		)

		if err := sleep(ctx, opts.Delay); err != nil {
			return summary, err
		}
	}

	fmt.Fprintf(w, "Updated: %d\n", summary.Updated)

	if _, err := index.Build(s, opts.IndexPath, w); err != nil {
		return summary, err
	}
	return summary, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
