// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the idempotent FIT-to-GPX batch loop: derive
// the output path, skip inputs already converted, and hand the rest to the
// converter one at a time. The first converter failure aborts the batch.
package convert

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pdiddy/fit2gpx/pkg/types"
)

// OutputSuffix is appended to the input path to form the output path. The
// full input name is kept ("ride.fit" becomes "ride.fit.gpx") so the GPX
// file always sits next to its source and never collides with a sibling
// that differs only in extension.
const OutputSuffix = ".gpx"

// OutputPath returns the GPX path for a FIT input path.
func OutputPath(in string) string {
	return in + OutputSuffix
}

// Converter turns one FIT file into a GPX file at outPath. The production
// implementation shells out to gpsbabel.
type Converter interface {
	Convert(inPath, outPath string) error
}

// Recorder receives the outcome of each input. Implementations are
// best-effort: a Recorder error is reported but never fails the batch.
type Recorder interface {
	Record(rec types.ConversionRecord) error
}

// Options controls a batch run.
type Options struct {
	// Force converts even when the output file already exists.
	Force bool

	// Verbose writes skip notes to Notes.
	Verbose bool

	// Progress receives one line per converted input: the input path,
	// printed before the converter runs. Defaults to io.Discard.
	Progress io.Writer

	// Notes receives verbose skip notes and recorder warnings.
	// Defaults to io.Discard.
	Notes io.Writer

	// Recorder, when non-nil, is given every outcome including the
	// failing one.
	Recorder Recorder
}

// BatchResult summarizes a completed (or aborted) batch.
type BatchResult struct {
	Converted int
	Skipped   int
}

// Batch processes paths in order. An input whose output path already exists
// is skipped. Any converter failure stops the run immediately; the returned
// BatchResult covers the inputs handled before the failure. Outputs written
// by earlier iterations are kept.
func Batch(c Converter, paths []string, opts Options) (BatchResult, error) {
	if opts.Progress == nil {
		opts.Progress = io.Discard
	}
	if opts.Notes == nil {
		opts.Notes = io.Discard
	}

	var result BatchResult
	for _, in := range paths {
		out := OutputPath(in)

		if !opts.Force {
			if _, err := os.Stat(out); err == nil {
				result.Skipped++
				if opts.Verbose {
					fmt.Fprintf(opts.Notes, "skip %s (%s exists)\n", in, out)
				}
				record(opts, in, out, types.StatusSkipped, 0)
				continue
			}
		}

		fmt.Fprintln(opts.Progress, in)

		start := time.Now()
		if err := c.Convert(in, out); err != nil {
			record(opts, in, out, types.StatusFailed, time.Since(start))
			return result, fmt.Errorf("converting %s: %w", in, err)
		}
		record(opts, in, out, types.StatusConverted, time.Since(start))
		result.Converted++
	}
	return result, nil
}

func record(opts Options, in, out string, status types.ConversionStatus, elapsed time.Duration) {
	if opts.Recorder == nil {
		return
	}

	rec := types.ConversionRecord{
		Source:     in,
		Output:     out,
		Status:     status,
		DurationMS: elapsed.Milliseconds(),
		RecordedAt: time.Now().UTC(),
	}
	if info, err := os.Stat(in); err == nil {
		rec.SourceSize = info.Size()
		rec.SourceModTime = info.ModTime().UTC()
	}

	if err := opts.Recorder.Record(rec); err != nil {
		fmt.Fprintf(opts.Notes, "warning: could not record %s: %v\n", in, err)
	}
}
