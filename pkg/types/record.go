package types

import "time"

// ConversionStatus is the outcome of one input file in a batch.
type ConversionStatus string

const (
	StatusConverted ConversionStatus = "converted"
	StatusSkipped   ConversionStatus = "skipped"
	StatusFailed    ConversionStatus = "failed"
)

// ConversionRecord describes one conversion outcome for the catalog.
type ConversionRecord struct {
	// Source is the input FIT file path as given by the caller.
	Source string `json:"source" yaml:"source"`

	// Output is the derived GPX path (source + ".gpx").
	Output string `json:"output" yaml:"output"`

	Status ConversionStatus `json:"status" yaml:"status"`

	// SourceSize and SourceModTime snapshot the input file at run time.
	// Zero values mean the input could not be stat'ed.
	SourceSize    int64     `json:"source_size" yaml:"source_size"`
	SourceModTime time.Time `json:"source_mod_time" yaml:"source_mod_time"`

	// DurationMS is the wall time of the converter invocation in
	// milliseconds. Zero for skipped inputs.
	DurationMS int64 `json:"duration_ms" yaml:"duration_ms"`

	// RecordedAt is when the outcome was written to the catalog.
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
}
