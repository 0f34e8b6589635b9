package types

// ConvertConfig holds settings for a batch conversion run.
type ConvertConfig struct {
	// Babel is the converter binary name or path (default "gpsbabel").
	Babel string `json:"babel" yaml:"babel"`

	// Force reconverts inputs even when the output file already exists.
	Force bool `json:"force" yaml:"force"`

	// Verbose reports skipped files and a run summary on stderr.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// CatalogPath is the SQLite catalog database path. Recording is only
	// active when the caller asks for it; the path alone does not enable it.
	CatalogPath string `json:"catalog_path" yaml:"catalog_path"`
}

// ScanConfig holds settings for the directory scanner.
type ScanConfig struct {
	// Sniff cross-checks candidate files against the FIT header signature
	// instead of trusting the .fit extension alone.
	Sniff bool `json:"sniff" yaml:"sniff"`
}
