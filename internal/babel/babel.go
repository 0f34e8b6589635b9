// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package babel wraps the gpsbabel binary. fit2gpx never reads FIT or GPX
// content itself; gpsbabel does all format work and this package only
// builds its command lines and reports its failures.
package babel

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// DefaultBinary is the converter binary looked up on PATH when no override
// is configured.
const DefaultBinary = "gpsbabel"

const (
	formatFIT = "fit"
	formatGPX = "gpx"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// GPSBabel invokes the gpsbabel binary, one process per conversion.
type GPSBabel struct {
	bin  string
	exec executor
}

// New returns a GPSBabel using the given binary name or path. An empty bin
// selects DefaultBinary.
func New(bin string) *GPSBabel {
	if bin == "" {
		bin = DefaultBinary
	}
	return &GPSBabel{bin: bin, exec: defaultExec}
}

// Binary returns the configured binary name or path.
func (g *GPSBabel) Binary() string { return g.bin }

// Available reports whether the binary exists on PATH and responds to a
// version query. Used as a preflight before a batch so a missing converter
// fails before any file is touched.
func (g *GPSBabel) Available() error {
	if _, err := g.exec.LookPath(g.bin); err != nil {
		return fmt.Errorf("%s not found on PATH: %w", g.bin, err)
	}
	var out bytes.Buffer
	if err := g.exec.Run(g.bin, []string{"-V"}, &out, &out); err != nil {
		return fmt.Errorf("%s is not operational: %w", g.bin, err)
	}
	return nil
}

// Version returns the first non-empty line of the binary's -V output.
func (g *GPSBabel) Version() (string, error) {
	var out bytes.Buffer
	if err := g.exec.Run(g.bin, []string{"-V"}, &out, &out); err != nil {
		return "", fmt.Errorf("querying %s version: %w", g.bin, err)
	}
	for _, line := range strings.Split(out.String(), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s, nil
		}
	}
	return "", fmt.Errorf("%s -V produced no output", g.bin)
}

// Convert translates the FIT file at inPath into a GPX file at outPath.
// A non-zero exit from the binary is returned as a *ConversionError
// carrying the process's stderr.
func (g *GPSBabel) Convert(inPath, outPath string) error {
	args := []string{"-i", formatFIT, "-f", inPath, "-o", formatGPX, "-F", outPath}

	var stderr bytes.Buffer
	if err := g.exec.Run(g.bin, args, io.Discard, &stderr); err != nil {
		return &ConversionError{
			Input:  inPath,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return nil
}

// ConversionError reports a failed converter invocation.
type ConversionError struct {
	Input  string
	Stderr string
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("gpsbabel failed on %s: %v: %s", e.Input, e.Err, e.Stderr)
	}
	return fmt.Sprintf("gpsbabel failed on %s: %v", e.Input, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
