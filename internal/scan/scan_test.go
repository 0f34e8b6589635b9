// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fit2gpx/pkg/types"
)

// writeFIT writes a minimal file carrying the FIT header signature.
func writeFIT(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	header := []byte{14, 0x10, 0x4b, 0x08, 0, 0, 0, 0, '.', 'F', 'I', 'T', 0, 0}
	require.NoError(t, os.WriteFile(path, header, 0o644))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestHasFITHeader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{
			name: "valid header",
			data: []byte{14, 0x10, 0x4b, 0x08, 0, 0, 0, 0, '.', 'F', 'I', 'T'},
			want: true,
		},
		{
			name: "xml content",
			data: []byte("<?xml version=\"1.0\"?>"),
			want: false,
		},
		{
			name: "too short",
			data: []byte{14, 0x10},
			want: false,
		},
		{
			name: "empty",
			data: nil,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasFITHeader(tt.data))
		})
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	writeFIT(t, filepath.Join(dir, "b.fit"))
	writeFIT(t, filepath.Join(dir, "rides", "a.FIT"))
	writeFile(t, filepath.Join(dir, "renamed.fit"), "<?xml not a fit file")
	writeFile(t, filepath.Join(dir, "notes.txt"), "irrelevant")

	t.Run("sniffing excludes renamed non-FIT files", func(t *testing.T) {
		files, err := Files(dir, types.ScanConfig{Sniff: true})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "b.fit"),
			filepath.Join(dir, "rides", "a.FIT"),
		}, files)
	})

	t.Run("extension only keeps them", func(t *testing.T) {
		files, err := Files(dir, types.ScanConfig{})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "b.fit"),
			filepath.Join(dir, "renamed.fit"),
			filepath.Join(dir, "rides", "a.FIT"),
		}, files)
	})
}

func TestFilesMissingRoot(t *testing.T) {
	_, err := Files(filepath.Join(t.TempDir(), "nope"), types.ScanConfig{})
	assert.Error(t, err)
}

func TestPending(t *testing.T) {
	dir := t.TempDir()
	done := filepath.Join(dir, "done.fit")
	todo := filepath.Join(dir, "todo.fit")
	writeFIT(t, done)
	writeFIT(t, todo)
	writeFile(t, done+".gpx", "<gpx/>")

	assert.Equal(t, []string{todo}, Pending([]string{done, todo}))
	assert.Empty(t, Pending(nil))
}
