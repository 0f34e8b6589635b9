// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/fit2gpx/pkg/types"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func record(source string, status types.ConversionStatus, at time.Time) types.ConversionRecord {
	return types.ConversionRecord{
		Source:        source,
		Output:        source + ".gpx",
		Status:        status,
		SourceSize:    1024,
		SourceModTime: at.Add(-time.Hour),
		DurationMS:    250,
		RecordedAt:    at,
	}
}

func TestRecordAndHistory(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, c.Record(record("a.fit", types.StatusConverted, base)))
	require.NoError(t, c.Record(record("b.fit", types.StatusSkipped, base.Add(time.Minute))))
	require.NoError(t, c.Record(record("c.fit", types.StatusFailed, base.Add(2*time.Minute))))

	recs, err := c.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// Newest first.
	assert.Equal(t, "c.fit", recs[0].Source)
	assert.Equal(t, types.StatusFailed, recs[0].Status)
	assert.Equal(t, "a.fit", recs[2].Source)
	assert.Equal(t, "a.fit.gpx", recs[2].Output)
	assert.Equal(t, int64(1024), recs[2].SourceSize)
	assert.Equal(t, int64(250), recs[2].DurationMS)
	assert.Equal(t, base, recs[2].RecordedAt)
	assert.Equal(t, base.Add(-time.Hour), recs[2].SourceModTime)
}

func TestHistoryLimit(t *testing.T) {
	c := openTestCatalog(t)
	base := time.Now().UTC().Truncate(time.Second)

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Record(record("x.fit", types.StatusConverted, base.Add(time.Duration(i)*time.Second))))
	}

	recs, err := c.History(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestHistoryEmpty(t *testing.T) {
	c := openTestCatalog(t)
	recs, err := c.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecordWithoutModTime(t *testing.T) {
	c := openTestCatalog(t)
	rec := types.ConversionRecord{
		Source:     "gone.fit",
		Output:     "gone.fit.gpx",
		Status:     types.StatusFailed,
		RecordedAt: time.Now().UTC(),
	}
	require.NoError(t, c.Record(rec))

	recs, err := c.History(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].SourceModTime.IsZero())
}

func TestExportYAML(t *testing.T) {
	c := openTestCatalog(t)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, c.Record(record("a.fit", types.StatusConverted, base)))

	path := filepath.Join(t.TempDir(), "export.yaml")
	require.NoError(t, c.Export(context.Background(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var recs []types.ConversionRecord
	require.NoError(t, yaml.Unmarshal(data, &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "a.fit", recs[0].Source)
	assert.Equal(t, types.StatusConverted, recs[0].Status)
}

func TestExportJSON(t *testing.T) {
	c := openTestCatalog(t)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, c.Record(record("a.fit", types.StatusConverted, base)))

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, c.Export(context.Background(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var recs []types.ConversionRecord
	require.NoError(t, json.Unmarshal(data, &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "a.fit.gpx", recs[0].Output)
}
