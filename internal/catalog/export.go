// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// exportLimit caps the number of rows in an export file.
const exportLimit = 100000

// Export writes the full history to path. The format follows the file
// extension: .json produces indented JSON, anything else YAML.
func (c *Catalog) Export(ctx context.Context, path string) error {
	recs, err := c.History(ctx, exportLimit)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	var data []byte
	if filepath.Ext(path) == ".json" {
		data, err = json.MarshalIndent(recs, "", "  ")
	} else {
		data, err = yaml.Marshal(recs)
	}
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
