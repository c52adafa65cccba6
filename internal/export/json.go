// Package export writes generated datasets to disk in the supported wire
// formats.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"sales-datagen/internal/models"
)

// WriteJSON writes the dataset as a single JSON document. With pretty set,
// the output is indented for human inspection.
func WriteJSON(ds *models.Dataset, path string, pretty bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	return nil
}
