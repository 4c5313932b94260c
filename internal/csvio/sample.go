package csvio

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jacortez/portalgen/internal/portal"
)

// sampleRows are the demonstration entries written by WriteSample.
var sampleRows = [][]string{
	{"Gmail", "https://gmail.com", "", "Correo web"},
	{"Wikipedia", "https://wikipedia.org", "", "Enciclopedia libre"},
	{"YouTube", "https://youtube.com", "", "Videos y streams"},
}

// WriteSample creates a demonstration input file at path. An existing file
// is never overwritten; os.ErrExist is returned wrapped so callers can turn
// it into an informational notice.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("sample target %s: %w", path, os.ErrExist)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sample: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(portal.RequiredColumns); err != nil {
		return fmt.Errorf("write sample header: %w", err)
	}
	for _, row := range sampleRows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write sample row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush sample: %w", err)
	}
	return nil
}
