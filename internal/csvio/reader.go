// Package csvio reads the tabular site list and writes the sample file.
package csvio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacortez/portalgen/internal/portal"
)

// utf8BOM is tolerated (and stripped) at the start of the input file.
const utf8BOM = "\xef\xbb\xbf"

// Read parses the input file into its trimmed header and raw records. Every
// record keeps the 1-based file position of its row (the header is line 1).
// Short rows pad missing trailing fields with empty strings; extra columns
// are carried through untouched.
func Read(path string) ([]string, []portal.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return parse(f)
}

func parse(r io.Reader) ([]string, []portal.Record, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && string(prefix) == utf8BOM {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, nil, fmt.Errorf("discard bom: %w", err)
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rawHeader, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("input has no header row")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	header := make([]string, len(rawHeader))
	for i, h := range rawHeader {
		header[i] = strings.TrimSpace(h)
	}

	var records []portal.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row %d: %w", line, err)
		}
		fields := make(map[string]string, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(row) {
				fields[name] = row[i]
			} else {
				fields[name] = ""
			}
		}
		records = append(records, portal.Record{Line: line, Fields: fields})
	}
	return header, records, nil
}
