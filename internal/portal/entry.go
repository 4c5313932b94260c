// Package portal defines the gallery entry model and input row validation.
package portal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jacortez/portalgen/internal/diag"
)

// RequiredColumns is the set of header names every input file must carry.
// Extra columns are tolerated and ignored.
var RequiredColumns = []string{"title", "url", "image", "description"}

// Entry is one validated input row, rendered as a single card.
type Entry struct {
	Title       string
	URL         string
	ImageRef    string
	Description string

	// ResolvedAsset is the relative path of the image backing this entry,
	// filled in after asset resolution. Empty means no visual is available
	// and the card renders a blank placeholder block.
	ResolvedAsset string
}

// Record is a raw input row keyed by trimmed header name. Line is the
// 1-based position in the input file, counting the header as line 1.
type Record struct {
	Line   int
	Fields map[string]string
}

// SchemaError reports required columns absent from the input header. It is
// the only per-input failure that aborts a run.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input requires columns %s; missing: %s",
		strings.Join(RequiredColumns, ", "), strings.Join(e.Missing, ", "))
}

// CheckSchema verifies that all required columns appear in the header.
func CheckSchema(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}
	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &SchemaError{Missing: missing}
	}
	return nil
}

// ValidateRows trims every field and keeps only rows with a non-empty title
// and url. Rejected rows produce a warning on the sink and are dropped;
// rejection never fails the run.
func ValidateRows(records []Record, sink diag.Sink) []Entry {
	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		get := func(key string) string {
			return strings.TrimSpace(rec.Fields[key])
		}
		title, rawURL := get("title"), get("url")
		if title == "" || rawURL == "" {
			sink.Emit(diag.Warnf(rec.Line, title, "title and url are required; row skipped"))
			continue
		}
		entries = append(entries, Entry{
			Title:       title,
			URL:         rawURL,
			ImageRef:    get("image"),
			Description: get("description"),
		})
	}
	return entries
}
