package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"go-jobhunt-automation/internal/dedup"
	"go-jobhunt-automation/internal/models"
)

// Header is the persisted column contract of the output file.
var Header = []string{"job_title", "location", "job_url", "company", "applied"}

// CSVWriter appends accepted jobs, skipping (title, company) pairs
// already present in the file.
type CSVWriter struct {
	path string
	keys *dedup.KeySet
}

// OpenCSV loads the keys of an existing output file, if any.
// A file that cannot be parsed is logged and treated as empty.
func OpenCSV(path string) (*CSVWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	w := &CSVWriter{path: path, keys: dedup.NewKeySet()}
	if err := w.loadKeys(); err != nil {
		return nil, err
	}
	if n := w.keys.Len(); n > 0 {
		log.Printf("📋 Loaded %d existing jobs from %s", n, path)
	}
	return w, nil
}

func (w *CSVWriter) loadKeys() error {
	f, err := os.Open(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open %s: %w", w.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	titleCol, companyCol := 0, 3
	for line := 0; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			log.Printf("⚠️ Could not parse %s, duplicate check starts empty: %v", w.path, err)
			w.keys = dedup.NewKeySet()
			return nil
		}

		if line == 0 {
			//honour the header if columns were reordered by hand
			if t, c := indexOf(record, "job_title"), indexOf(record, "company"); t >= 0 && c >= 0 {
				titleCol, companyCol = t, c
				continue
			}
		}
		if len(record) <= titleCol || len(record) <= companyCol {
			continue
		}
		w.keys.Add(dedup.NewKey(record[titleCol], record[companyCol]))
	}
}

// Write appends rec unless its key is already present.
// It returns false for a skipped duplicate.
func (w *CSVWriter) Write(rec models.ResultRecord) (bool, error) {
	key := dedup.NewKey(rec.JobTitle, rec.Company)
	if w.keys.Has(key) {
		log.Printf("🔁 Duplicate job skipped: %s at %s", key.Title, key.Company)
		return false, nil
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", w.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", w.path, err)
	}

	cw := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := cw.Write(Header); err != nil {
			return false, fmt.Errorf("failed to write headers: %w", err)
		}
	}
	if err := cw.Write([]string{rec.JobTitle, rec.Location, rec.JobURL, rec.Company, rec.Applied}); err != nil {
		return false, fmt.Errorf("failed to write job record: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return false, fmt.Errorf("flush %s: %w", w.path, err)
	}

	w.keys.Add(key)
	log.Printf("💾 Saved job: %s at %s", key.Title, key.Company)
	return true, nil
}

func (w *CSVWriter) Path() string {
	return w.path
}

func indexOf(record []string, name string) int {
	for i, v := range record {
		if v == name {
			return i
		}
	}
	return -1
}
