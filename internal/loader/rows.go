package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// rowReader walks a headered CSV, resolving columns by name. Cell parse
// failures are collected into a single first-error rather than aborting the
// scan mid-record.
type rowReader struct {
	cr       *csv.Reader
	index    map[string]int
	record   []string
	line     int
	firstErr error
}

// newRowReader reads the header row and verifies the required columns exist.
func newRowReader(r io.Reader, required ...string) (*rowReader, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return &rowReader{cr: cr, index: index}, nil
}

func (r *rowReader) next() bool {
	if r.firstErr != nil {
		return false
	}
	record, err := r.cr.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.firstErr = err
		return false
	}
	r.record = record
	r.line++
	return true
}

func (r *rowReader) err() error {
	return r.firstErr
}

func (r *rowReader) cell(name string) (string, bool) {
	i, ok := r.index[name]
	if !ok || i >= len(r.record) {
		return "", false
	}
	return r.record[i], true
}

// strCol returns the raw cell, or "" when the column is absent.
func (r *rowReader) strCol(name string) string {
	v, _ := r.cell(name)
	return v
}

// optStrCol maps the NA sentinel to "".
func (r *rowReader) optStrCol(name string) string {
	v := r.strCol(name)
	if v == "NA" {
		return ""
	}
	return v
}

// intCol parses a required integer cell.
func (r *rowReader) intCol(name string) int {
	v, ok := r.cell(name)
	if !ok {
		r.fail(name, "column absent")
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(name, err.Error())
		return 0
	}
	return n
}

// optIntCol parses an integer cell, mapping ""/NA to 0 (the ball row's
// nflId and jerseyNumber come through as NA).
func (r *rowReader) optIntCol(name string) int {
	v, ok := r.cell(name)
	if !ok || v == "" || v == "NA" {
		return 0
	}
	// Some exports write integer ids as "25511.0".
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(name, err.Error())
		return 0
	}
	return int(f)
}

// floatCol parses a float cell, mapping ""/NA to 0 (the ball row has no
// orientation or direction).
func (r *rowReader) floatCol(name string) float64 {
	v, ok := r.cell(name)
	if !ok || v == "" || v == "NA" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(name, err.Error())
		return 0
	}
	return f
}

func (r *rowReader) fail(column, reason string) {
	if r.firstErr == nil {
		r.firstErr = fmt.Errorf("row %d, column %q: %s", r.line, column, reason)
	}
}
