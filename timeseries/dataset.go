package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrNoDateColumn is returned when no usable date column can be identified
// in the input table.
var ErrNoDateColumn = errors.New("timeseries: no date column found")

// dateFormats are tried in order. The ridership exports use day-first
// dates, so those come before the ISO fallbacks.
var dateFormats = []string{
	"02-01-2006",
	"02/01/2006",
	"2006-01-02",
	"2006/01/02",
	"02-Jan-2006",
}

// Dataset is a date-indexed table of daily passenger counts, one numeric
// column per route. After loading, the date index is sorted ascending and
// the dataset is treated as read-only.
type Dataset struct {
	Dates   []time.Time
	Columns []string

	// values holds one slice per column, aligned with Dates. Missing or
	// unparsable cells are stored as NaN and dropped on column extraction.
	values map[string][]float64
}

// Load reads a ridership CSV from disk. The file must have a header row
// with a date column (named "Date", or any header containing "date") and
// one or more numeric columns.
func Load(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("timeseries: load %s: %w", path, err)
	}
	defer file.Close()

	ds, err := LoadFromReader(file)
	if err != nil && !errors.Is(err, ErrNoDateColumn) {
		return nil, fmt.Errorf("timeseries: load %s: %w", path, err)
	}
	return ds, err
}

// LoadFromReader reads a ridership CSV from an io.Reader.
func LoadFromReader(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateIdx := -1
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
		if dateIdx == -1 && strings.Contains(strings.ToLower(header[i]), "date") {
			dateIdx = i
		}
	}
	if dateIdx == -1 {
		return nil, ErrNoDateColumn
	}

	var columns []string
	for i, h := range header {
		if i != dateIdx {
			columns = append(columns, h)
		}
	}

	ds := &Dataset{
		Columns: columns,
		values:  make(map[string][]float64, len(columns)),
	}

	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}

		date, err := parseDate(record[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		ds.Dates = append(ds.Dates, date)

		for i, h := range header {
			if i == dateIdx {
				continue
			}
			v := math.NaN()
			if i < len(record) {
				v = parseCell(record[i])
			}
			ds.values[h] = append(ds.values[h], v)
		}
	}

	ds.sortByDate()
	return ds, nil
}

// Len returns the number of rows in the dataset.
func (d *Dataset) Len() int {
	return len(d.Dates)
}

// LastDate returns the most recent observed date.
func (d *Dataset) LastDate() time.Time {
	return d.Dates[len(d.Dates)-1]
}

// HasColumn reports whether the dataset contains the named route column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.values[name]
	return ok
}

// Column extracts the named route as a Series, dropping rows where the
// value is missing. The second return value is false when the column does
// not exist.
func (d *Dataset) Column(name string) (*Series, bool) {
	raw, ok := d.values[name]
	if !ok {
		return nil, false
	}

	s := &Series{Name: name}
	for i, v := range raw {
		if math.IsNaN(v) {
			continue
		}
		s.Dates = append(s.Dates, d.Dates[i])
		s.Values = append(s.Values, v)
	}
	return s, true
}

// sortByDate orders all rows ascending by date. The sort is stable so
// duplicate dates keep their input order.
func (d *Dataset) sortByDate() {
	n := len(d.Dates)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return d.Dates[idx[a]].Before(d.Dates[idx[b]])
	})

	dates := make([]time.Time, n)
	for i, j := range idx {
		dates[i] = d.Dates[j]
	}
	d.Dates = dates

	for name, raw := range d.values {
		sorted := make([]float64, n)
		for i, j := range idx {
			sorted[i] = raw[j]
		}
		d.values[name] = sorted
	}
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", s)
}

// parseCell converts a value cell to a float, mapping empty and NA-like
// cells to NaN so they are treated as missing.
func parseCell(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
