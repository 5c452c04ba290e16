// Package data provides the datasets the vlist browser virtualizes: a
// deterministic generated catalog for demos and a YAML-backed loader for
// user-supplied rows.
package data

import "fmt"

// Row is a single catalog entry. Rows are addressed by index only; the
// dataset is contiguous and immutable per render cycle.
type Row struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Kind  string `yaml:"kind"`
	Size  int64  `yaml:"size"`
}

// Dataset is an ordered, randomly-indexable sequence of rows.
type Dataset struct {
	rows []Row
}

// New wraps rows in a Dataset.
func New(rows []Row) *Dataset {
	return &Dataset{rows: rows}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// At returns the row at index i.
func (d *Dataset) At(i int) Row {
	return d.rows[i]
}

var demoKinds = []string{"dataset", "snapshot", "archive", "report", "index", "manifest"}

// Generate builds a deterministic demo catalog of n rows.
func Generate(n int) *Dataset {
	if n < 0 {
		n = 0
	}
	rows := make([]Row, n)
	for i := range rows {
		kind := demoKinds[i%len(demoKinds)]
		rows[i] = Row{
			ID:    fmt.Sprintf("row-%06d", i),
			Title: fmt.Sprintf("%s %04d", kind, i),
			Kind:  kind,
			Size:  int64(1024 * ((i % 97) + 1)),
		}
	}
	return New(rows)
}
