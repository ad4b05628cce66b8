// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/dive4dec/cs5483-25b/base/errors"
	"gonum.org/v1/gonum/mat"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32

const (
	// Detect is used during reading a file -- reads the first line and detects tabs or commas.
	// It is the zero value, so unset options detect.
	Detect Delims = iota

	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value
	Space
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// CSVOptions select the columns read by [ReadCSV].
type CSVOptions struct {

	// Delim is the field delimiter. default: Detect
	Delim Delims

	// Label is the name of the label column. default: the last column
	Label string

	// Features are the names of the two feature columns.
	// default: the first two columns other than the label
	Features []string
}

// OpenCSV reads a dataset from the given delimited text file.
// See [ReadCSV].
func OpenCSV(filename string, opts *CSVOptions) (*Dataset, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadCSV(bufio.NewReader(fp), opts)
}

// ReadCSV reads a dataset from delimited text whose first row has the
// column names. Feature columns must parse as numbers.
func ReadCSV(r io.Reader, opts *CSVOptions) (*Dataset, error) {
	var o CSVOptions
	if opts != nil {
		o = *opts
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	delim := o.Delim
	if delim == Detect {
		delim = detect(data)
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delim.Rune()
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) < 2 {
		return nil, ErrNoRows
	}
	header := recs[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	lcol := len(header) - 1
	if o.Label != "" {
		if lcol = slices.Index(header, o.Label); lcol < 0 {
			return nil, fmt.Errorf("%w: label %q", ErrNoColumn, o.Label)
		}
	}
	var fcols []int
	if len(o.Features) > 0 {
		if len(o.Features) != 2 {
			return nil, ErrTooNarrow
		}
		for _, f := range o.Features {
			c := slices.Index(header, f)
			if c < 0 {
				return nil, fmt.Errorf("%w: feature %q", ErrNoColumn, f)
			}
			fcols = append(fcols, c)
		}
	} else {
		for c := range header {
			if c != lcol && len(fcols) < 2 {
				fcols = append(fcols, c)
			}
		}
		if len(fcols) < 2 {
			return nil, ErrTooNarrow
		}
	}

	rows := recs[1:]
	ds := &Dataset{
		Names: [2]string{header[fcols[0]], header[fcols[1]]},
		Label: header[lcol],
		X:     mat.NewDense(len(rows), 2, nil),
		Y:     make([]string, len(rows)),
	}
	for i, rec := range rows {
		for j, c := range fcols {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[c]), 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: row %d column %q: %w", i+2, header[c], err)
			}
			ds.X.Set(i, j, v)
		}
		ds.Y[i] = strings.TrimSpace(rec[lcol])
	}
	return ds, nil
}

// detect returns the delimiter used in the first line of data.
func detect(data []byte) Delims {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	switch {
	case bytes.ContainsRune(line, '\t'):
		return Tab
	case bytes.ContainsRune(line, ','):
		return Comma
	}
	return Space
}

// SaveCSV writes the dataset to the given file. See [Dataset.WriteCSV].
func (ds *Dataset) SaveCSV(filename string, delim Delims) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fp)
	err = ds.WriteCSV(bw, delim)
	if err == nil {
		err = bw.Flush()
	}
	return errors.Join(err, fp.Close())
}

// WriteCSV writes the dataset with a header row of column names,
// the two features followed by the label.
func (ds *Dataset) WriteCSV(w io.Writer, delim Delims) error {
	if delim == Detect {
		delim = Comma
	}
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if err := cw.Write([]string{ds.Names[0], ds.Names[1], ds.Label}); err != nil {
		return err
	}
	for i := range ds.Len() {
		rec := []string{
			strconv.FormatFloat(ds.X.At(i, 0), 'g', -1, 64),
			strconv.FormatFloat(ds.X.At(i, 1), 'g', -1, 64),
			ds.Y[i],
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
