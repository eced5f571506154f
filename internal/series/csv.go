package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Files names the three source columns inside a data directory.
type Files struct {
	Eccentricity string `yaml:"eccentricity"`
	Precession   string `yaml:"precession"`
	Obliquity    string `yaml:"obliquity"`
}

// DefaultFiles are the 20 Ma tables the visualization ships against.
func DefaultFiles() Files {
	return Files{
		Eccentricity: "eccen_20ma.csv",
		Precession:   "precession_20ma.csv",
		Obliquity:    "obliquity_20ma.csv",
	}
}

// Raw holds the source columns on their native time axis.
type Raw struct {
	Time         []float64
	Eccentricity []float64
	Precession   []float64
	Obliquity    []float64
}

func (r *Raw) Len() int { return len(r.Time) }

// Span is the number of years covered by the source samples.
func (r *Raw) Span() float64 {
	if len(r.Time) == 0 {
		return 0
	}
	return r.Time[len(r.Time)-1]
}

// ReadColumn returns the second column of every record in path.
// A first record whose value does not parse is taken as a header.
func ReadColumn(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readColumn(f, filepath.Base(path))
}

func readColumn(r io.Reader, name string) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	values := make([]float64, 0, 1024)
	line := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, &ParseError{File: name, Line: line, Wrapped: err}
		}
		if len(record) == 0 || (len(record) == 1 && strings.TrimSpace(record[0]) == "") {
			continue
		}
		if len(record) < 2 {
			return nil, &ParseError{File: name, Line: line, Wrapped: fmt.Errorf("expected 2 fields, got %d", len(record))}
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, &ParseError{File: name, Line: line, Wrapped: err}
		}
		values = append(values, v)
	}
	return values, nil
}

// LoadRaw reads the three columns from dir and attaches a uniform time axis
// of sourceStep years per row.
func LoadRaw(dir string, files Files, sourceStep float64) (*Raw, error) {
	ecc, err := ReadColumn(filepath.Join(dir, files.Eccentricity))
	if err != nil {
		return nil, fmt.Errorf("eccentricity: %w", err)
	}
	prec, err := ReadColumn(filepath.Join(dir, files.Precession))
	if err != nil {
		return nil, fmt.Errorf("precession: %w", err)
	}
	obl, err := ReadColumn(filepath.Join(dir, files.Obliquity))
	if err != nil {
		return nil, fmt.Errorf("obliquity: %w", err)
	}
	return NewRaw(ecc, prec, obl, sourceStep)
}

// NewRaw checks the columns line up and builds their time axis.
func NewRaw(ecc, prec, obl []float64, sourceStep float64) (*Raw, error) {
	if len(ecc) != len(prec) || len(ecc) != len(obl) {
		return nil, fmt.Errorf("%w: eccentricity=%d precession=%d obliquity=%d",
			ErrLengthMismatch, len(ecc), len(prec), len(obl))
	}
	if len(ecc) < 2 {
		return nil, ErrTooShort
	}
	if sourceStep <= 0 {
		return nil, ErrEmptySpan
	}
	t := make([]float64, len(ecc))
	for i := range t {
		t[i] = float64(i) * sourceStep
	}
	return &Raw{Time: t, Eccentricity: ecc, Precession: prec, Obliquity: obl}, nil
}

// WriteColumn writes values in the format ReadColumn expects: index,value.
func WriteColumn(path string, values []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for i, v := range values {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'g', 10, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
