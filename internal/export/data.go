package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/milankovitch/internal/series"
)

// Column selects one series of a dataset by name.
type Column struct {
	Name   string
	Values []float64
}

// Columns lists the physical and derived series in export order.
func Columns(ds *series.Dataset) []Column {
	return []Column{
		{"time", ds.Time},
		{"eccentricity", ds.Eccentricity},
		{"precession", ds.Precession},
		{"obliquity", ds.Obliquity},
		{"precession_tilt", ds.PrecessionTilt},
		{"precession_display", ds.PrecessionDisplay},
	}
}

// Lookup returns the named column of ds.
func Lookup(ds *series.Dataset, name string) ([]float64, error) {
	for _, c := range Columns(ds) {
		if c.Name == name {
			return c.Values, nil
		}
	}
	return nil, fmt.Errorf("export: unknown series %q", name)
}

// WriteCSV writes one header row and one row per timestep.
func WriteCSV(w io.Writer, ds *series.Dataset) error {
	cols := Columns(ds)
	cw := csv.NewWriter(w)

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(cols))
	for i := 0; i < ds.Len(); i++ {
		for j, c := range cols {
			row[j] = strconv.FormatFloat(c.Values[i], 'f', 6, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Data is the JSON export document.
type Data struct {
	Timestep          float64   `json:"timestep"`
	Samples           int       `json:"samples"`
	Time              []float64 `json:"time"`
	Eccentricity      []float64 `json:"eccentricity"`
	Precession        []float64 `json:"precession"`
	Obliquity         []float64 `json:"obliquity"`
	PrecessionTilt    []float64 `json:"precession_tilt"`
	PrecessionDisplay []float64 `json:"precession_display"`
	Insolation65N     []float64 `json:"insolation_65n,omitempty"`
}

func NewData(ds *series.Dataset) *Data {
	return &Data{
		Timestep:          ds.Step,
		Samples:           ds.Len(),
		Time:              ds.Time,
		Eccentricity:      ds.Eccentricity,
		Precession:        ds.Precession,
		Obliquity:         ds.Obliquity,
		PrecessionTilt:    ds.PrecessionTilt,
		PrecessionDisplay: ds.PrecessionDisplay,
	}
}

func WriteJSON(w io.Writer, data *Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
