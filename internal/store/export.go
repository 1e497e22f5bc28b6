package store

import (
	"encoding/json"
	"io"

	"github.com/san-kum/epicycle/internal/fourier"
)

type CoefficientData struct {
	N   int     `json:"n"`
	Re  float64 `json:"re"`
	Im  float64 `json:"im"`
	Mag float64 `json:"mag"`
}

type PartialData struct {
	Bound  *int         `json:"bound"`
	Mode   string       `json:"mode"`
	Points [][2]float64 `json:"points"`
}

type ExportData struct {
	Shape        string            `json:"shape"`
	Samples      int               `json:"samples"`
	K            int               `json:"k"`
	Curve        [][2]float64      `json:"curve"`
	Coefficients []CoefficientData `json:"coefficients"`
	Partials     []PartialData     `json:"partials,omitempty"`
}

func points(c fourier.Curve) [][2]float64 {
	out := make([][2]float64, len(c))
	for i, p := range c {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

// NewExportData flattens a computed approximation for JSON output.
func NewExportData(shape string, curve fourier.Curve, set *fourier.CoefficientSet, partials []fourier.PartialCurve) ExportData {
	data := ExportData{
		Shape:   shape,
		Samples: len(curve),
		Curve:   points(curve),
	}
	if set != nil {
		data.K = set.K
		data.Coefficients = make([]CoefficientData, len(set.ByOrder))
		for i, c := range set.ByOrder {
			data.Coefficients[i] = CoefficientData{N: c.N, Re: c.Re, Im: c.Im, Mag: c.Mag()}
		}
	}
	for _, pc := range partials {
		data.Partials = append(data.Partials, PartialData{
			Bound:  pc.Bound,
			Mode:   string(pc.Mode),
			Points: points(pc.Points),
		})
	}
	return data
}

// ExportJSON writes data as indented JSON.
func ExportJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
