package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/epicycle/internal/fourier"
)

var ErrNoPoints = errors.New("store: no points in file")

// ReadPoints loads an x,y CSV capture. A non-numeric first row is taken as
// a header; blank and unparsable rows are skipped.
func ReadPoints(path string) (fourier.Curve, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return DecodePoints(file)
}

func DecodePoints(src io.Reader) (fourier.Curve, error) {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comment = '#'

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("store: read points: %w", err)
	}

	pts := make(fourier.Curve, 0, len(records))
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if errX != nil || errY != nil {
			continue
		}
		p := fourier.Pt(x, y)
		if !p.IsFinite() {
			continue
		}
		pts = append(pts, p)
	}
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}
	return pts, nil
}

// WritePoints saves a curve as x,y CSV with a header row.
func WritePoints(path string, curve fourier.Curve) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range curve {
		row := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteCoefficients saves a set in ascending order as n,re,im,mag CSV.
func WriteCoefficients(path string, set *fourier.CoefficientSet) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"n", "re", "im", "mag"}); err != nil {
		return err
	}
	if set != nil {
		for _, c := range set.ByOrder {
			row := []string{
				strconv.Itoa(c.N),
				strconv.FormatFloat(c.Re, 'g', -1, 64),
				strconv.FormatFloat(c.Im, 'g', -1, 64),
				strconv.FormatFloat(c.Mag(), 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

// ReadCoefficients loads a file written by WriteCoefficients. The orders
// must form a contiguous range -K..K.
func ReadCoefficients(path string) (*fourier.CoefficientSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("store: read coefficients: %w", err)
	}

	coeffs := make([]fourier.Coefficient, 0, len(records))
	for i, record := range records {
		if len(record) < 3 {
			continue
		}
		n, err := strconv.Atoi(record[0])
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("store: row %d: bad order %q", i+1, record[0])
		}
		re, errRe := strconv.ParseFloat(record[1], 64)
		im, errIm := strconv.ParseFloat(record[2], 64)
		if errRe != nil || errIm != nil {
			return nil, fmt.Errorf("store: row %d: bad coefficient", i+1)
		}
		coeffs = append(coeffs, fourier.Coefficient{N: n, Re: re, Im: im})
	}
	if len(coeffs) == 0 || len(coeffs)%2 == 0 {
		return nil, fmt.Errorf("store: expected 2K+1 coefficients, got %d", len(coeffs))
	}

	k := len(coeffs) / 2
	byOrder := make([]fourier.Coefficient, len(coeffs))
	seen := make([]bool, len(coeffs))
	for _, c := range coeffs {
		idx := c.N + k
		if idx < 0 || idx >= len(byOrder) || seen[idx] {
			return nil, fmt.Errorf("store: order %d outside -%d..%d or repeated", c.N, k, k)
		}
		byOrder[idx] = c
		seen[idx] = true
	}
	return fourier.NewCoefficientSet(k, byOrder), nil
}
