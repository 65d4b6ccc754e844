// Package export writes the filtered catalog to an .xlsx workbook with an
// ASTEROIDS sheet (full table) and a PROFIT sheet (point value plus band).
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/astromine/planner/internal/domain"
	"github.com/astromine/planner/internal/profit"
)

const (
	asteroidSheet = "ASTEROIDS"
	profitSheet   = "PROFIT"
)

// Service builds spreadsheet workbooks from catalog records.
type Service struct{}

// NewService creates a new export Service.
func NewService() *Service {
	return &Service{}
}

// Workbook builds the two-sheet workbook. The caller owns closing the file.
func (s *Service) Workbook(records []domain.Asteroid) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", asteroidSheet); err != nil {
		return nil, fmt.Errorf("renaming asteroid sheet: %w", err)
	}
	if _, err := f.NewSheet(profitSheet); err != nil {
		return nil, fmt.Errorf("creating profit sheet: %w", err)
	}

	if err := writeRows(f, asteroidSheet, buildAsteroidRows(records)); err != nil {
		return nil, err
	}
	if err := writeRows(f, profitSheet, buildProfitRows(records)); err != nil {
		return nil, err
	}

	return f, nil
}

// WriteTo builds the workbook and streams it to w.
func (s *Service) WriteTo(w io.Writer, records []domain.Asteroid) error {
	f, err := s.Workbook(records)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteFile builds the workbook and saves it at path.
func (s *Service) WriteFile(path string, records []domain.Asteroid) error {
	f, err := s.Workbook(records)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook to %s: %w", path, err)
	}
	return nil
}

// buildAsteroidRows builds the ASTEROIDS sheet data.
// Columns: Name | a (AU) | e | i (deg) | Diameter (km) | Est. Value (B$) | Spectral Type | Delta-V (km/s)
func buildAsteroidRows(records []domain.Asteroid) [][]any {
	rows := make([][]any, 0, len(records)+1)
	rows = append(rows, []any{
		"Name", "a (AU)", "e", "i (deg)",
		"Diameter (km)", "Est. Value (B$)", "Spectral Type", "Delta-V (km/s)",
	})

	for _, a := range records {
		rows = append(rows, []any{
			a.Name, a.SemiMajorAxisAU, a.Eccentricity, a.InclinationDeg,
			a.DiameterKm, a.EstimatedValue.InexactFloat64(),
			string(a.SpectralType), a.DeltaVKmPerSec,
		})
	}
	return rows
}

// buildProfitRows builds the PROFIT sheet data.
// Columns: Name | Est. Value (B$) | Low (B$) | High (B$)
func buildProfitRows(records []domain.Asteroid) [][]any {
	rows := make([][]any, 0, len(records)+1)
	rows = append(rows, []any{"Name", "Est. Value (B$)", "Low (B$)", "High (B$)"})

	for _, a := range records {
		band := profit.Band(a)
		rows = append(rows, []any{
			a.Name,
			a.EstimatedValue.InexactFloat64(),
			band.Low.InexactFloat64(),
			band.High.InexactFloat64(),
		})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("resolving cell %d,%d: %w", c+1, r+1, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("setting %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
