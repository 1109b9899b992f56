package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Grid is a two dimensional sheet, such as a weekly timetable with days as columns.
type Grid struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// XLSXExporter renders a flat dataset and optional grids into a workbook.
type XLSXExporter struct{}

// NewXLSXExporter constructs an XLSX exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Render writes each grid to its own sheet followed by a "List" sheet holding the dataset.
func (e *XLSXExporter) Render(data Dataset, grids ...Grid) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("xlsx requires at least one header")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E0E7FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for _, grid := range grids {
		if _, err := f.NewSheet(grid.Name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", grid.Name, err)
		}
		if err := writeRows(f, grid.Name, grid.Columns, grid.Rows, headerStyle); err != nil {
			return nil, err
		}
	}

	const listSheet = "List"
	idx, err := f.NewSheet(listSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet %s: %w", listSheet, err)
	}
	rows := make([][]string, 0, len(data.Rows))
	for _, row := range data.Rows {
		rows = append(rows, data.record(row))
	}
	if err := writeRows(f, listSheet, data.Headers, rows, headerStyle); err != nil {
		return nil, err
	}

	if len(grids) == 0 {
		f.SetActiveSheet(idx)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, headers []string, rows [][]string, headerStyle int) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("write %s header: %w", sheet, err)
		}
	}
	if len(headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("style %s header: %w", sheet, err)
		}
		lastCol, _ := excelize.ColumnNumberToName(len(headers))
		if err := f.SetColWidth(sheet, "A", lastCol, 22); err != nil {
			return fmt.Errorf("size %s columns: %w", sheet, err)
		}
	}

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("write %s row: %w", sheet, err)
			}
		}
	}
	return nil
}
