// Package export genera el listado de animales en Excel (excelize).
package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
	"github.com/ganaderia-aureo/pupilaje-api/internal/application/usecase"
)

// RosterSheet nombre de la hoja del listado.
const RosterSheet = "Animales"

var rosterHeaders = []string{
	"Crotal", "Cliente", "Nacimiento", "Entrada", "Salida",
	"Estado", "Estado reproductivo", "1ª inseminación", "Toro 1ª", "Observaciones",
}

var _ usecase.RosterExporter = (*XLSXRoster)(nil)

// XLSXRoster implementa usecase.RosterExporter con excelize.
type XLSXRoster struct{}

// NewXLSXRoster construye el exportador.
func NewXLSXRoster() *XLSXRoster { return &XLSXRoster{} }

// ExportRoster escribe una fila por animal con cabecera fija y fechas como fechas de Excel.
func (x *XLSXRoster) ExportRoster(_ context.Context, rows []dto.AnimalRosterRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RosterSheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1E293B"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	dateFmt := "dd/mm/yyyy"
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo fecha: %w", err)
	}

	if err := f.SetSheetRow(RosterSheet, "A1", &rosterHeaders); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(rosterHeaders))
	_ = f.SetCellStyle(RosterSheet, "A1", lastCol+"1", headerStyle)

	for i, r := range rows {
		values := []any{
			r.Crotal,
			r.ClientName,
			optionalDate(r.BirthDate),
			r.EntryDate,
			optionalDate(r.ExitDate),
			r.Status,
			r.ReproStatus,
			r.Insem1Date,
			r.Insem1Bull,
			r.Observations,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(RosterSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	if len(rows) > 0 {
		last := len(rows) + 1
		_ = f.SetCellStyle(RosterSheet, "C2", fmt.Sprintf("E%d", last), dateStyle)
	}

	_ = f.SetColWidth(RosterSheet, "A", "B", 22)
	_ = f.SetColWidth(RosterSheet, "C", "E", 12)
	_ = f.SetColWidth(RosterSheet, "F", "I", 16)
	_ = f.SetColWidth(RosterSheet, "J", "J", 40)
	_ = f.SetPanes(RosterSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

// optionalDate nil → celda vacía.
func optionalDate[T any](t *T) any {
	if t == nil {
		return nil
	}
	return *t
}
