package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
	"github.com/ganaderia-aureo/pupilaje-api/internal/application/usecase"
	"github.com/ganaderia-aureo/pupilaje-api/pkg/format"
)

var _ usecase.RosterExporter = (*RosterGenerator)(nil)

// RosterGenerator listado de animales en PDF apaisado.
type RosterGenerator struct {
	now func() time.Time
}

// NewRosterGenerator construye el generador.
func NewRosterGenerator(now func() time.Time) *RosterGenerator {
	if now == nil {
		now = time.Now
	}
	return &RosterGenerator{now: now}
}

type rosterColumn struct {
	title string
	size  int
	value func(r dto.AnimalRosterRow) string
}

var rosterColumns = []rosterColumn{
	{"CROTAL", 2, func(r dto.AnimalRosterRow) string { return r.Crotal }},
	{"CLIENTE", 2, func(r dto.AnimalRosterRow) string { return r.ClientName }},
	{"NACIMIENTO", 1, func(r dto.AnimalRosterRow) string { return format.DatePtr(r.BirthDate) }},
	{"ENTRADA", 1, func(r dto.AnimalRosterRow) string { return format.Date(r.EntryDate) }},
	{"SALIDA", 1, func(r dto.AnimalRosterRow) string { return format.DatePtr(r.ExitDate) }},
	{"ESTADO", 1, func(r dto.AnimalRosterRow) string { return r.Status }},
	{"REPRODUCCIÓN", 2, func(r dto.AnimalRosterRow) string { return r.ReproStatus }},
	{"OBSERVACIONES", 2, func(r dto.AnimalRosterRow) string { return r.Observations }},
}

// ExportRoster genera el PDF del listado.
func (g *RosterGenerator) ExportRoster(_ context.Context, rows []dto.AnimalRosterRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Listado de animales", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(14).Add(
		col.New(8).Add(text.New("LISTADO DE ANIMALES", props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 3,
		})),
		col.New(4).Add(text.New(
			fmt.Sprintf("%s · %d animales", format.Date(g.now()), len(rows)),
			props.Text{Size: 8, Align: align.Right, Top: 5, Color: colorGray},
		)),
	))

	header := make([]core.Col, 0, len(rosterColumns))
	for _, c := range rosterColumns {
		header = append(header, col.New(c.size).Add(text.New(c.title, props.Text{
			Style: fontstyle.Bold, Size: 7, Color: colorWhite, Top: 2, Left: 1,
		})))
	}
	m.AddRows(row.New(7).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(header...))

	for i, r := range rows {
		cols := make([]core.Col, 0, len(rosterColumns))
		for _, c := range rosterColumns {
			cols = append(cols, col.New(c.size).Add(text.New(c.value(r), props.Text{Size: 7, Top: 1.5, Left: 1})))
		}
		line := row.New(6).Add(cols...)
		if i%2 == 1 {
			line = line.WithStyle(&props.Cell{BackgroundColor: colorLight})
		}
		m.AddRows(line)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar listado: %w", err)
	}
	return doc.GetBytes(), nil
}
