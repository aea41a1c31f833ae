// Package pdf implementa la representación PDF del reporte de plantilla de
// una empresa.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la empresa │ Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: Dirección / Tel / Email / Departamentos              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Email | Departamento | Alta                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: empleados activos                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Empresas-api/internal/application/reports"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Ensure MarotoRosterGenerator implements reports.RosterPDFGenerator.
var _ reports.RosterPDFGenerator = (*MarotoRosterGenerator)(nil)

// MarotoRosterGenerator implementa reports.RosterPDFGenerator usando Maroto v2.
type MarotoRosterGenerator struct{}

// NewMarotoRosterGenerator construye el generador.
func NewMarotoRosterGenerator() *MarotoRosterGenerator { return &MarotoRosterGenerator{} }

// GenerateRosterPDF genera el PDF de plantilla y devuelve sus bytes.
func (g *MarotoRosterGenerator) GenerateRosterPDF(
	_ context.Context,
	company *entity.Company,
	rows []reports.EmployeeForRoster,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Plantilla de empleados", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(companyInfoRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(len(rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la empresa (izq) y fecha de generación (der).
func headerRow(company *entity.Company) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de plantilla", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006"), props.Text{
				Size: 9, Top: 2, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// companyInfoRow: datos de contacto y departamentos declarados.
func companyInfoRow(company *entity.Company) core.Row {
	departments := ""
	for i, d := range company.Departments {
		if i > 0 {
			departments += ", "
		}
		departments += d.Name
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New(company.Address, props.Text{Size: 8, Top: 1}),
			text.New("Tel: "+company.Phone+"  ·  "+company.Email, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Departamentos: "+departments, props.Text{Size: 8, Top: 1, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	style := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(4).Add(text.New("Nombre", style)),
		col.New(4).Add(text.New("Email", style)),
		col.New(2).Add(text.New("Departamento", style)),
		col.New(2).Add(text.New("Alta", style)),
	)
}

func tableRows(rows []reports.EmployeeForRoster) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, row.New(6).Add(
			col.New(4).Add(text.New(r.Name, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(r.Email, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(r.Department, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(r.Since.Format("02/01/2006"), props.Text{Size: 8, Top: 1, Color: colorGray})),
		))
	}
	return out
}

func totalRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de empleados: %d", count), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Right,
			}),
		),
	)
}
