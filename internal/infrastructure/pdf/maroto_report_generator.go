// Package pdf implementa la exportación de reportes a PDF usando Maroto v2.
//
// Layout de la página A4 apaisada:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Reporte de Inventario / Entradas / Salidas          │
//	│  Filtros: Códigos: A1, A2 | Stock mínimo (15)                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: encabezados + filas filtradas                        │
//	│  (o la fila única "No hay datos para mostrar")               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appreporte "github.com/abelfynine/inventario-api/internal/application/reporte"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Anchos de columna (grilla de 12) según el número de columnas de la tabla.
var (
	anchosInventario = []int{2, 4, 2, 1, 1, 2} // Código, Descripción, Existencias, Entradas, Salidas, Stock
	anchosMovimiento = []int{2, 2, 2, 4, 2}    // N° Factura, Fecha, Código, Descripción, Cantidad
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reporte.GeneradorPDF usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generar genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) Generar(_ context.Context, docu appreporte.DocumentoReporte) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(docu.Titulo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(tituloRow(docu.Titulo))
	m.AddRows(filtrosRow(docu.Filtros))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	anchos := anchosDe(len(docu.Columnas))
	m.AddRows(encabezadoRow(docu.Columnas, anchos))
	for _, fila := range docu.Filas {
		m.AddRows(filaRow(fila, anchos))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// tituloRow: título centrado en negrita.
func tituloRow(titulo string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// filtrosRow: resumen de los filtros aplicados, unidos con " | ".
func filtrosRow(filtros []string) core.Row {
	return row.New(7).Add(
		col.New(12).Add(
			text.New("Filtros: "+strings.Join(filtros, " | "), props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 1,
			}),
		),
	)
}

// encabezadoRow: cabecera de la tabla.
func encabezadoRow(columnas []string, anchos []int) core.Row {
	cols := make([]core.Col, 0, len(columnas))
	for i, nombre := range columnas {
		cols = append(cols, col.New(anchos[i]).Add(
			text.New(nombre, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		))
	}
	return row.New(8).Add(cols...)
}

// filaRow: una fila de datos. La fila marcadora de tabla vacía trae una sola
// celda y se extiende a lo ancho de todas las columnas.
func filaRow(fila []string, anchos []int) core.Row {
	if len(fila) == 1 {
		return row.New(10).Add(
			col.New(12).Add(
				text.New(fila[0], props.Text{
					Style: fontstyle.Bold, Size: 9, Align: align.Center,
					Color: colorGray, Top: 3,
				}),
			),
		)
	}
	cols := make([]core.Col, 0, len(fila))
	for i, v := range fila {
		ancho := 1
		if i < len(anchos) {
			ancho = anchos[i]
		}
		cols = append(cols, col.New(ancho).Add(
			text.New(v, props.Text{Size: 8, Align: align.Center, Top: 1}),
		))
	}
	return row.New(6).Add(cols...)
}

// anchosDe elige la grilla según el número de columnas de la tabla.
func anchosDe(numColumnas int) []int {
	if numColumnas == len(anchosMovimiento) {
		return anchosMovimiento
	}
	return anchosInventario
}
