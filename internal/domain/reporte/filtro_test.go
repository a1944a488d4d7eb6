package reporte_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelfynine/inventario-api/internal/domain/reporte"
)

// filas de inventario normalizadas: código, descripción, existencias,
// entradas, salidas, stock
func filasInventario() [][]string {
	return [][]string{
		{"A1", "Tornillo", "10", "5", "3", "12"},
		{"B2", "Tuerca", "8", "0", "2", "6"},
		{"C3", "Clavo", "15", "0", "5", "10"},
		{"D4", "Lija", "30", "0", "0", "30"},
	}
}

// filas de movimientos: n° factura, fecha, código, descripción, cantidad
func filasEntradas() [][]string {
	return [][]string{
		{"F-001", "2026-01-10", "A1", "Tornillo", "5"},
		{"F-002", "2026-02-20", "B2 ", "Tuerca", "12"},
		{"F-003", "2026-03-05", "A1", "Tornillo", "10"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo Todos
// ──────────────────────────────────────────────────────────────────────────────

func TestAplicar_TodosDevuelveCopiaEnOrden(t *testing.T) {
	filas := filasInventario()
	out := reporte.Aplicar(filas, reporte.FilterSpec{Todos: true}, reporte.TipoInventario)

	require.Equal(t, filas, out, "todas las filas en el orden original")
	out[0] = []string{"mutada"}
	assert.Equal(t, "A1", filas[0][0], "la entrada no debe compartir el slice externo")
}

func TestAplicar_TodosIgnoraElRestoDelFilterSpec(t *testing.T) {
	spec := reporte.FilterSpec{
		Todos:   true,
		Codigos: []string{"A1"},
		Stock:   reporte.FiltroCampo{Op: reporte.OpStockMinimo},
	}
	out := reporte.Aplicar(filasInventario(), spec, reporte.TipoInventario)
	assert.Len(t, out, 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pertenencia y fechas
// ──────────────────────────────────────────────────────────────────────────────

func TestAplicar_PertenenciaPorCodigo(t *testing.T) {
	spec := reporte.FilterSpec{Codigos: []string{"A1", "D4"}}
	out := reporte.Aplicar(filasInventario(), spec, reporte.TipoInventario)

	require.Len(t, out, 2)
	assert.Equal(t, "A1", out[0][0])
	assert.Equal(t, "D4", out[1][0])
}

func TestAplicar_CodigoDeMovimientoSeComparaRecortado(t *testing.T) {
	// "B2 " con espacio en la hoja debe emparejar con "B2".
	spec := reporte.FilterSpec{CodigosMovimiento: []string{"B2"}}
	out := reporte.Aplicar(filasEntradas(), spec, reporte.TipoEntradas)

	require.Len(t, out, 1)
	assert.Equal(t, "F-002", out[0][0])
}

func TestAplicar_RangoDeFechas(t *testing.T) {
	spec := reporte.FilterSpec{
		Fechas: reporte.RangoFechas{Desde: "2026-02-01", Hasta: "2026-02-28"},
	}
	out := reporte.Aplicar(filasEntradas(), spec, reporte.TipoEntradas)

	require.Len(t, out, 1)
	assert.Equal(t, "F-002", out[0][0])
}

func TestAplicar_SoloFechaDesde(t *testing.T) {
	spec := reporte.FilterSpec{Fechas: reporte.RangoFechas{Desde: "2026-02-20"}}
	out := reporte.Aplicar(filasEntradas(), spec, reporte.TipoEntradas)

	require.Len(t, out, 2, "la fecha límite es inclusiva")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros numéricos
// ──────────────────────────────────────────────────────────────────────────────

func TestAplicar_ExistenciasGteIncluyeElLimite(t *testing.T) {
	spec := reporte.FilterSpec{
		Campos: map[string]reporte.FiltroCampo{
			reporte.CampoExistencias: {Op: reporte.OpMayorIgual, Valor1: "10"},
		},
	}
	out := reporte.Aplicar(filasInventario(), spec, reporte.TipoInventario)

	require.Len(t, out, 3)
	assert.Equal(t, "A1", out[0][0], "existencias 10 cumple >= 10")
}

func TestAplicar_CantidadEntreConOperandosInvertidos(t *testing.T) {
	spec := reporte.FilterSpec{
		Campos: map[string]reporte.FiltroCampo{
			reporte.CampoCantidad: {Op: reporte.OpEntre, Valor1: "10", Valor2: "4"},
		},
	}
	out := reporte.Aplicar(filasEntradas(), spec, reporte.TipoEntradas)

	require.Len(t, out, 2, "los operandos se ordenan antes de comparar")
}

func TestAplicar_EntreSinAmbosOperandosEsInerte(t *testing.T) {
	spec := reporte.FilterSpec{
		Campos: map[string]reporte.FiltroCampo{
			reporte.CampoCantidad: {Op: reporte.OpEntre, Valor1: "5"},
		},
	}
	out := reporte.Aplicar(filasEntradas(), spec, reporte.TipoEntradas)

	assert.Len(t, out, 3, "between sin segundo operando no filtra nada")
}

func TestAplicar_OperandoIlegibleFallaCerrado(t *testing.T) {
	spec := reporte.FilterSpec{
		Campos: map[string]reporte.FiltroCampo{
			reporte.CampoExistencias: {Op: reporte.OpMayor, Valor1: "mucho"},
		},
	}
	out := reporte.Aplicar(filasInventario(), spec, reporte.TipoInventario)

	assert.Empty(t, out, "un operando presente pero ilegible no empareja ninguna fila")
}

func TestAplicar_CeldaVaciaValeCero(t *testing.T) {
	filas := [][]string{{"X1", "Raro", "", "0", "0", "0"}}
	spec := reporte.FilterSpec{
		Campos: map[string]reporte.FiltroCampo{
			reporte.CampoExistencias: {Op: reporte.OpIgual, Valor1: "0"},
		},
	}
	out := reporte.Aplicar(filas, spec, reporte.TipoInventario)

	assert.Len(t, out, 1, "una celda vacía se compara como 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestAplicar_StockMinimoIncluyeElLimite(t *testing.T) {
	spec := reporte.FilterSpec{
		Stock:       reporte.FiltroCampo{Op: reporte.OpStockMinimo},
		LimiteStock: 10,
	}
	out := reporte.Aplicar(filasInventario(), spec, reporte.TipoInventario)

	require.Len(t, out, 2)
	assert.Equal(t, "B2", out[0][0], "stock 6 <= 10")
	assert.Equal(t, "C3", out[1][0], "stock 10 <= 10 (límite inclusivo)")
}

func TestAplicar_StockArribaExcluyeElLimite(t *testing.T) {
	spec := reporte.FilterSpec{
		Stock:       reporte.FiltroCampo{Op: reporte.OpStockArriba},
		LimiteStock: 10,
	}
	out := reporte.Aplicar(filasInventario(), spec, reporte.TipoInventario)

	require.Len(t, out, 2)
	assert.Equal(t, "A1", out[0][0], "stock 12 > 10")
	assert.Equal(t, "D4", out[1][0], "stock 30 > 10; el 10 exacto queda fuera")
}

func TestAplicar_StockGenericoUsaOperandos(t *testing.T) {
	spec := reporte.FilterSpec{
		Stock: reporte.FiltroCampo{Op: reporte.OpMenorIgual, Valor1: "12"},
	}
	out := reporte.Aplicar(filasInventario(), spec, reporte.TipoInventario)

	require.Len(t, out, 3)
}

// Los pasos componen como AND: pertenencia y luego stock.
func TestAplicar_EstrechamientoSecuencial(t *testing.T) {
	spec := reporte.FilterSpec{
		Codigos:     []string{"A1", "B2"},
		Stock:       reporte.FiltroCampo{Op: reporte.OpStockMinimo},
		LimiteStock: 10,
	}
	out := reporte.Aplicar(filasInventario(), spec, reporte.TipoInventario)

	require.Len(t, out, 1)
	assert.Equal(t, "B2", out[0][0])
}
