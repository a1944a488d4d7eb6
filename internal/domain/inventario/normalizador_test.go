package inventario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abelfynine/inventario-api/internal/domain/entity"
	"github.com/abelfynine/inventario-api/internal/domain/inventario"
)

// ──────────────────────────────────────────────────────────────────────────────
// NormalizarFila: relleno, parseo tolerante y stock derivado
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizarFila_FilaCompleta(t *testing.T) {
	a := inventario.NormalizarFila([]string{"A1", "Tornillo", "10", "5", "3", "999"})

	assert.Equal(t, "A1", a.Codigo)
	assert.Equal(t, "Tornillo", a.Descripcion)
	assert.Equal(t, 10, a.Existencia)
	assert.Equal(t, 5, a.Entradas)
	assert.Equal(t, 3, a.Salidas)
	// El stock almacenado (999) se descarta: siempre se re-deriva.
	assert.Equal(t, 12, a.Stock, "stock = existencia + entradas - salidas")
}

func TestNormalizarFila_FilaCortaSeRellena(t *testing.T) {
	a := inventario.NormalizarFila([]string{"B2", "Tuerca"})

	assert.Equal(t, "B2", a.Codigo)
	assert.Equal(t, 0, a.Existencia)
	assert.Equal(t, 0, a.Entradas)
	assert.Equal(t, 0, a.Salidas)
	assert.Equal(t, 0, a.Stock)
}

func TestNormalizarFila_BasuraNumericaValeCero(t *testing.T) {
	a := inventario.NormalizarFila([]string{"C3", "Clavo", "abc", " 7 ", "???"})

	assert.Equal(t, 0, a.Existencia, "texto ilegible vale 0")
	assert.Equal(t, 7, a.Entradas, "los espacios alrededor se toleran")
	assert.Equal(t, 0, a.Salidas)
	assert.Equal(t, 7, a.Stock)
}

func TestNormalizarFila_StockNegativoNoSeRecorta(t *testing.T) {
	a := inventario.NormalizarFila([]string{"D4", "Lija", "2", "0", "9"})

	assert.Equal(t, -7, a.Stock, "la sobreasignación se muestra tal cual")
}

func TestNormalizarFila_EsPura(t *testing.T) {
	fila := []string{"E5", "Broca", "1", "2", "3"}
	_ = inventario.NormalizarFila(fila)

	assert.Equal(t, []string{"E5", "Broca", "1", "2", "3"}, fila,
		"la fila de entrada no debe mutarse")
}

func TestArticuloFila_RondaCompleta(t *testing.T) {
	a := inventario.NormalizarFila([]string{"F6", "Cinta", "4", "", ""})

	assert.Equal(t, []string{"F6", "Cinta", "4", "0", "0", "4"}, a.Fila())
	assert.IsType(t, entity.Articulo{}, a)
}
