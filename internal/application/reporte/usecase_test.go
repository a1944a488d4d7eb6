package reporte_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appreporte "github.com/abelfynine/inventario-api/internal/application/reporte"
	domreporte "github.com/abelfynine/inventario-api/internal/domain/reporte"
	"github.com/abelfynine/inventario-api/internal/infrastructure/memoria"
	"github.com/abelfynine/inventario-api/pkg/logger"
)

// generadorEspia captura el documento que recibe y devuelve bytes fijos.
type generadorEspia struct {
	doc appreporte.DocumentoReporte
	err error
}

func (g *generadorEspia) Generar(_ context.Context, doc appreporte.DocumentoReporte) ([]byte, error) {
	g.doc = doc
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-falso"), nil
}

func nuevoUseCase(t *testing.T) (*appreporte.UseCase, *generadorEspia) {
	t.Helper()
	store := memoria.NewStore()
	store.Sembrar("Inventario", [][]string{
		{"Código", "Descripción", "Existencias", "Entradas", "Salidas", "Stock"},
		{"A1", "Tornillo", "10", "5", "3", ""},
		{"B2", "Tuerca", "8", "", "", ""},
	})
	store.Sembrar("Entradas", [][]string{
		{"N° Factura", "Fecha", "Código", "Descripción", "Cantidad"},
		{"F-001", "2026-01-10", "A1", "Tornillo", "5"},
	})
	gen := &generadorEspia{}
	uc := appreporte.NewUseCase(store, gen, logger.Nop()).
		ConReloj(func() time.Time {
			return time.Date(2026, time.September, 2, 15, 4, 5, 0, time.UTC)
		})
	return uc, gen
}

func TestGenerar_InventarioNormalizaAntesDeFiltrar(t *testing.T) {
	uc, gen := nuevoUseCase(t)

	// Stock almacenado vacío: solo pasa el filtro si el stock se re-deriva.
	spec := domreporte.FilterSpec{
		Stock:       domreporte.FiltroCampo{Op: domreporte.OpStockArriba},
		LimiteStock: 10,
	}
	out, err := uc.Generar(context.Background(), domreporte.TipoInventario, spec)
	require.NoError(t, err)

	require.Len(t, gen.doc.Filas, 1)
	assert.Equal(t, []string{"A1", "Tornillo", "10", "5", "3", "12"}, gen.doc.Filas[0])
	assert.Equal(t, "Reporte de Inventario", gen.doc.Titulo)
	assert.Equal(t, []string{"Stock arriba del mínimo (10)"}, gen.doc.Filtros)
	assert.Equal(t, []byte("%PDF-falso"), out.Contenido)
}

func TestGenerar_NombreDeArchivoDeterminista(t *testing.T) {
	uc, _ := nuevoUseCase(t)

	out, err := uc.Generar(context.Background(), domreporte.TipoEntradas,
		domreporte.FilterSpec{Todos: true})
	require.NoError(t, err)

	assert.Equal(t, "Entradas_02-septiembre-2026-15_04_05.pdf", out.NombreArchivo)
}

func TestGenerar_SinResultadosEntregaElMarcador(t *testing.T) {
	uc, gen := nuevoUseCase(t)

	spec := domreporte.FilterSpec{Codigos: []string{"NO-EXISTE"}}
	_, err := uc.Generar(context.Background(), domreporte.TipoInventario, spec)
	require.NoError(t, err)

	require.Len(t, gen.doc.Filas, 1)
	assert.Equal(t, []string{domreporte.MarcadorSinDatos}, gen.doc.Filas[0])
}

func TestGenerar_MovimientosConFechaFormateada(t *testing.T) {
	uc, gen := nuevoUseCase(t)

	_, err := uc.Generar(context.Background(), domreporte.TipoEntradas,
		domreporte.FilterSpec{Todos: true})
	require.NoError(t, err)

	require.Len(t, gen.doc.Filas, 1)
	assert.Equal(t, "10-01-2026", gen.doc.Filas[0][1])
	assert.Equal(t, []string{"Todos"}, gen.doc.Filtros)
}

func TestGenerar_ErrorDelGeneradorSube(t *testing.T) {
	uc, gen := nuevoUseCase(t)
	gen.err = errors.New("sin fuente")

	_, err := uc.Generar(context.Background(), domreporte.TipoInventario,
		domreporte.FilterSpec{Todos: true})
	assert.Error(t, err)
}
