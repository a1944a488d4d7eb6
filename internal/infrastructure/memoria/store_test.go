package memoria_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelfynine/inventario-api/internal/domain"
	"github.com/abelfynine/inventario-api/internal/infrastructure/memoria"
)

func storeConInventario(t *testing.T) *memoria.Store {
	t.Helper()
	s := memoria.NewStore()
	s.Sembrar("Inventario", [][]string{
		{"Código", "Descripción", "Existencias", "Entradas", "Salidas", "Stock"},
		{"A1", "Tornillo", "10", "5", "3", "12"},
		{"B2", "Tuerca", "8", "", "", ""},
	})
	return s
}

func TestGetRange_DevuelveSoloLasFilasDeDatos(t *testing.T) {
	s := storeConInventario(t)

	filas, err := s.GetRange(context.Background(), "Inventario!A2:F")
	require.NoError(t, err)

	require.Len(t, filas, 2)
	assert.Equal(t, []string{"A1", "Tornillo", "10", "5", "3", "12"}, filas[0])
	assert.Equal(t, []string{"B2", "Tuerca", "8"}, filas[1],
		"las celdas vacías del final se recortan, como hace la API remota")
}

func TestGetRange_ColumnaUnica(t *testing.T) {
	s := storeConInventario(t)

	filas, err := s.GetRange(context.Background(), "Inventario!A2:A")
	require.NoError(t, err)

	require.Len(t, filas, 2)
	assert.Equal(t, []string{"A1"}, filas[0])
	assert.Equal(t, []string{"B2"}, filas[1])
}

func TestGetRange_HojaInexistenteEsErrorRemoto(t *testing.T) {
	s := memoria.NewStore()

	_, err := s.GetRange(context.Background(), "Fantasma!A2:F")
	assert.ErrorIs(t, err, domain.ErrRemote)
}

func TestUpdateRange_CeldaUnica(t *testing.T) {
	s := storeConInventario(t)

	err := s.UpdateRange(context.Background(), "Inventario!D2", [][]string{{"9"}})
	require.NoError(t, err)

	filas, err := s.GetRange(context.Background(), "Inventario!A2:F")
	require.NoError(t, err)
	assert.Equal(t, "9", filas[0][3])
}

func TestUpdateRange_BloqueDesdeA2(t *testing.T) {
	s := storeConInventario(t)

	bloque := [][]string{
		{"A1", "Tornillo", "10", "5", "3", "12"},
		{"B2", "Tuerca", "8", "0", "0", "8"},
	}
	require.NoError(t, s.UpdateRange(context.Background(), "Inventario!A2", bloque))

	filas, err := s.GetRange(context.Background(), "Inventario!A2:F")
	require.NoError(t, err)
	assert.Equal(t, bloque, filas)
}

func TestAppendRow_AgregaAlFinal(t *testing.T) {
	s := storeConInventario(t)

	err := s.AppendRow(context.Background(), "Inventario!A:F", []string{"C3", "Clavo", "4", "", "", ""})
	require.NoError(t, err)

	filas, err := s.GetRange(context.Background(), "Inventario!A2:F")
	require.NoError(t, err)
	require.Len(t, filas, 3)
	assert.Equal(t, "C3", filas[2][0])
}

func TestDeleteRows_BorraEnOrdenDescendente(t *testing.T) {
	s := storeConInventario(t)
	require.NoError(t, s.AppendRow(context.Background(), "Inventario!A:F", []string{"C3", "Clavo", "4"}))

	// Índices ascendentes a propósito: el store debe reordenarlos.
	err := s.DeleteRows(context.Background(), "Inventario", []int{2, 4})
	require.NoError(t, err)

	filas, err := s.GetRange(context.Background(), "Inventario!A2:F")
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "B2", filas[0][0], "solo debe sobrevivir la fila intermedia")
}

func TestCreateSheet_DuplicadaEsError(t *testing.T) {
	s := storeConInventario(t)

	require.NoError(t, s.CreateSheet(context.Background(), "Entradas"))
	assert.ErrorIs(t, s.CreateSheet(context.Background(), "Entradas"), domain.ErrRemote)

	titulos, err := s.ListSheets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Inventario", "Entradas"}, titulos)
}
