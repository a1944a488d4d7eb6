package repository

import "context"

// Hojas con las que trabaja la aplicación. El almacén las trata como tablas
// con un layout de columnas fijo.
const (
	HojaInventario = "Inventario" // A:F = código, descripción, existencias, entradas, salidas, stock
	HojaEntradas   = "Entradas"   // A:E = n° factura, fecha, código, descripción, cantidad
	HojaSalidas    = "Salidas"    // A:E = n° factura, fecha, código, descripción, cantidad
)

// Rangos de datos (la fila 1 es encabezado).
const (
	RangoInventario = "Inventario!A2:F"
	RangoEntradas   = "Entradas!A2:F"
	RangoSalidas    = "Salidas!A2:F"
)

// HojaStore es el almacén tabular remoto (frontera opaca). Cada llamada es
// una petición independiente sin aislamiento transaccional entre llamadas:
// una operación compuesta que falla a mitad deja estado parcial (documentado
// en cada caso de uso). Los índices de fila son absolutos y base 1, contando
// el encabezado.
type HojaStore interface {
	// GetRange devuelve las filas del rango, sin filas vacías al final.
	GetRange(ctx context.Context, rango string) ([][]string, error)
	// UpdateRange escribe las filas empezando en la celda inicial del rango.
	UpdateRange(ctx context.Context, rango string, valores [][]string) error
	// AppendRow agrega una fila después de la última fila con datos de la tabla.
	AppendRow(ctx context.Context, rango string, fila []string) error
	// DeleteRows elimina filas por índice absoluto. El adaptador las borra en
	// orden descendente para que los índices no se desplacen entre borrados.
	DeleteRows(ctx context.Context, hoja string, filas []int) error
	// ListSheets devuelve los títulos de las hojas del libro.
	ListSheets(ctx context.Context) ([]string, error)
	// CreateSheet crea una hoja nueva con ese título.
	CreateSheet(ctx context.Context, titulo string) error
}
