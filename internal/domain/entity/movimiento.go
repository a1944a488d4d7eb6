package entity

import "strconv"

// Tipos de movimiento: cada uno vive en su propia hoja (libro disjunto).
const (
	TipoEntrada = "entrada" // suma al acumulado Entradas del artículo
	TipoSalida  = "salida"  // suma al acumulado Salidas del artículo
)

// Movimiento representa una fila de las hojas Entradas o Salidas (columnas A..E).
// NumFactura es único dentro de su libro; Codigo referencia a un Articulo y
// Descripcion es una copia desnormalizada de la del artículo.
type Movimiento struct {
	NumFactura  string
	Fecha       string // ISO YYYY-MM-DD
	Codigo      string
	Descripcion string
	Cantidad    int // siempre > 0
}

// Fila devuelve la representación posicional A..F para escribir en la hoja.
// La columna F queda vacía, reservada en el layout de la hoja.
func (m Movimiento) Fila() []string {
	return []string{
		m.NumFactura,
		m.Fecha,
		m.Codigo,
		m.Descripcion,
		strconv.Itoa(m.Cantidad),
		"",
	}
}

// MovimientoDesdeFila construye un Movimiento desde una fila cruda de la hoja.
// Filas cortas se rellenan con vacío; una cantidad ilegible queda en 0.
func MovimientoDesdeFila(fila []string) Movimiento {
	f := make([]string, 5)
	copy(f, fila)
	cantidad, _ := strconv.Atoi(f[4])
	return Movimiento{
		NumFactura:  f[0],
		Fecha:       f[1],
		Codigo:      f[2],
		Descripcion: f[3],
		Cantidad:    cantidad,
	}
}
