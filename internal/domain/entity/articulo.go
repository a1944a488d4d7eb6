package entity

import "strconv"

// Articulo representa una fila de la hoja Inventario (columnas A..F).
// Stock es un campo derivado: Existencia + Entradas - Salidas. Nunca se
// confía en el valor almacenado más allá del último recálculo; puede ser
// negativo (sobreasignación) y se muestra tal cual.
type Articulo struct {
	Codigo      string // clave única
	Descripcion string
	Existencia  int
	Entradas    int // acumulado de entradas
	Salidas     int // acumulado de salidas
	Stock       int // derivado
}

// Fila devuelve la representación posicional A..F para escribir en la hoja.
func (a Articulo) Fila() []string {
	return []string{
		a.Codigo,
		a.Descripcion,
		strconv.Itoa(a.Existencia),
		strconv.Itoa(a.Entradas),
		strconv.Itoa(a.Salidas),
		strconv.Itoa(a.Stock),
	}
}
