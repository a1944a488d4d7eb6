package dto

import "github.com/abelfynine/inventario-api/internal/domain/entity"

// AgregarArticuloRequest alta de un artículo. Existencia llega como texto
// (solo dígitos); entradas, salidas y stock nacen vacíos.
type AgregarArticuloRequest struct {
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
	Existencia  string `json:"existencia"`
}

// ModificarArticuloRequest edición directa de descripción y existencias.
type ModificarArticuloRequest struct {
	Descripcion string `json:"descripcion"`
	Existencia  string `json:"existencia"`
}

// ArticuloResponse fila de inventario ya normalizada.
type ArticuloResponse struct {
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
	Existencia  int    `json:"existencia"`
	Entradas    int    `json:"entradas"`
	Salidas     int    `json:"salidas"`
	Stock       int    `json:"stock"`
}

// ToArticuloResponse mapea la entidad a la respuesta HTTP.
func ToArticuloResponse(a entity.Articulo) ArticuloResponse {
	return ArticuloResponse{
		Codigo:      a.Codigo,
		Descripcion: a.Descripcion,
		Existencia:  a.Existencia,
		Entradas:    a.Entradas,
		Salidas:     a.Salidas,
		Stock:       a.Stock,
	}
}
