package dto

import "github.com/abelfynine/inventario-api/internal/domain/entity"

// RegistrarMovimientoRequest alta de una entrada o salida. Cantidad llega
// como texto de solo dígitos, igual que en el formulario.
type RegistrarMovimientoRequest struct {
	NumFactura  string `json:"num_factura"`
	Fecha       string `json:"fecha"` // ISO YYYY-MM-DD
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
	Cantidad    string `json:"cantidad"`
}

// ModificarMovimientoRequest edición de un movimiento existente: solo fecha y
// cantidad son editables; factura, código y descripción se conservan.
type ModificarMovimientoRequest struct {
	Fecha    string `json:"fecha"`
	Cantidad string `json:"cantidad"`
}

// MovimientoResponse fila de un libro de movimientos.
type MovimientoResponse struct {
	NumFactura  string `json:"num_factura"`
	Fecha       string `json:"fecha"`
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
	Cantidad    int    `json:"cantidad"`
}

// ToMovimientoResponse mapea la entidad a la respuesta HTTP.
func ToMovimientoResponse(m entity.Movimiento) MovimientoResponse {
	return MovimientoResponse{
		NumFactura:  m.NumFactura,
		Fecha:       m.Fecha,
		Codigo:      m.Codigo,
		Descripcion: m.Descripcion,
		Cantidad:    m.Cantidad,
	}
}
