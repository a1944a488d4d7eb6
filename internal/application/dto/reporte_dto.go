package dto

import "github.com/abelfynine/inventario-api/internal/domain/reporte"

// FiltroCampoDTO operador más operandos de un filtro numérico.
type FiltroCampoDTO struct {
	Op     string `json:"op"`
	Valor1 string `json:"valor1"`
	Valor2 string `json:"valor2"`
}

// GenerarReporteRequest especificación declarativa del reporte a exportar.
type GenerarReporteRequest struct {
	Todos             bool                      `json:"todos"`
	Codigos           []string                  `json:"codigos"`
	CodigosMovimiento []string                  `json:"codigos_movimiento"`
	FechaDesde        string                    `json:"fecha_desde"`
	FechaHasta        string                    `json:"fecha_hasta"`
	Campos            map[string]FiltroCampoDTO `json:"campos"`
	Stock             FiltroCampoDTO            `json:"stock"`
	LimiteStock       int                       `json:"limite_stock"`
}

// ToFilterSpec mapea la petición al FilterSpec del dominio.
func (r GenerarReporteRequest) ToFilterSpec() reporte.FilterSpec {
	campos := make(map[string]reporte.FiltroCampo, len(r.Campos))
	for nombre, c := range r.Campos {
		campos[nombre] = reporte.FiltroCampo{
			Op:     reporte.Operador(c.Op),
			Valor1: c.Valor1,
			Valor2: c.Valor2,
		}
	}
	return reporte.FilterSpec{
		Todos:             r.Todos,
		Codigos:           r.Codigos,
		CodigosMovimiento: r.CodigosMovimiento,
		Fechas:            reporte.RangoFechas{Desde: r.FechaDesde, Hasta: r.FechaHasta},
		Campos:            campos,
		Stock: reporte.FiltroCampo{
			Op:     reporte.Operador(r.Stock.Op),
			Valor1: r.Stock.Valor1,
			Valor2: r.Stock.Valor2,
		},
		LimiteStock: r.LimiteStock,
	}
}

// ReporteGenerado PDF listo para descargar.
type ReporteGenerado struct {
	NombreArchivo string
	Contenido     []byte
}
