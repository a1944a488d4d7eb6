package reporte

import (
	"fmt"
	"time"
)

// MarcadorSinDatos es la fila única que ocupa la tabla cuando el filtro no
// deja ninguna fila: el exportador la extiende a lo ancho de todas las columnas.
const MarcadorSinDatos = "No hay datos para mostrar"

// SinDato se muestra en celdas no numéricas vacías.
const SinDato = "Sin dato"

// Titulos y columnas por tipo de reporte.
var (
	columnasInventario = []string{"Código", "Descripción", "Existencias", "Entradas", "Salidas", "Stock"}
	columnasMovimiento = []string{"N° Factura", "Fecha", "Código", "Descripción", "Cantidad"}
)

// Titulo devuelve el título del documento.
func Titulo(tipo Tipo) string {
	switch tipo {
	case TipoEntradas:
		return "Reporte de Entradas"
	case TipoSalidas:
		return "Reporte de Salidas"
	default:
		return "Reporte de Inventario"
	}
}

// Columnas devuelve los encabezados de la tabla del reporte.
func Columnas(tipo Tipo) []string {
	if tipo.EsMovimiento() {
		return columnasMovimiento
	}
	return columnasInventario
}

// Cuerpo convierte las filas filtradas en filas de presentación:
//   - fechas ISO reformateadas a DD-MM-YYYY ("Sin fecha" si falta),
//   - columnas numéricas vacías como "0",
//   - columnas de texto vacías como "Sin dato",
//   - sin filas: una única fila marcadora.
func Cuerpo(filas [][]string, tipo Tipo) [][]string {
	if len(filas) == 0 {
		return [][]string{{MarcadorSinDatos}}
	}
	out := make([][]string, 0, len(filas))
	for _, f := range filas {
		out = append(out, filaPresentacion(f, tipo))
	}
	return out
}

func filaPresentacion(fila []string, tipo Tipo) []string {
	numCols := numColsInventario
	if tipo.EsMovimiento() {
		numCols = numColsMovimiento
	}
	out := make([]string, numCols)
	for i := 0; i < numCols; i++ {
		v := celda(fila, i)
		switch {
		case tipo.EsMovimiento() && i == idxFecha:
			if v == "" {
				out[i] = "Sin fecha"
			} else {
				out[i] = FechaLegible(v)
			}
		case esColumnaNumerica(i, tipo):
			if v == "" {
				out[i] = "0"
			} else {
				out[i] = v
			}
		default:
			if v == "" {
				out[i] = SinDato
			} else {
				out[i] = v
			}
		}
	}
	return out
}

func esColumnaNumerica(idx int, tipo Tipo) bool {
	if tipo.EsMovimiento() {
		return idx == idxCantidadMov
	}
	return idx >= idxExistencias && idx <= idxStock
}

// meses en texto para el nombre del archivo
var meses = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// etiquetas de tipo para el nombre del archivo
func etiquetaTipo(tipo Tipo) string {
	switch tipo {
	case TipoEntradas:
		return "Entradas"
	case TipoSalidas:
		return "Salidas"
	default:
		return "Inventario"
	}
}

// NombreArchivo construye el nombre determinista del PDF a partir del tipo y
// el instante de generación: Inventario_02-septiembre-2026-15_04_05.pdf
func NombreArchivo(tipo Tipo, t time.Time) string {
	return fmt.Sprintf("%s_%02d-%s-%d-%02d_%02d_%02d.pdf",
		etiquetaTipo(tipo),
		t.Day(), meses[t.Month()-1], t.Year(),
		t.Hour(), t.Minute(), t.Second(),
	)
}
