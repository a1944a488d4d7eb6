// Package inventario contiene la lógica pura del inventario: normalización
// de filas crudas de la hoja y conciliación de los acumulados de entradas y
// salidas. Ningún I/O: los casos de uso leen y escriben el almacén.
package inventario

import (
	"strconv"
	"strings"

	"github.com/abelfynine/inventario-api/internal/domain/entity"
)

// columnas de la hoja Inventario (base 0)
const (
	colCodigo      = 0
	colDescripcion = 1
	colExistencia  = 2
	colEntradas    = 3
	colSalidas     = 4
	colStock       = 5
)

// NormalizarFila convierte una fila cruda (hasta 6 campos dispersos) en un
// Articulo. Rellena campos faltantes con vacío, interpreta las columnas
// numéricas (ilegible o ausente -> 0) y deriva el stock. Función pura: quien
// llama decide si persiste la fila normalizada.
func NormalizarFila(fila []string) entity.Articulo {
	f := make([]string, 6)
	copy(f, fila)

	existencia := parseEntero(f[colExistencia])
	entradas := parseEntero(f[colEntradas])
	salidas := parseEntero(f[colSalidas])

	return entity.Articulo{
		Codigo:      f[colCodigo],
		Descripcion: f[colDescripcion],
		Existencia:  existencia,
		Entradas:    entradas,
		Salidas:     salidas,
		Stock:       CalcularStock(existencia, entradas, salidas),
	}
}

// CalcularStock deriva el stock. Puede ser negativo: un stock negativo es un
// estado válido que señala sobreasignación y se muestra sin recortar.
func CalcularStock(existencia, entradas, salidas int) int {
	return existencia + entradas - salidas
}

func parseEntero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
