// Package reporte implementa el motor de filtrado declarativo y el formato de
// presentación de los reportes PDF (inventario, entradas y salidas).
package reporte

import (
	"strconv"
	"strings"
)

// Tipo de reporte. Decide columnas, filtros permitidos y título.
type Tipo string

const (
	TipoInventario Tipo = "inventario"
	TipoEntradas   Tipo = "entradas"
	TipoSalidas    Tipo = "salidas"
)

// EsMovimiento indica si el reporte es de un libro de movimientos.
func (t Tipo) EsMovimiento() bool {
	return t == TipoEntradas || t == TipoSalidas
}

// Operadores de los filtros numéricos.
type Operador string

const (
	OpIgual      Operador = "equal"
	OpMayorIgual Operador = "gte"
	OpMenorIgual Operador = "lte"
	OpMayor      Operador = "gt"
	OpMenor      Operador = "lt"
	OpEntre      Operador = "between"

	// Operadores exclusivos del filtro de stock; usan el límite de stock
	// bajo configurado en la petición, no un operando.
	OpStockMinimo Operador = "stock_min"   // stock <= límite
	OpStockArriba Operador = "stock_above" // stock > límite
)

// FiltroCampo es un filtro numérico por campo: operador más uno o dos
// operandos en texto. Un filtro "between" sin ambos operandos es inerte (no
// se aplica); cualquier otro operador es inerte sin Valor1. Un operando
// presente pero ilegible no empareja ninguna fila (falla cerrado).
type FiltroCampo struct {
	Op     Operador
	Valor1 string
	Valor2 string
}

// inerte decide si el filtro se omite por operandos ausentes.
func (f FiltroCampo) inerte() bool {
	if f.Op == "" {
		return true
	}
	if f.Op == OpEntre {
		return f.Valor1 == "" || f.Valor2 == ""
	}
	return f.Valor1 == ""
}

// RangoFechas filtro por rango de fechas ISO (YYYY-MM-DD). La comparación
// lexicográfica de cadenas ISO es un orden total equivalente al cronológico.
type RangoFechas struct {
	Desde string
	Hasta string
}

// Campos numéricos filtrables por nombre.
const (
	CampoExistencias = "existencias" // inventario, col C
	CampoEntradas    = "entradas"    // inventario, col D
	CampoSalidas     = "salidas"     // inventario, col E
	CampoCantidad    = "cantidad"    // movimientos, col E
)

// ordenCamposInventario fija el orden determinista de aplicación.
var ordenCamposInventario = []string{CampoExistencias, CampoEntradas, CampoSalidas}

// FilterSpec describe declarativamente qué filas entran al reporte.
// Con Todos en true se ignora el resto y el reporte sale completo.
type FilterSpec struct {
	Todos bool

	// Codigos filtra por la columna clave (código de artículo en inventario,
	// n° de factura en movimientos). Vacío = sin restricción.
	Codigos []string

	// CodigosMovimiento filtra por el código de artículo dentro de un libro
	// de movimientos (columna C). Solo movimientos.
	CodigosMovimiento []string

	// Fechas solo aplica a movimientos.
	Fechas RangoFechas

	// Campos filtros numéricos por nombre de campo.
	Campos map[string]FiltroCampo

	// Stock filtro de la columna stock (solo inventario). stock_min y
	// stock_above usan LimiteStock; cualquier otro operador cae en la
	// lógica numérica genérica.
	Stock FiltroCampo

	// LimiteStock es el límite de stock bajo configurado por el usuario.
	LimiteStock int
}

// índices de columna por tipo de reporte (base 0)
const (
	idxClave          = 0
	idxFecha          = 1
	idxCodigoMov      = 2
	idxExistencias    = 2
	idxEntradasInv    = 3
	idxSalidasInv     = 4
	idxStock          = 5
	idxCantidadMov    = 4
	numColsInventario = 6
	numColsMovimiento = 5
)

// Aplicar filtra las filas según la especificación. No muta la entrada: con
// Todos devuelve una copia en el orden original. Los pasos se aplican en un
// orden fijo y componen como AND (estrechamiento secuencial).
func Aplicar(filas [][]string, spec FilterSpec, tipo Tipo) [][]string {
	resultado := make([][]string, len(filas))
	copy(resultado, filas)

	if spec.Todos {
		return resultado
	}

	// 1. Pertenencia por clave (código o n° factura, columna A).
	if len(spec.Codigos) > 0 {
		resultado = retener(resultado, func(f []string) bool {
			return contiene(spec.Codigos, celda(f, idxClave))
		})
	}

	if tipo.EsMovimiento() {
		// 2. Pertenencia por código de artículo (columna C).
		if len(spec.CodigosMovimiento) > 0 {
			resultado = retener(resultado, func(f []string) bool {
				return contiene(spec.CodigosMovimiento, strings.TrimSpace(celda(f, idxCodigoMov)))
			})
		}
		// 3. Rango de fechas (comparación lexicográfica ISO).
		if spec.Fechas.Desde != "" {
			resultado = retener(resultado, func(f []string) bool {
				return celda(f, idxFecha) >= spec.Fechas.Desde
			})
		}
		if spec.Fechas.Hasta != "" {
			resultado = retener(resultado, func(f []string) bool {
				return celda(f, idxFecha) <= spec.Fechas.Hasta
			})
		}
		// 4. Filtro numérico de cantidad.
		if cfg, ok := spec.Campos[CampoCantidad]; ok && !cfg.inerte() {
			resultado = retener(resultado, func(f []string) bool {
				return cumpleOperador(valorNumerico(f, idxCantidadMov), cfg)
			})
		}
		return resultado
	}

	// 4. Filtros numéricos de inventario, en orden fijo.
	for _, campo := range ordenCamposInventario {
		cfg, ok := spec.Campos[campo]
		if !ok || cfg.inerte() {
			continue
		}
		idx := indiceCampoInventario(campo)
		resultado = retener(resultado, func(f []string) bool {
			return cumpleOperador(valorNumerico(f, idx), cfg)
		})
	}

	// 5. Filtro de stock: modos exclusivos sobre el límite, o genérico.
	switch spec.Stock.Op {
	case OpStockMinimo:
		resultado = retener(resultado, func(f []string) bool {
			return valorNumerico(f, idxStock) <= spec.LimiteStock
		})
	case OpStockArriba:
		resultado = retener(resultado, func(f []string) bool {
			return valorNumerico(f, idxStock) > spec.LimiteStock
		})
	default:
		if !spec.Stock.inerte() {
			cfg := spec.Stock
			resultado = retener(resultado, func(f []string) bool {
				return cumpleOperador(valorNumerico(f, idxStock), cfg)
			})
		}
	}
	return resultado
}

// cumpleOperador evalúa valor contra el operador y sus operandos. Un operando
// requerido que no parsea como número no empareja (falla cerrado).
func cumpleOperador(valor int, cfg FiltroCampo) bool {
	a, okA := parseOperando(cfg.Valor1)
	switch cfg.Op {
	case OpIgual:
		return okA && valor == a
	case OpMayorIgual:
		return okA && valor >= a
	case OpMenorIgual:
		return okA && valor <= a
	case OpMayor:
		return okA && valor > a
	case OpMenor:
		return okA && valor < a
	case OpEntre:
		b, okB := parseOperando(cfg.Valor2)
		if !okA || !okB {
			return false
		}
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		return valor >= lo && valor <= hi
	default:
		return false
	}
}

func indiceCampoInventario(campo string) int {
	switch campo {
	case CampoExistencias:
		return idxExistencias
	case CampoEntradas:
		return idxEntradasInv
	case CampoSalidas:
		return idxSalidasInv
	default:
		return idxStock
	}
}

// valorNumerico lee la celda como entero; vacía o ilegible vale 0, igual que
// en la hoja normalizada.
func valorNumerico(fila []string, idx int) int {
	n, err := strconv.Atoi(strings.TrimSpace(celda(fila, idx)))
	if err != nil {
		return 0
	}
	return n
}

func parseOperando(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func celda(fila []string, idx int) string {
	if idx < len(fila) {
		return fila[idx]
	}
	return ""
}

func retener(filas [][]string, pred func([]string) bool) [][]string {
	out := filas[:0:0]
	for _, f := range filas {
		if pred(f) {
			out = append(out, f)
		}
	}
	return out
}

func contiene(conjunto []string, v string) bool {
	for _, c := range conjunto {
		if c == v {
			return true
		}
	}
	return false
}
