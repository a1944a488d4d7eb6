package repository

import (
	"fmt"
	"strconv"
	"strings"
)

// Rango es un rango A1 ya parseado. Columnas y filas son base 1; un cero
// significa "abierto" (sin límite), como en "Inventario!A2:F" o "Entradas!A:A".
type Rango struct {
	Hoja       string
	ColInicio  int
	FilaInicio int
	ColFin     int
	FilaFin    int
}

// ParsearRango interpreta un rango en notación A1 con nombre de hoja:
// "Inventario!A2:F", "Entradas!A:A", "Inventario!D5", "Salidas!A2:F10".
func ParsearRango(rango string) (Rango, error) {
	hoja, resto, ok := strings.Cut(rango, "!")
	if !ok || hoja == "" || resto == "" {
		return Rango{}, fmt.Errorf("rango %q: se espera la forma Hoja!A1:B2", rango)
	}
	r := Rango{Hoja: hoja}

	inicio, fin, tieneFin := strings.Cut(resto, ":")
	var err error
	if r.ColInicio, r.FilaInicio, err = parsearRef(inicio); err != nil {
		return Rango{}, fmt.Errorf("rango %q: %w", rango, err)
	}
	if tieneFin {
		if r.ColFin, r.FilaFin, err = parsearRef(fin); err != nil {
			return Rango{}, fmt.Errorf("rango %q: %w", rango, err)
		}
	} else {
		// Celda única: el fin coincide con el inicio.
		r.ColFin, r.FilaFin = r.ColInicio, r.FilaInicio
	}
	if r.ColInicio == 0 {
		return Rango{}, fmt.Errorf("rango %q: falta la columna inicial", rango)
	}
	return r, nil
}

// parsearRef descompone una referencia tipo "A2", "F" o "D5" en columna y fila
// (cero cuando el componente está ausente).
func parsearRef(ref string) (col, fila int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A') + 1
		i++
	}
	if i < len(ref) {
		fila, err = strconv.Atoi(ref[i:])
		if err != nil || fila < 1 {
			return 0, 0, fmt.Errorf("referencia %q inválida", ref)
		}
	}
	if col == 0 && fila == 0 {
		return 0, 0, fmt.Errorf("referencia %q vacía", ref)
	}
	return col, fila, nil
}

// LetraColumna devuelve la letra de una columna base 1 (1 -> "A", 27 -> "AA").
func LetraColumna(col int) string {
	var b []byte
	for col > 0 {
		col--
		b = append([]byte{byte('A' + col%26)}, b...)
		col /= 26
	}
	return string(b)
}

// CeldaRango construye el rango A1 de una celda única, p. ej. ("Inventario", 4, 7) -> "Inventario!D7".
func CeldaRango(hoja string, col, fila int) string {
	return fmt.Sprintf("%s!%s%d", hoja, LetraColumna(col), fila)
}

// FilaRango construye el rango A1 de una fila completa A..F, p. ej. ("Entradas", 5) -> "Entradas!A5:F5".
func FilaRango(hoja string, fila int) string {
	return fmt.Sprintf("%s!A%d:F%d", hoja, fila, fila)
}
