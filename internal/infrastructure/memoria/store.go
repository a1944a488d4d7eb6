// Package memoria implementa el almacén de hojas en memoria. Respeta la misma
// semántica de rangos A1 que los adaptadores remotos; se usa en tests y con el
// driver "memoria" para correr la API sin credenciales.
package memoria

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/abelfynine/inventario-api/internal/domain"
	"github.com/abelfynine/inventario-api/internal/domain/repository"
)

// Store guarda cada hoja como su matriz completa de filas, encabezado
// incluido (la fila 1 del rango A1 es hojas[titulo][0]).
type Store struct {
	mu    sync.RWMutex
	hojas map[string][][]string
	orden []string
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{hojas: make(map[string][][]string)}
}

// Sembrar carga una hoja completa (encabezado incluido), creándola si no
// existe. Pensado para armar escenarios en tests.
func (s *Store) Sembrar(titulo string, filas [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hojas[titulo]; !ok {
		s.orden = append(s.orden, titulo)
	}
	copia := make([][]string, len(filas))
	for i, f := range filas {
		copia[i] = append([]string(nil), f...)
	}
	s.hojas[titulo] = copia
}

// Hoja devuelve una copia de la matriz completa de la hoja (tests).
func (s *Store) Hoja(titulo string) [][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	filas := s.hojas[titulo]
	copia := make([][]string, len(filas))
	for i, f := range filas {
		copia[i] = append([]string(nil), f...)
	}
	return copia
}

// GetRange devuelve las filas del rango sin filas vacías al final.
func (s *Store) GetRange(_ context.Context, rango string) ([][]string, error) {
	r, err := repository.ParsearRango(rango)
	if err != nil {
		return nil, domain.NewRemoteError("get", rango, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	filas, ok := s.hojas[r.Hoja]
	if !ok {
		return nil, domain.NewRemoteError("get", rango, fmt.Errorf("hoja %q no existe", r.Hoja))
	}

	desde := 1
	if r.FilaInicio > 0 {
		desde = r.FilaInicio
	}
	hasta := len(filas)
	if r.FilaFin > 0 && r.FilaFin < hasta {
		hasta = r.FilaFin
	}
	var out [][]string
	for n := desde; n <= hasta; n++ {
		fila := filas[n-1]
		var celdas []string
		for col := r.ColInicio; col <= colFinal(r, fila); col++ {
			if col-1 < len(fila) {
				celdas = append(celdas, fila[col-1])
			} else {
				celdas = append(celdas, "")
			}
		}
		out = append(out, recortarDerecha(celdas))
	}
	return recortarAbajo(out), nil
}

// UpdateRange escribe las filas empezando en la celda inicial del rango.
func (s *Store) UpdateRange(_ context.Context, rango string, valores [][]string) error {
	r, err := repository.ParsearRango(rango)
	if err != nil {
		return domain.NewRemoteError("update", rango, err)
	}
	if r.FilaInicio == 0 {
		r.FilaInicio = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	filas, ok := s.hojas[r.Hoja]
	if !ok {
		return domain.NewRemoteError("update", rango, fmt.Errorf("hoja %q no existe", r.Hoja))
	}
	for i, fila := range valores {
		n := r.FilaInicio + i
		for n > len(filas) {
			filas = append(filas, nil)
		}
		destino := filas[n-1]
		for j, v := range fila {
			col := r.ColInicio + j
			for col > len(destino) {
				destino = append(destino, "")
			}
			destino[col-1] = v
		}
		filas[n-1] = destino
	}
	s.hojas[r.Hoja] = filas
	return nil
}

// AppendRow agrega la fila después de la última fila con datos.
func (s *Store) AppendRow(_ context.Context, rango string, fila []string) error {
	r, err := repository.ParsearRango(rango)
	if err != nil {
		return domain.NewRemoteError("append", rango, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	filas, ok := s.hojas[r.Hoja]
	if !ok {
		return domain.NewRemoteError("append", rango, fmt.Errorf("hoja %q no existe", r.Hoja))
	}
	s.hojas[r.Hoja] = append(filas, append([]string(nil), fila...))
	return nil
}

// DeleteRows elimina filas por índice absoluto, de mayor a menor para que los
// índices no se desplacen entre borrados.
func (s *Store) DeleteRows(_ context.Context, hoja string, filasABorrar []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	filas, ok := s.hojas[hoja]
	if !ok {
		return domain.NewRemoteError("delete", hoja, fmt.Errorf("hoja %q no existe", hoja))
	}
	orden := append([]int(nil), filasABorrar...)
	sort.Sort(sort.Reverse(sort.IntSlice(orden)))
	for _, n := range orden {
		if n < 1 || n > len(filas) {
			return domain.NewRemoteError("delete", hoja, fmt.Errorf("fila %d fuera de rango", n))
		}
		filas = append(filas[:n-1], filas[n:]...)
	}
	s.hojas[hoja] = filas
	return nil
}

// ListSheets devuelve los títulos en orden de creación.
func (s *Store) ListSheets(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.orden...), nil
}

// CreateSheet crea una hoja vacía.
func (s *Store) CreateSheet(_ context.Context, titulo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hojas[titulo]; ok {
		return domain.NewRemoteError("create", titulo, fmt.Errorf("hoja %q ya existe", titulo))
	}
	s.hojas[titulo] = nil
	s.orden = append(s.orden, titulo)
	return nil
}

// colFinal resuelve la columna final efectiva: la del rango, o el ancho de la
// fila cuando el rango es abierto.
func colFinal(r repository.Rango, fila []string) int {
	if r.ColFin > 0 {
		return r.ColFin
	}
	if len(fila) > r.ColInicio {
		return len(fila)
	}
	return r.ColInicio
}

func recortarDerecha(celdas []string) []string {
	fin := len(celdas)
	for fin > 0 && celdas[fin-1] == "" {
		fin--
	}
	return celdas[:fin]
}

func recortarAbajo(filas [][]string) [][]string {
	fin := len(filas)
	for fin > 0 && len(filas[fin-1]) == 0 {
		fin--
	}
	return filas[:fin]
}
