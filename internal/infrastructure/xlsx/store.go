// Package xlsx implementa el almacén de hojas sobre un libro .xlsx local con
// excelize. Sirve para correr la API sin conexión a Google: mismo layout de
// hojas, persistido en disco después de cada escritura.
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/abelfynine/inventario-api/internal/domain"
	"github.com/abelfynine/inventario-api/internal/domain/repository"
)

// Store adaptador de libro local. El mutex serializa todas las operaciones:
// excelize no es seguro para uso concurrente sobre el mismo archivo.
type Store struct {
	mu   sync.Mutex
	file *excelize.File
	path string
}

// NewStore abre el libro en path, creándolo vacío si no existe.
func NewStore(path string) (*Store, error) {
	f, err := excelize.OpenFile(path)
	if errors.Is(err, os.ErrNotExist) {
		f = excelize.NewFile()
		if err := f.SaveAs(path); err != nil {
			return nil, fmt.Errorf("creando libro %s: %w", path, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("abriendo libro %s: %w", path, err)
	}
	return &Store{file: f, path: path}, nil
}

// Close libera el archivo subyacente.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// GetRange devuelve las filas del rango sin filas vacías al final.
func (s *Store) GetRange(_ context.Context, rango string) ([][]string, error) {
	r, err := repository.ParsearRango(rango)
	if err != nil {
		return nil, domain.NewRemoteError("get", rango, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	filas, err := s.file.GetRows(r.Hoja)
	if err != nil {
		return nil, domain.NewRemoteError("get", rango, err)
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
		colFin := r.ColFin
		if colFin == 0 || colFin > len(fila) {
			colFin = len(fila)
		}
		var celdas []string
		for col := r.ColInicio; col <= colFin; col++ {
			celdas = append(celdas, fila[col-1])
		}
		out = append(out, recortarDerecha(celdas))
	}
	return recortarAbajo(out), nil
}

// UpdateRange escribe las filas empezando en la celda inicial del rango y
// guarda el libro.
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
	for i, fila := range valores {
		for j, v := range fila {
			celda, err := excelize.CoordinatesToCellName(r.ColInicio+j, r.FilaInicio+i)
			if err != nil {
				return domain.NewRemoteError("update", rango, err)
			}
			if err := s.file.SetCellValue(r.Hoja, celda, v); err != nil {
				return domain.NewRemoteError("update", rango, err)
			}
		}
	}
	return s.guardar("update", rango)
}

// AppendRow agrega la fila después de la última fila con datos.
func (s *Store) AppendRow(_ context.Context, rango string, fila []string) error {
	r, err := repository.ParsearRango(rango)
	if err != nil {
		return domain.NewRemoteError("append", rango, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existentes, err := s.file.GetRows(r.Hoja)
	if err != nil {
		return domain.NewRemoteError("append", rango, err)
	}
	destino := len(existentes) + 1
	for j, v := range fila {
		celda, err := excelize.CoordinatesToCellName(j+1, destino)
		if err != nil {
			return domain.NewRemoteError("append", rango, err)
		}
		if err := s.file.SetCellValue(r.Hoja, celda, v); err != nil {
			return domain.NewRemoteError("append", rango, err)
		}
	}
	return s.guardar("append", rango)
}

// DeleteRows elimina filas por índice absoluto, de mayor a menor.
func (s *Store) DeleteRows(_ context.Context, hoja string, filas []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	orden := append([]int(nil), filas...)
	sort.Sort(sort.Reverse(sort.IntSlice(orden)))
	for _, n := range orden {
		if err := s.file.RemoveRow(hoja, n); err != nil {
			return domain.NewRemoteError("delete", hoja, err)
		}
	}
	return s.guardar("delete", hoja)
}

// ListSheets devuelve los títulos de las hojas del libro.
func (s *Store) ListSheets(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.GetSheetList(), nil
}

// CreateSheet crea una hoja nueva y guarda el libro.
func (s *Store) CreateSheet(_ context.Context, titulo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.file.NewSheet(titulo); err != nil {
		return domain.NewRemoteError("create", titulo, err)
	}
	return s.guardar("create", titulo)
}

func (s *Store) guardar(op, rango string) error {
	if err := s.file.Save(); err != nil {
		return domain.NewRemoteError(op, rango, err)
	}
	return nil
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
