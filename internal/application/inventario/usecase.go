// Package inventario orquesta las operaciones del inventario contra el
// almacén tabular. Cada operación compuesta es una secuencia de llamadas
// remotas independientes sin atomicidad entre pasos: un fallo intermedio deja
// estado parcial, que se registra y se devuelve sin rollback automático.
package inventario

import (
	"context"
	"sort"
	"strconv"

	"github.com/abelfynine/inventario-api/internal/application/dto"
	"github.com/abelfynine/inventario-api/internal/domain"
	"github.com/abelfynine/inventario-api/internal/domain/entity"
	dominv "github.com/abelfynine/inventario-api/internal/domain/inventario"
	"github.com/abelfynine/inventario-api/internal/domain/repository"
	"github.com/abelfynine/inventario-api/pkg/logger"
)

// encabezados de las hojas al crearlas
var (
	encabezadoInventario = []string{"Código", "Descripción", "Existencias", "Entradas", "Salidas", "Stock"}
	encabezadoMovimiento = []string{"N° Factura", "Fecha", "Código", "Descripción", "Cantidad"}
)

// UseCase casos de uso del inventario: listar, agregar, modificar y eliminar
// artículos, más el arranque de las hojas del libro.
type UseCase struct {
	store repository.HojaStore
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.HojaStore, log *logger.Logger) *UseCase {
	return &UseCase{store: store, log: log}
}

// InicializarHojas garantiza que existan Inventario, Entradas y Salidas,
// creando las faltantes con su fila de encabezado.
func (uc *UseCase) InicializarHojas(ctx context.Context) error {
	existentes, err := uc.store.ListSheets(ctx)
	if err != nil {
		return err
	}
	presentes := make(map[string]bool, len(existentes))
	for _, t := range existentes {
		presentes[t] = true
	}
	hojas := []struct {
		titulo     string
		encabezado []string
	}{
		{repository.HojaInventario, encabezadoInventario},
		{repository.HojaEntradas, encabezadoMovimiento},
		{repository.HojaSalidas, encabezadoMovimiento},
	}
	for _, h := range hojas {
		if presentes[h.titulo] {
			continue
		}
		if err := uc.store.CreateSheet(ctx, h.titulo); err != nil {
			return err
		}
		rango := h.titulo + "!A1:F1"
		if err := uc.store.UpdateRange(ctx, rango, [][]string{h.encabezado}); err != nil {
			return err
		}
		uc.log.Info().Str("hoja", h.titulo).Msg("hoja creada")
	}
	return nil
}

// Listar lee el inventario, normaliza cada fila (relleno a 6 columnas,
// numéricos ilegibles a 0, stock derivado) y persiste el bloque normalizado
// de vuelta empezando en A2, así la hoja queda saneada tras cada lectura.
func (uc *UseCase) Listar(ctx context.Context) ([]entity.Articulo, error) {
	filas, err := uc.store.GetRange(ctx, repository.RangoInventario)
	if err != nil {
		return nil, err
	}
	articulos := make([]entity.Articulo, 0, len(filas))
	bloque := make([][]string, 0, len(filas))
	for _, fila := range filas {
		a := dominv.NormalizarFila(fila)
		articulos = append(articulos, a)
		bloque = append(bloque, a.Fila())
	}
	if len(bloque) > 0 {
		if err := uc.store.UpdateRange(ctx, repository.HojaInventario+"!A2", bloque); err != nil {
			// La lectura ya está normalizada en memoria; se devuelve igual.
			uc.log.Warn().Err(err).Msg("no se pudo persistir el bloque normalizado")
		}
	}
	return articulos, nil
}

// Agregar da de alta un artículo. Pre-chequeo de duplicado por código antes
// de cualquier mutación; entradas, salidas y stock nacen vacíos.
func (uc *UseCase) Agregar(ctx context.Context, in dto.AgregarArticuloRequest) error {
	if in.Codigo == "" || in.Descripcion == "" || in.Existencia == "" {
		return domain.ErrInvalidInput
	}
	if !esEntero(in.Existencia) {
		return domain.ErrInvalidInput
	}
	codigos, err := uc.store.GetRange(ctx, repository.HojaInventario+"!A2:A")
	if err != nil {
		return err
	}
	for _, fila := range codigos {
		if len(fila) > 0 && fila[0] == in.Codigo {
			return domain.ErrDuplicate
		}
	}
	fila := []string{in.Codigo, in.Descripcion, in.Existencia, "", "", ""}
	return uc.store.AppendRow(ctx, repository.HojaInventario+"!A:F", fila)
}

// Modificar edita descripción y existencias de un artículo por código.
// El stock se re-deriva en la siguiente lectura normalizada.
func (uc *UseCase) Modificar(ctx context.Context, codigo string, in dto.ModificarArticuloRequest) error {
	if codigo == "" || in.Descripcion == "" || in.Existencia == "" {
		return domain.ErrInvalidInput
	}
	if !esEntero(in.Existencia) {
		return domain.ErrInvalidInput
	}
	filas, err := uc.store.GetRange(ctx, repository.RangoInventario)
	if err != nil {
		return err
	}
	idx := buscarPorClave(filas, codigo)
	if idx == -1 {
		return domain.ErrNotFound
	}
	numFila := idx + 2
	rango := repository.HojaInventario + "!A" + strconv.Itoa(numFila) + ":C" + strconv.Itoa(numFila)
	return uc.store.UpdateRange(ctx, rango, [][]string{{codigo, in.Descripcion, in.Existencia}})
}

// Eliminar borra un artículo y, en cascada, todos los movimientos que
// referencian su código en Entradas y Salidas. El borrado de cada libro es
// una llamada remota independiente: si falla a mitad quedan libros podados y
// el artículo todavía presente (punto de fallo parcial documentado).
func (uc *UseCase) Eliminar(ctx context.Context, codigo string) error {
	if codigo == "" {
		return domain.ErrInvalidInput
	}
	filas, err := uc.store.GetRange(ctx, repository.RangoInventario)
	if err != nil {
		return err
	}
	idx := buscarPorClave(filas, codigo)
	if idx == -1 {
		return domain.ErrNotFound
	}

	for _, hoja := range []string{repository.HojaEntradas, repository.HojaSalidas} {
		if err := uc.eliminarMovimientosDe(ctx, hoja, codigo); err != nil {
			uc.log.Error().Err(err).Str("hoja", hoja).Str("codigo", codigo).
				Msg("cascada interrumpida: el artículo sigue en el inventario")
			return err
		}
	}
	return uc.store.DeleteRows(ctx, repository.HojaInventario, []int{idx + 2})
}

// eliminarMovimientosDe borra del libro las filas cuyo código (columna C)
// coincide, en orden descendente para no desplazar índices.
func (uc *UseCase) eliminarMovimientosDe(ctx context.Context, hoja, codigo string) error {
	filas, err := uc.store.GetRange(ctx, hoja+"!A2:F")
	if err != nil {
		return err
	}
	var borrar []int
	for i, fila := range filas {
		if len(fila) > 2 && fila[2] == codigo {
			borrar = append(borrar, i+2)
		}
	}
	if len(borrar) == 0 {
		return nil
	}
	sort.Sort(sort.Reverse(sort.IntSlice(borrar)))
	return uc.store.DeleteRows(ctx, hoja, borrar)
}

// buscarPorClave devuelve el índice (base 0) de la fila cuya columna A
// coincide, o -1.
func buscarPorClave(filas [][]string, clave string) int {
	for i, fila := range filas {
		if len(fila) > 0 && fila[0] == clave {
			return i
		}
	}
	return -1
}

// esEntero acepta solo dígitos, igual que la validación del formulario.
func esEntero(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
