// Package movimientos orquesta los libros de Entradas y Salidas: registrar,
// modificar y eliminar movimientos con su actualización compensatoria sobre
// el acumulado del artículo. Cada operación compuesta es un plan de pasos
// remotos {leer, calcular, escribir} sin atomicidad: el punto de fallo
// parcial de cada una está documentado en el método.
package movimientos

import (
	"context"
	"strconv"

	"github.com/abelfynine/inventario-api/internal/application/dto"
	"github.com/abelfynine/inventario-api/internal/domain"
	"github.com/abelfynine/inventario-api/internal/domain/entity"
	dominv "github.com/abelfynine/inventario-api/internal/domain/inventario"
	"github.com/abelfynine/inventario-api/internal/domain/repository"
	"github.com/abelfynine/inventario-api/pkg/logger"
)

// UseCase casos de uso de los libros de movimientos.
type UseCase struct {
	store repository.HojaStore
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.HojaStore, log *logger.Logger) *UseCase {
	return &UseCase{store: store, log: log}
}

// hojaDe resuelve la hoja del libro según el tipo de movimiento.
func hojaDe(tipo string) (string, error) {
	switch tipo {
	case entity.TipoEntrada:
		return repository.HojaEntradas, nil
	case entity.TipoSalida:
		return repository.HojaSalidas, nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// columnaAcumulado devuelve la columna (base 1) del acumulado en Inventario:
// D para entradas, E para salidas.
func columnaAcumulado(tipo string) int {
	if tipo == entity.TipoEntrada {
		return 4
	}
	return 5
}

// Listar devuelve las filas del libro como movimientos.
func (uc *UseCase) Listar(ctx context.Context, tipo string) ([]entity.Movimiento, error) {
	hoja, err := hojaDe(tipo)
	if err != nil {
		return nil, err
	}
	filas, err := uc.store.GetRange(ctx, hoja+"!A2:F")
	if err != nil {
		return nil, err
	}
	movs := make([]entity.Movimiento, 0, len(filas))
	for _, f := range filas {
		movs = append(movs, entity.MovimientoDesdeFila(f))
	}
	return movs, nil
}

// Registrar asienta un movimiento y suma su cantidad al acumulado del
// artículo. Validación y pre-chequeos (factura duplicada en el libro, código
// existente en Inventario) ocurren antes de cualquier escritura, de modo que
// un rechazo nunca deja estado parcial. El plan de escritura es:
//
//	append fila al libro  →  update del acumulado en Inventario
//
// Si el segundo paso falla, el movimiento queda asentado sin conciliar; se
// registra y el error sube sin rollback (limitación aceptada del almacén).
func (uc *UseCase) Registrar(ctx context.Context, tipo string, in dto.RegistrarMovimientoRequest) error {
	hoja, err := hojaDe(tipo)
	if err != nil {
		return err
	}
	if in.NumFactura == "" || in.Fecha == "" || in.Codigo == "" || in.Descripcion == "" || in.Cantidad == "" {
		return domain.ErrInvalidInput
	}
	if !esEntero(in.Cantidad) {
		return domain.ErrInvalidInput
	}
	cantidad, _ := strconv.Atoi(in.Cantidad)
	if cantidad <= 0 {
		return domain.ErrInvalidInput
	}

	// Pre-chequeo: factura única dentro de su libro.
	facturas, err := uc.store.GetRange(ctx, hoja+"!A2:A")
	if err != nil {
		return err
	}
	for _, fila := range facturas {
		if len(fila) > 0 && fila[0] == in.NumFactura {
			return domain.ErrDuplicate
		}
	}

	// Pre-chequeo: el código debe existir en Inventario.
	invFilas, err := uc.store.GetRange(ctx, repository.RangoInventario)
	if err != nil {
		return err
	}
	idx := buscarPorClave(invFilas, in.Codigo)
	if idx == -1 {
		return domain.ErrNotFound
	}

	mov := entity.Movimiento{
		NumFactura:  in.NumFactura,
		Fecha:       in.Fecha,
		Codigo:      in.Codigo,
		Descripcion: in.Descripcion,
		Cantidad:    cantidad,
	}
	if err := uc.store.AppendRow(ctx, hoja+"!A:F", mov.Fila()); err != nil {
		return err
	}

	articulo := dominv.NormalizarFila(invFilas[idx])
	articulo = dominv.AplicarMovimiento(articulo, tipo, cantidad)
	if err := uc.actualizarAcumulado(ctx, tipo, idx+2, articulo); err != nil {
		uc.log.Error().Err(err).Str("factura", in.NumFactura).Str("codigo", in.Codigo).
			Msg("movimiento asentado pero acumulado sin conciliar")
		return err
	}
	return nil
}

// Modificar reemplaza fecha y cantidad de un movimiento y aplica una sola vez
// el delta neto (nueva - anterior) al acumulado del artículo. El plan es:
//
//	update del acumulado en Inventario  →  update de la fila del libro
//
// Si el segundo paso falla, el acumulado queda conciliado contra una cantidad
// que el libro aún no refleja; se registra y el error sube.
func (uc *UseCase) Modificar(ctx context.Context, tipo, numFactura string, in dto.ModificarMovimientoRequest) error {
	hoja, err := hojaDe(tipo)
	if err != nil {
		return err
	}
	if numFactura == "" || in.Fecha == "" || in.Cantidad == "" {
		return domain.ErrInvalidInput
	}
	if !esEntero(in.Cantidad) {
		return domain.ErrInvalidInput
	}
	nuevaCantidad, _ := strconv.Atoi(in.Cantidad)
	if nuevaCantidad <= 0 {
		return domain.ErrInvalidInput
	}

	filas, err := uc.store.GetRange(ctx, hoja+"!A2:F")
	if err != nil {
		return err
	}
	idx := buscarPorClave(filas, numFactura)
	if idx == -1 {
		return domain.ErrNotFound
	}
	actual := entity.MovimientoDesdeFila(filas[idx])

	invFilas, err := uc.store.GetRange(ctx, repository.RangoInventario)
	if err != nil {
		return err
	}
	invIdx := buscarPorClave(invFilas, actual.Codigo)
	if invIdx == -1 {
		return domain.ErrNotFound
	}

	// Delta neto calculado una sola vez para no contar doble.
	delta := dominv.DeltaEdicion(actual.Cantidad, nuevaCantidad)
	articulo := dominv.NormalizarFila(invFilas[invIdx])
	articulo = dominv.AplicarMovimiento(articulo, tipo, delta)
	if err := uc.actualizarAcumulado(ctx, tipo, invIdx+2, articulo); err != nil {
		return err
	}

	actual.Fecha = in.Fecha
	actual.Cantidad = nuevaCantidad
	rango := repository.FilaRango(hoja, idx+2)
	if err := uc.store.UpdateRange(ctx, rango, [][]string{actual.Fila()}); err != nil {
		uc.log.Error().Err(err).Str("factura", numFactura).
			Msg("acumulado conciliado pero fila del libro sin actualizar")
		return err
	}
	return nil
}

// Eliminar revierte la cantidad del movimiento sobre el acumulado del
// artículo y después borra la fila del libro. Si el borrado falla, el
// acumulado ya quedó revertido con el movimiento aún asentado; se registra y
// el error sube.
func (uc *UseCase) Eliminar(ctx context.Context, tipo, numFactura string) error {
	hoja, err := hojaDe(tipo)
	if err != nil {
		return err
	}
	if numFactura == "" {
		return domain.ErrInvalidInput
	}
	filas, err := uc.store.GetRange(ctx, hoja+"!A2:F")
	if err != nil {
		return err
	}
	idx := buscarPorClave(filas, numFactura)
	if idx == -1 {
		return domain.ErrNotFound
	}
	mov := entity.MovimientoDesdeFila(filas[idx])

	invFilas, err := uc.store.GetRange(ctx, repository.RangoInventario)
	if err != nil {
		return err
	}
	invIdx := buscarPorClave(invFilas, mov.Codigo)
	if invIdx == -1 {
		return domain.ErrNotFound
	}

	articulo := dominv.NormalizarFila(invFilas[invIdx])
	articulo = dominv.AplicarMovimiento(articulo, tipo, -mov.Cantidad)
	if err := uc.actualizarAcumulado(ctx, tipo, invIdx+2, articulo); err != nil {
		return err
	}

	if err := uc.store.DeleteRows(ctx, hoja, []int{idx + 2}); err != nil {
		uc.log.Error().Err(err).Str("factura", numFactura).
			Msg("acumulado revertido pero fila del libro sin borrar")
		return err
	}
	return nil
}

// actualizarAcumulado escribe el acumulado recalculado en la celda D o E de
// la fila del artículo.
func (uc *UseCase) actualizarAcumulado(ctx context.Context, tipo string, numFila int, a entity.Articulo) error {
	valor := a.Entradas
	if tipo == entity.TipoSalida {
		valor = a.Salidas
	}
	celda := repository.CeldaRango(repository.HojaInventario, columnaAcumulado(tipo), numFila)
	return uc.store.UpdateRange(ctx, celda, [][]string{{strconv.Itoa(valor)}})
}

func buscarPorClave(filas [][]string, clave string) int {
	for i, fila := range filas {
		if len(fila) > 0 && fila[0] == clave {
			return i
		}
	}
	return -1
}

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
