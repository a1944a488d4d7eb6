package inventario

import "github.com/abelfynine/inventario-api/internal/domain/entity"

// AplicarMovimiento suma delta al acumulado que corresponde al tipo de
// movimiento y vuelve a derivar el stock. delta puede ser negativo: se usa
// así al revertir un registro o al editar una cantidad a la baja.
//
// La fórmula de edición es idéntica para entradas y salidas porque ambas
// columnas guardan acumulados positivos; el signo vive en la derivación del
// stock (existencia + entradas - salidas), no en la columna.
func AplicarMovimiento(a entity.Articulo, tipo string, delta int) entity.Articulo {
	switch tipo {
	case entity.TipoEntrada:
		a.Entradas += delta
	case entity.TipoSalida:
		a.Salidas += delta
	}
	a.Stock = CalcularStock(a.Existencia, a.Entradas, a.Salidas)
	return a
}

// DeltaEdicion calcula el delta neto al editar la cantidad de un movimiento
// existente. Se calcula una sola vez y se aplica una sola vez para no contar
// doble: con acumulado 10 y edición 5 -> 2, el neto es -3 y el acumulado
// queda en 7.
func DeltaEdicion(cantidadAnterior, cantidadNueva int) int {
	return cantidadNueva - cantidadAnterior
}
