// Package reporte orquesta la generación de reportes PDF: lee la hoja,
// aplica el motor de filtrado y entrega el documento al generador.
package reporte

import (
	"context"
	"time"

	"github.com/abelfynine/inventario-api/internal/application/dto"
	dominv "github.com/abelfynine/inventario-api/internal/domain/inventario"
	domrep "github.com/abelfynine/inventario-api/internal/domain/reporte"
	"github.com/abelfynine/inventario-api/internal/domain/repository"
	"github.com/abelfynine/inventario-api/pkg/logger"
)

// UseCase caso de uso de reportes. reloj permite fijar el instante en tests.
type UseCase struct {
	store repository.HojaStore
	gen   GeneradorPDF
	log   *logger.Logger
	reloj func() time.Time
}

// NewUseCase construye el caso de uso con el reloj del sistema.
func NewUseCase(store repository.HojaStore, gen GeneradorPDF, log *logger.Logger) *UseCase {
	return &UseCase{store: store, gen: gen, log: log, reloj: time.Now}
}

// ConReloj reemplaza la fuente de tiempo (tests).
func (uc *UseCase) ConReloj(reloj func() time.Time) *UseCase {
	uc.reloj = reloj
	return uc
}

// Generar lee las filas del tipo pedido, filtra según la especificación y
// devuelve el PDF con su nombre de archivo. Las filas de inventario se
// normalizan antes de filtrar para que el stock derivado esté al día aunque
// la hoja tenga celdas vacías o basura.
func (uc *UseCase) Generar(ctx context.Context, tipo domrep.Tipo, spec domrep.FilterSpec) (*dto.ReporteGenerado, error) {
	filas, err := uc.store.GetRange(ctx, rangoDe(tipo))
	if err != nil {
		return nil, err
	}
	if !tipo.EsMovimiento() {
		for i, f := range filas {
			filas[i] = dominv.NormalizarFila(f).Fila()
		}
	}

	filtradas := domrep.Aplicar(filas, spec, tipo)
	doc := DocumentoReporte{
		Titulo:   domrep.Titulo(tipo),
		Filtros:  domrep.Resumen(spec, tipo),
		Columnas: domrep.Columnas(tipo),
		Filas:    domrep.Cuerpo(filtradas, tipo),
	}

	contenido, err := uc.gen.Generar(ctx, doc)
	if err != nil {
		return nil, err
	}
	nombre := domrep.NombreArchivo(tipo, uc.reloj())
	uc.log.Info().Str("tipo", string(tipo)).Int("filas", len(filtradas)).
		Str("archivo", nombre).Msg("reporte generado")
	return &dto.ReporteGenerado{NombreArchivo: nombre, Contenido: contenido}, nil
}

func rangoDe(tipo domrep.Tipo) string {
	switch tipo {
	case domrep.TipoEntradas:
		return repository.RangoEntradas
	case domrep.TipoSalidas:
		return repository.RangoSalidas
	default:
		return repository.RangoInventario
	}
}
