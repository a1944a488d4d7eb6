package reporte

import "context"

// DocumentoReporte es el documento ya resuelto que recibe el generador:
// texto de presentación y filas listas para pintar, sin lógica de filtrado.
type DocumentoReporte struct {
	Titulo   string
	Filtros  []string
	Columnas []string
	Filas    [][]string
}

// GeneradorPDF produce los bytes del PDF a partir del documento.
type GeneradorPDF interface {
	Generar(ctx context.Context, doc DocumentoReporte) ([]byte, error)
}
