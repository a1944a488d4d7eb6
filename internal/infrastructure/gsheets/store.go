// Package gsheets implementa el almacén de hojas contra la API v4 de Google
// Sheets. Es el driver de producción: cada método es una petición HTTP
// independiente y todo error remoto se envuelve con la operación y el rango
// que fallaron.
package gsheets

import (
	"context"
	"fmt"
	"sort"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/abelfynine/inventario-api/internal/domain"
)

// Store adaptador de Google Sheets.
type Store struct {
	srv           *sheets.Service
	spreadsheetID string
}

// NewStore crea el servicio autenticado con la cuenta de servicio del archivo
// de credenciales y lo ata al libro indicado.
func NewStore(ctx context.Context, spreadsheetID, credentialsFile string) (*Store, error) {
	srv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creando servicio de sheets: %w", err)
	}
	return &Store{srv: srv, spreadsheetID: spreadsheetID}, nil
}

// GetRange lee el rango y devuelve las filas como texto plano.
func (s *Store) GetRange(ctx context.Context, rango string) ([][]string, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, rango).
		ValueRenderOption("FORMATTED_VALUE").Context(ctx).Do()
	if err != nil {
		return nil, domain.NewRemoteError("get", rango, err)
	}
	filas := make([][]string, 0, len(resp.Values))
	for _, fila := range resp.Values {
		celdas := make([]string, 0, len(fila))
		for _, v := range fila {
			celdas = append(celdas, fmt.Sprint(v))
		}
		filas = append(filas, celdas)
	}
	return filas, nil
}

// UpdateRange escribe los valores tal cual, sin interpretación de fórmulas.
func (s *Store) UpdateRange(ctx context.Context, rango string, valores [][]string) error {
	vr := &sheets.ValueRange{Values: aInterfaces(valores)}
	_, err := s.srv.Spreadsheets.Values.Update(s.spreadsheetID, rango, vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return domain.NewRemoteError("update", rango, err)
	}
	return nil
}

// AppendRow agrega la fila después de la última fila con datos de la tabla.
func (s *Store) AppendRow(ctx context.Context, rango string, fila []string) error {
	vr := &sheets.ValueRange{Values: aInterfaces([][]string{fila})}
	_, err := s.srv.Spreadsheets.Values.Append(s.spreadsheetID, rango, vr).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return domain.NewRemoteError("append", rango, err)
	}
	return nil
}

// DeleteRows borra las filas indicadas (índices absolutos base 1) con un
// batchUpdate de deleteDimension, en orden descendente para que los índices
// no se desplacen entre borrados.
func (s *Store) DeleteRows(ctx context.Context, hoja string, filas []int) error {
	sheetID, err := s.sheetID(ctx, hoja)
	if err != nil {
		return err
	}
	orden := append([]int(nil), filas...)
	sort.Sort(sort.Reverse(sort.IntSlice(orden)))

	solicitudes := make([]*sheets.Request, 0, len(orden))
	for _, n := range orden {
		solicitudes = append(solicitudes, &sheets.Request{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(n - 1), // la API usa índices base 0
					EndIndex:   int64(n),
				},
			},
		})
	}
	_, err = s.srv.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: solicitudes,
	}).Context(ctx).Do()
	if err != nil {
		return domain.NewRemoteError("delete", hoja, err)
	}
	return nil
}

// ListSheets devuelve los títulos de las hojas del libro.
func (s *Store) ListSheets(ctx context.Context) ([]string, error) {
	libro, err := s.srv.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, domain.NewRemoteError("list", s.spreadsheetID, err)
	}
	titulos := make([]string, 0, len(libro.Sheets))
	for _, h := range libro.Sheets {
		titulos = append(titulos, h.Properties.Title)
	}
	return titulos, nil
}

// CreateSheet crea una hoja nueva con ese título.
func (s *Store) CreateSheet(ctx context.Context, titulo string) error {
	_, err := s.srv.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: titulo},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return domain.NewRemoteError("create", titulo, err)
	}
	return nil
}

// sheetID resuelve el id numérico de la hoja por su título.
func (s *Store) sheetID(ctx context.Context, titulo string) (int64, error) {
	libro, err := s.srv.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, domain.NewRemoteError("get", titulo, err)
	}
	for _, h := range libro.Sheets {
		if h.Properties.Title == titulo {
			return h.Properties.SheetId, nil
		}
	}
	return 0, domain.NewRemoteError("get", titulo, fmt.Errorf("hoja %q no existe en el libro", titulo))
}

func aInterfaces(filas [][]string) [][]interface{} {
	out := make([][]interface{}, len(filas))
	for i, fila := range filas {
		out[i] = make([]interface{}, len(fila))
		for j, v := range fila {
			out[i][j] = v
		}
	}
	return out
}
