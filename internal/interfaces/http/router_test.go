package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/abelfynine/inventario-api/internal/application/auth"
	"github.com/abelfynine/inventario-api/internal/application/inventario"
	"github.com/abelfynine/inventario-api/internal/application/movimientos"
	appreporte "github.com/abelfynine/inventario-api/internal/application/reporte"
	"github.com/abelfynine/inventario-api/internal/infrastructure/memoria"
	infrapdf "github.com/abelfynine/inventario-api/internal/infrastructure/pdf"
	apphttp "github.com/abelfynine/inventario-api/internal/interfaces/http"
	"github.com/abelfynine/inventario-api/pkg/logger"
)

// buildAPI arma la aplicación completa sobre el almacén en memoria.
func buildAPI(t *testing.T) (*fiber.App, *memoria.Store) {
	t.Helper()
	store := memoria.NewStore()
	store.Sembrar("Inventario", [][]string{
		{"Código", "Descripción", "Existencias", "Entradas", "Salidas", "Stock"},
		{"A1", "Tornillo", "10", "5", "3", "12"},
	})
	store.Sembrar("Entradas", [][]string{
		{"N° Factura", "Fecha", "Código", "Descripción", "Cantidad"},
		{"F-001", "2026-01-10", "A1", "Tornillo", "5"},
	})
	store.Sembrar("Salidas", [][]string{
		{"N° Factura", "Fecha", "Código", "Descripción", "Cantidad"},
	})

	log := logger.Nop()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewUseCase(
			auth.Credenciales{Usuario: "admin", PasswordHash: string(hash)},
			auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer},
		),
		InventarioUC: inventario.NewUseCase(store, log),
		MovimientoUC: movimientos.NewUseCase(store, log),
		ReporteUC:    appreporte.NewUseCase(store, infrapdf.NewMarotoReportGenerator(), log),
		JWTSecret:    testJWTSecret,
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, ruta, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, ruta, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func loginToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"usuario": "admin", "password": "admin123"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return "Bearer " + body["token"]
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujos completos contra la API
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_LoginYListarInventario(t *testing.T) {
	app, _ := buildAPI(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/inventario/", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Total     int `json:"total"`
		Articulos []struct {
			Codigo string `json:"codigo"`
			Stock  int    `json:"stock"`
		} `json:"articulos"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "A1", body.Articulos[0].Codigo)
	assert.Equal(t, 12, body.Articulos[0].Stock)
}

func TestAPI_RutaProtegidaSinTokenRetorna401(t *testing.T) {
	app, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodGet, "/api/inventario/", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_AgregarDuplicadoRetorna409(t *testing.T) {
	app, _ := buildAPI(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/inventario/", token,
		map[string]string{"codigo": "A1", "descripcion": "Otro", "existencia": "1"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAPI_RegistrarMovimientoDeCodigoInexistenteRetorna404(t *testing.T) {
	app, store := buildAPI(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/movimientos/entradas/", token,
		map[string]string{
			"num_factura": "F-900", "fecha": "2026-03-01",
			"codigo": "ZZ", "descripcion": "Nada", "cantidad": "2",
		})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	filas, err := store.GetRange(context.Background(), "Entradas!A2:F")
	require.NoError(t, err)
	assert.Len(t, filas, 1, "el libro queda intacto")
}

func TestAPI_TipoDeMovimientoDesconocidoRetorna400(t *testing.T) {
	app, _ := buildAPI(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/movimientos/traslados/", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ReportePDFDescarga(t *testing.T) {
	app, _ := buildAPI(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/reportes/inventario/pdf", token,
		map[string]interface{}{"todos": true})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")
}

func TestAPI_ReporteTipoInvalidoRetorna400(t *testing.T) {
	app, _ := buildAPI(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/reportes/ventas/pdf", token,
		map[string]interface{}{"todos": true})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_SessionConTokenActivo(t *testing.T) {
	app, _ := buildAPI(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/auth/session", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["activa"])
}
