package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Admin AdminConfig
	Store StoreConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT para la sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AdminConfig credenciales del usuario administrador (el único usuario de la app).
// PasswordHash es un hash bcrypt, nunca la contraseña en claro.
type AdminConfig struct {
	Usuario      string
	PasswordHash string
}

// Drivers de almacén soportados.
const (
	DriverGSheets = "gsheets" // Google Sheets (producción)
	DriverXLSX    = "xlsx"    // libro .xlsx local (desarrollo)
	DriverMemoria = "memoria" // en memoria (demos y pruebas)
)

// StoreConfig configuración del almacén tabular.
// Con DriverGSheets se requieren SpreadsheetID y CredentialsFile (service account JSON).
// Con DriverXLSX se usa XLSXPath.
type StoreConfig struct {
	Driver          string
	SpreadsheetID   string
	CredentialsFile string
	XLSXPath        string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "inventario-api"),
		},
		Admin: AdminConfig{
			Usuario:      getString(v, "ADMIN_USER", "admin"),
			PasswordHash: getString(v, "ADMIN_PASSWORD_HASH", ""),
		},
		Store: StoreConfig{
			Driver:          getString(v, "STORE_DRIVER", DriverXLSX),
			SpreadsheetID:   getString(v, "SHEETS_SPREADSHEET_ID", ""),
			CredentialsFile: getString(v, "SHEETS_CREDENTIALS_FILE", ""),
			XLSXPath:        getString(v, "XLSX_PATH", "inventario.xlsx"),
		},
	}

	if cfg.Store.Driver == DriverGSheets && cfg.Store.SpreadsheetID == "" {
		return nil, fmt.Errorf("config: STORE_DRIVER=gsheets requiere SHEETS_SPREADSHEET_ID")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
