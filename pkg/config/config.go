package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	JWT    JWTConfig
	Data   DataConfig
	Report ReportConfig
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

// JWTConfig configuración de JWT. Con Secret vacío los endpoints de reportes
// quedan públicos (modo desarrollo).
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// DataConfig rutas de los tres CSV normalizados que carga la ingesta.
type DataConfig struct {
	ItemsPath   string
	OutletsPath string
	SalesPath   string
}

// ReportConfig parámetros de los reportes.
type ReportConfig struct {
	TopItemsLimit int // límite del reporte top-items
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, JWT_SECRET, DATA_ITEMS_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "analitica-retail"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "analitica-retail"),
		},
		Data: DataConfig{
			ItemsPath:   getString(v, "DATA_ITEMS_PATH", "data/items.csv"),
			OutletsPath: getString(v, "DATA_OUTLETS_PATH", "data/outlets.csv"),
			SalesPath:   getString(v, "DATA_SALES_PATH", "data/sales.csv"),
		},
		Report: ReportConfig{
			TopItemsLimit: getInt(v, "REPORT_TOP_ITEMS_LIMIT", 5),
		},
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
