package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Appwrite AppwriteConfig
	Auth     AuthConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Timezone string // zona usada para "hoy" en el dashboard, ej. Asia/Kolkata
	LogLevel string
}

// Location devuelve la zona horaria configurada; si no es válida usa time.Local.
func (c AppConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// AppwriteConfig identificadores del proyecto Appwrite. Se tratan como constantes opacas.
type AppwriteConfig struct {
	Endpoint               string // ej. https://cloud.appwrite.io/v1
	ProjectID              string
	APIKey                 string
	DatabaseID             string
	OrderTableID           string
	ProductTableID         string
	ProductCategoryTableID string
	HeaderCategoryTableID  string
	BodyCategoryTableID    string
	CarouselTableID        string
	BucketID               string
	NotificationFunctionID string
	TimeoutSeconds         int
}

// Timeout devuelve el timeout del cliente HTTP hacia Appwrite.
func (c AppwriteConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// AuthConfig reglas de autorización de la consola.
type AuthConfig struct {
	AdminLabel string // label de Appwrite que habilita el acceso
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// RedisConfig conexión al Redis que guarda las sesiones de administradores.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr devuelve host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CatalogConfig parámetros del listado incremental de productos.
type CatalogConfig struct {
	PageSize int
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

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, APPWRITE_ENDPOINT, JWT_SECRET, etc.
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
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "rasan-admin"),
			Timezone: getString(v, "APP_TIMEZONE", "Asia/Kolkata"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Appwrite: AppwriteConfig{
			Endpoint:               strings.TrimRight(getString(v, "APPWRITE_ENDPOINT", "https://cloud.appwrite.io/v1"), "/"),
			ProjectID:              getString(v, "APPWRITE_PROJECT_ID", ""),
			APIKey:                 getString(v, "APPWRITE_API_KEY", ""),
			DatabaseID:             getString(v, "APPWRITE_DATABASE_ID", ""),
			OrderTableID:           getString(v, "APPWRITE_ORDER_ID", ""),
			ProductTableID:         getString(v, "APPWRITE_PRODUCTS_ID", ""),
			ProductCategoryTableID: getString(v, "APPWRITE_PRODUCTS_CATEGORY_ID", ""),
			HeaderCategoryTableID:  getString(v, "APPWRITE_HEADER_CATEGORY_ID", ""),
			BodyCategoryTableID:    getString(v, "APPWRITE_BODY_CATEGORY_ID", ""),
			CarouselTableID:        getString(v, "APPWRITE_CROUSAL_ID", ""),
			BucketID:               getString(v, "APPWRITE_BUCKET_ID", ""),
			NotificationFunctionID: getString(v, "APPWRITE_NOTIFICATION_FUNCTION_ID", ""),
			TimeoutSeconds:         getInt(v, "APPWRITE_TIMEOUT_SECONDS", 30),
		},
		Auth: AuthConfig{
			AdminLabel: getString(v, "ADMIN_LABEL", "AdminMart"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "rasan-admin"),
		},
		Redis: RedisConfig{
			Host:     getString(v, "REDIS_HOST", "localhost"),
			Port:     getInt(v, "REDIS_PORT", 6379),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Catalog: CatalogConfig{
			PageSize: getInt(v, "PRODUCT_PAGE_SIZE", 9),
		},
	}
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
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
