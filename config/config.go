package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config almacena toda la configuración de la API de entrenadores.
type Config struct {
	// General
	Port        string
	Environment string
	LogLevel    string

	// Base de datos (PostgreSQL)
	DatabaseURL     string
	DBTimeout       time.Duration
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	ShutdownTimeout time.Duration

	// Cache (Redis). Vacío desactiva el limitador de peticiones.
	RedisAddr    string
	CacheTimeout time.Duration

	// Seguridad (JWT)
	JWTSecretKey string
	TokenExpiry  time.Duration

	// Límite de intentos de inicio de sesión
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// CORS
	CORSAllowedOrigins []string
}

// IsProduction indica si la API corre en producción.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadConfig lee la configuración desde las variables de entorno.
// Devuelve error si falta una variable obligatoria.
func LoadConfig() (*Config, error) {
	env := getEnv("ENV", "development")

	// En desarrollo el nivel por defecto es debug.
	defaultLevel := "debug"
	if env == "production" {
		defaultLevel = "info"
	}

	secret, err := mustGetEnv("JWT_SECRET_KEY")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		// 1. General
		Port:        getEnv("PORT", "3000"),
		Environment: env,
		LogLevel:    getEnv("LOG_LEVEL", defaultLevel),

		// 2. Base de datos
		DatabaseURL:     databaseURL(),
		DBTimeout:       getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,
		DBMaxOpenConns:  getIntEnv("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:  getIntEnv("DB_MAX_IDLE_CONNS", 10),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT_SEC", 15) * time.Second,

		// 3. Cache
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		CacheTimeout: getDurationEnv("CACHE_TIMEOUT_SEC", 2) * time.Second,

		// 4. JWT
		JWTSecretKey: secret,
		TokenExpiry:  getDurationEnv("JWT_EXPIRY_MIN", 60) * time.Minute,

		// 5. Rate limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 10),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,

		// 6. CORS
		CORSAllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	return cfg, nil
}

// MigrationConfig es el subconjunto de la configuración que usa cmd/migrate.
type MigrationConfig struct {
	DatabaseURL string
}

// LoadMigrationConfig lee solo la conexión a la BD; no exige el secreto JWT.
func LoadMigrationConfig() *MigrationConfig {
	return &MigrationConfig{DatabaseURL: databaseURL()}
}

// databaseURL usa DATABASE_URL si existe; si no, compone la DSN con DB_HOST, DB_PORT, etc.
func databaseURL() string {
	if dsn := getEnv("DATABASE_URL", ""); dsn != "" {
		return dsn
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(getEnv("DB_USER", "postgres"), getEnv("DB_PASSWORD", "")),
		Host:   getEnv("DB_HOST", "localhost") + ":" + getEnv("DB_PORT", "5432"),
		Path:   "/" + getEnv("DB_NAME", "entrenadores"),
	}
	q := u.Query()
	q.Set("sslmode", getEnv("DB_SSLMODE", "disable"))
	u.RawQuery = q.Encode()

	return u.String()
}

// Funciones auxiliares

// getEnv lee la variable de entorno o devuelve un valor por defecto.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// mustGetEnv lee una variable obligatoria.
func mustGetEnv(key string) (string, error) {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value, nil
	}
	return "", fmt.Errorf("error de configuración: la variable de entorno %s debe estar definida", key)
}

// getDurationEnv lee un entero y lo devuelve como time.Duration (sin unidad).
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lee una variable numérica.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Aviso: el valor de %s ('%s') no es un entero válido. Se usa %d.", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getListEnv lee una lista separada por comas.
func getListEnv(key string, defaultValue []string) []string {
	valueStr := strings.TrimSpace(getEnv(key, ""))
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
