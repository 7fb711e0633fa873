package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Seed    SeedConfig
	Session SessionConfig
	Demo    DemoConfig
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

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// SeedConfig controla el generador de datos de demostración.
// RandomSeed fijo produce siempre el mismo dataset; 0 usa uno distinto por arranque.
type SeedConfig struct {
	RandomSeed int64
	Clients    int
	Sales      int
}

// SessionConfig ubicación del registro de sesión persistido (clave "user").
type SessionConfig struct {
	Path string // archivo JSON; vacío = .session.json en el directorio actual
}

// DemoConfig parámetros del modo demo.
// LoginDelayMS simula la latencia de red del login (el portal original usaba 1000ms fijos).
type DemoConfig struct {
	LoginDelayMS int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "portal-isp"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "demo-secret-no-usar-en-produccion"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "portal-isp"),
		},
		Seed: SeedConfig{
			RandomSeed: int64(getInt(v, "SEED_RANDOM_SEED", 1)),
			Clients:    getInt(v, "SEED_CLIENTS", 20),
			Sales:      getInt(v, "SEED_SALES", 5),
		},
		Session: SessionConfig{
			Path: getString(v, "SESSION_PATH", ".session.json"),
		},
		Demo: DemoConfig{
			LoginDelayMS: getInt(v, "LOGIN_DELAY_MS", 1000),
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
