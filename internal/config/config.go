// Package config carga la configuración de la aplicación desde el entorno.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/VozAtivaCX/api-dashboard/internal/errores"
)

// Config reúne todo lo que la aplicación lee del entorno.
type Config struct {
	// DatabaseURL y DatabaseAuthToken son obligatorios: sin ellos no hay
	// conexión posible y el arranque aborta.
	DatabaseURL       string
	DatabaseAuthToken string

	// Credenciales OAuth consumidas por el frontend; el core no las usa.
	GoogleClientID     string
	GoogleClientSecret string

	Puerto string

	// Política de reintentos de conexión.
	MaxReintentos   int
	EsperaReintento time.Duration
}

// Cargar lee .env si existe y arma la configuración. Devuelve
// ErrorConfiguracion si falta alguna variable obligatoria.
func Cargar() (*Config, error) {
	// .env es opcional; en producción las variables vienen del entorno real.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DatabaseAuthToken:  os.Getenv("DATABASE_AUTH_TOKEN"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		Puerto:             os.Getenv("PORT"),
		MaxReintentos:      3,
		EsperaReintento:    5 * time.Second,
	}

	if cfg.DatabaseURL == "" {
		return nil, &errores.ErrorConfiguracion{Variable: "DATABASE_URL"}
	}
	if cfg.DatabaseAuthToken == "" {
		return nil, &errores.ErrorConfiguracion{Variable: "DATABASE_AUTH_TOKEN"}
	}

	if cfg.Puerto == "" {
		cfg.Puerto = "8080"
	}
	if v := os.Getenv("DB_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxReintentos = n
		}
	}
	if v := os.Getenv("DB_RETRY_WAIT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.EsperaReintento = time.Duration(n) * time.Second
		}
	}

	// Nunca registrar el valor del token, solo su presencia.
	log.Info().
		Str("database_url", cfg.DatabaseURL).
		Bool("auth_token_presente", cfg.DatabaseAuthToken != "").
		Bool("google_client_id_presente", cfg.GoogleClientID != "").
		Bool("google_client_secret_presente", cfg.GoogleClientSecret != "").
		Msg("configuración cargada")

	return cfg, nil
}

// Presencia describe qué variables están definidas sin exponer valores.
// La usa el endpoint de salud.
func (c *Config) Presencia() map[string]string {
	marca := func(presente bool) string {
		if presente {
			return "configurado (oculto)"
		}
		return "no configurado"
	}
	return map[string]string{
		"DATABASE_URL":         marca(c.DatabaseURL != ""),
		"DATABASE_AUTH_TOKEN":  marca(c.DatabaseAuthToken != ""),
		"GOOGLE_CLIENT_ID":     marca(c.GoogleClientID != ""),
		"GOOGLE_CLIENT_SECRET": marca(c.GoogleClientSecret != ""),
	}
}
