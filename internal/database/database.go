// Package database administra la conexión GORM al store y la migración
// del esquema.
package database

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/VozAtivaCX/api-dashboard/internal/config"
	"github.com/VozAtivaCX/api-dashboard/internal/errores"
)

// Reintentos es la política de reconexión: cantidad de reintentos después
// del primer intento y espera fija entre cada uno.
type Reintentos struct {
	Maximos int
	Espera  time.Duration
}

// Abridor abre un handle nuevo contra el store.
type Abridor func() (*gorm.DB, error)

// AbridorPostgres arma el DSN a partir de la configuración y abre la
// conexión PostgreSQL. El token de autenticación viaja como password y
// nunca se registra.
func AbridorPostgres(cfg *config.Config) Abridor {
	return func() (*gorm.DB, error) {
		var sslMode string
		if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
			sslMode = " sslmode=disable"
		}
		dsn := fmt.Sprintf("%s password=%s%s", cfg.DatabaseURL, cfg.DatabaseAuthToken, sslMode)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
		})
	}
}

// Manager es dueño del único handle compartido. Reemplaza al handle global
// mutable: se construye una vez, se inyecta en los handlers y serializa la
// reconexión con un mutex.
type Manager struct {
	mu       sync.Mutex
	db       *gorm.DB
	abrir    Abridor
	politica Reintentos
}

// Conectar crea el manager e intenta la conexión inicial. Si todos los
// intentos fallan el handle queda nulo y cada operación posterior va a
// reintentar vía Obtener.
func Conectar(abrir Abridor, politica Reintentos) *Manager {
	m := &Manager{abrir: abrir, politica: politica}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.conectar(); err != nil {
		log.Error().Err(err).Msg("conexión inicial a la base de datos fallida")
	}
	return m
}

// Obtener devuelve el handle vivo. Si no hay handle intenta reconectar de
// forma sincrónica antes de fallar con ErrorConexionNoDisponible.
func (m *Manager) Obtener() (*gorm.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db != nil {
		return m.db, nil
	}
	log.Warn().Msg("la conexión a la base de datos no está disponible, reintentando")
	if err := m.conectar(); err != nil {
		return nil, &errores.ErrorConexionNoDisponible{Err: err}
	}
	return m.db, nil
}

// conectar ejecuta el ciclo de intentos. Debe llamarse con el mutex tomado.
func (m *Manager) conectar() error {
	var ultimo error
	for intento := 0; intento <= m.politica.Maximos; intento++ {
		if intento > 0 {
			log.Info().
				Int("intento", intento).
				Int("maximos", m.politica.Maximos).
				Msg("reintentando conexión a la base de datos")
			time.Sleep(m.politica.Espera)
		}
		db, err := m.abrir()
		if err == nil {
			m.db = db
			log.Info().Msg("cliente de base de datos inicializado correctamente")
			return nil
		}
		ultimo = err
		log.Error().Err(err).Int("intento", intento).Msg("error al inicializar el cliente de base de datos")
	}
	log.Error().Msg("se alcanzó el número máximo de intentos de conexión")
	m.db = nil
	return ultimo
}

// Migrar crea las tablas ausentes para los modelos indicados. Se invoca una
// sola vez en el arranque; un fallo acá es fatal para la operación que lo
// disparó.
func (m *Manager) Migrar(modelos ...interface{}) error {
	db, err := m.Obtener()
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(modelos...); err != nil {
		return &errores.ErrorEsquema{Err: err}
	}
	log.Info().Msg("verificación de tablas completada")
	return nil
}
