package database

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	erroresapp "github.com/VozAtivaCX/api-dashboard/internal/errores"
)

func abridorMemoria() Abridor {
	return func() (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	}
}

func TestObtenerConConexionViva(t *testing.T) {
	m := Conectar(abridorMemoria(), Reintentos{Maximos: 0})

	db, err := m.Obtener()
	require.NoError(t, err)
	require.NotNil(t, db)
}

func TestReintentosAgotados(t *testing.T) {
	intentos := 0
	abrir := func() (*gorm.DB, error) {
		intentos++
		return nil, errors.New("store caído")
	}

	m := Conectar(abrir, Reintentos{Maximos: 2})
	require.Equal(t, 3, intentos, "intento inicial más dos reintentos")

	_, err := m.Obtener()
	var conexion *erroresapp.ErrorConexionNoDisponible
	require.ErrorAs(t, err, &conexion)
	require.Equal(t, 6, intentos, "Obtener repite el ciclo completo")
}

func TestObtenerReconecta(t *testing.T) {
	intentos := 0
	memoria := abridorMemoria()
	abrir := func() (*gorm.DB, error) {
		intentos++
		if intentos == 1 {
			return nil, errors.New("store caído")
		}
		return memoria()
	}

	// La conexión inicial falla y el handle queda nulo.
	m := Conectar(abrir, Reintentos{Maximos: 0})
	require.Equal(t, 1, intentos)

	// La primera operación reconecta de forma sincrónica.
	db, err := m.Obtener()
	require.NoError(t, err)
	require.NotNil(t, db)
	require.Equal(t, 2, intentos)

	// Con handle vivo no se vuelve a marcar.
	_, err = m.Obtener()
	require.NoError(t, err)
	require.Equal(t, 2, intentos)
}

func TestMigrar(t *testing.T) {
	type fila struct {
		ID     uint   `gorm:"primaryKey"`
		Nombre string `gorm:"not null"`
	}

	m := Conectar(abridorMemoria(), Reintentos{Maximos: 0})
	require.NoError(t, m.Migrar(&fila{}))

	db, err := m.Obtener()
	require.NoError(t, err)
	require.True(t, db.Migrator().HasTable(&fila{}))
}

func TestMigrarSinConexion(t *testing.T) {
	abrir := func() (*gorm.DB, error) { return nil, errors.New("store caído") }
	m := Conectar(abrir, Reintentos{Maximos: 0})

	err := m.Migrar(&struct{ ID uint }{})
	var conexion *erroresapp.ErrorConexionNoDisponible
	require.ErrorAs(t, err, &conexion)
}
