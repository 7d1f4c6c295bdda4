package usuario

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/VozAtivaCX/api-dashboard/internal/errores"
)

func abrirDBPrueba(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&Usuario{}))
	return db
}

func TestCrearConContadoresEnCero(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository()

	u := Usuario{Nombre: "Ana", Email: "ana@vozativa.cx", Contrasena: "hash"}
	require.NoError(t, repo.Crear(db, &u))
	require.NotZero(t, u.ID)

	guardado, err := repo.BuscarPorID(db, u.ID)
	require.NoError(t, err)
	require.Equal(t, 0, guardado.Respuestas)
	require.Equal(t, 0, guardado.NPS)
	require.Equal(t, 0, guardado.CSAT)
	require.Equal(t, 0, guardado.RD)
}

func TestBuscarPorIDAusente(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository()

	_, err := repo.BuscarPorID(db, 123)
	require.ErrorIs(t, err, errores.ErrNoEncontrado)
}

func TestBuscarPorEmail(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository()

	u := Usuario{Nombre: "Ana", Email: "ana@vozativa.cx", Contrasena: "hash"}
	require.NoError(t, repo.Crear(db, &u))

	encontrado, err := repo.BuscarPorEmail(db, "ana@vozativa.cx")
	require.NoError(t, err)
	require.NotNil(t, encontrado)
	require.Equal(t, u.ID, encontrado.ID)

	// La ausencia es un resultado, no un error.
	ausente, err := repo.BuscarPorEmail(db, "nadie@vozativa.cx")
	require.NoError(t, err)
	require.Nil(t, ausente)
}

func TestActualizarPisaContadores(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository()

	u := Usuario{Nombre: "Ana", Email: "ana@vozativa.cx", Contrasena: "hash"}
	require.NoError(t, repo.Crear(db, &u))

	require.NoError(t, repo.Actualizar(db, u.ID, 12, 70, 85, 3))
	tras, err := repo.BuscarPorID(db, u.ID)
	require.NoError(t, err)
	require.Equal(t, 12, tras.Respuestas)
	require.Equal(t, 70, tras.NPS)
	require.Equal(t, 85, tras.CSAT)
	require.Equal(t, 3, tras.RD)

	// Volver a cero también se escribe.
	require.NoError(t, repo.Actualizar(db, u.ID, 0, 0, 0, 0))
	cero, err := repo.BuscarPorID(db, u.ID)
	require.NoError(t, err)
	require.Equal(t, 0, cero.NPS)
}

func TestEstadisticasSinUsuarios(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository()

	e, err := repo.Estadisticas(db)
	require.NoError(t, err)
	require.EqualValues(t, 0, e.TotalUsuarios)
	require.Zero(t, e.PromedioNPS)
	require.Zero(t, e.PromedioCSAT)
	require.Zero(t, e.PromedioRD)
}

func TestEstadisticas(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository()

	a := Usuario{Nombre: "Ana", Email: "ana@vozativa.cx", Contrasena: "hash", NPS: 60, CSAT: 80, RD: 2}
	require.NoError(t, repo.Crear(db, &a))
	b := Usuario{Nombre: "Bruno", Email: "bruno@vozativa.cx", Contrasena: "hash", NPS: 40, CSAT: 60, RD: 4}
	require.NoError(t, repo.Crear(db, &b))

	e, err := repo.Estadisticas(db)
	require.NoError(t, err)
	require.EqualValues(t, 2, e.TotalUsuarios)
	require.InDelta(t, 50, e.PromedioNPS, 0.01)
	require.InDelta(t, 70, e.PromedioCSAT, 0.01)
	require.InDelta(t, 3, e.PromedioRD, 0.01)
}
