package novedad

import (
	"fmt"
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
	require.NoError(t, db.AutoMigrate(&Novedad{}))
	return db
}

func TestCrearYListar(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository()

	n := Novedad{URL: "https://intranet/nota-1", Titulo: "Nota 1", FechaPublicacion: "2026-08-01", Estado: 1}
	require.NoError(t, repo.Crear(db, &n))
	require.NotZero(t, n.ID, "el store asigna el id")

	items, hayMas, err := repo.Listar(db, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, n.ID, items[0].ID)
	require.Equal(t, 1, items[0].Estado)
	require.False(t, hayMas)
}

func TestEliminar(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository()

	n := Novedad{URL: "https://intranet/nota", Titulo: "Nota", FechaPublicacion: "2026-08-01", Estado: 1}
	require.NoError(t, repo.Crear(db, &n))
	require.NoError(t, repo.Eliminar(db, n.ID))

	items, _, err := repo.Listar(db, 1, 10)
	require.NoError(t, err)
	require.Empty(t, items)

	// Eliminar un id ausente no es un error.
	require.NoError(t, repo.Eliminar(db, 999))
}

func TestAlternarEstadoDosVecesVuelveAlOriginal(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository()

	n := Novedad{URL: "https://intranet/nota", Titulo: "Nota", FechaPublicacion: "2026-08-01", Estado: 1}
	require.NoError(t, repo.Crear(db, &n))

	require.NoError(t, repo.AlternarEstado(db, n.ID))
	var tras1 Novedad
	require.NoError(t, db.First(&tras1, n.ID).Error)
	require.Equal(t, 0, tras1.Estado)

	require.NoError(t, repo.AlternarEstado(db, n.ID))
	var tras2 Novedad
	require.NoError(t, db.First(&tras2, n.ID).Error)
	require.Equal(t, 1, tras2.Estado)
}

func TestAlternarEstadoAusente(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository()

	err := repo.AlternarEstado(db, 42)
	require.ErrorIs(t, err, errores.ErrNoEncontrado)
}

func TestActualizar(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository()

	n := Novedad{URL: "https://intranet/v1", Titulo: "Vieja", FechaPublicacion: "2026-08-01", Estado: 1}
	require.NoError(t, repo.Crear(db, &n))

	datos := Novedad{URL: "https://intranet/v2", Titulo: "Nueva", FechaPublicacion: "2026-08-02", Estado: 0}
	require.NoError(t, repo.Actualizar(db, n.ID, &datos))

	var guardada Novedad
	require.NoError(t, db.First(&guardada, n.ID).Error)
	require.Equal(t, "Nueva", guardada.Titulo)
	require.Equal(t, "https://intranet/v2", guardada.URL)
	require.Equal(t, 0, guardada.Estado)

	// Un id sin fila es un no-op, no un error.
	require.NoError(t, repo.Actualizar(db, 999, &datos))
}

func TestListarPaginado(t *testing.T) {
	db := abrirDBPrueba(t)
	repo := NewRepository()

	for i := 0; i < 15; i++ {
		n := Novedad{
			URL:              fmt.Sprintf("https://intranet/nota-%d", i),
			Titulo:           fmt.Sprintf("Nota %d", i),
			FechaPublicacion: "2026-08-01",
			Estado:           1,
		}
		require.NoError(t, repo.Crear(db, &n))
	}

	pagina1, hayMas, err := repo.Listar(db, 1, 10)
	require.NoError(t, err)
	require.Len(t, pagina1, 10)
	require.True(t, hayMas)

	pagina2, hayMas, err := repo.Listar(db, 2, 10)
	require.NoError(t, err)
	require.Len(t, pagina2, 5)
	require.False(t, hayMas)
}
