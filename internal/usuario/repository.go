package usuario

import (
	"errors"

	"gorm.io/gorm"

	"github.com/VozAtivaCX/api-dashboard/internal/errores"
)

type Repository interface {
	ListarTodos(db *gorm.DB) ([]Usuario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error)
	Crear(db *gorm.DB, u *Usuario) error
	Actualizar(db *gorm.DB, id uint, respuestas, nps, csat, rd int) error
	Estadisticas(db *gorm.DB) (*Estadisticas, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	if err := db.Find(&usuarios).Error; err != nil {
		return nil, errores.Operacion("los usuarios", "obtener", err)
	}
	return usuarios, nil
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	if err := db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errores.ErrNoEncontrado
		}
		return nil, errores.Operacion("el usuario", "obtener", err)
	}
	return &u, nil
}

// BuscarPorEmail devuelve nil sin error cuando no hay coincidencia: la
// ausencia acá es un resultado, no un fallo.
func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	if err := db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errores.Operacion("el usuario", "obtener", err)
	}
	return &u, nil
}

func (r *repositoryImpl) Crear(db *gorm.DB, u *Usuario) error {
	if err := db.Create(u).Error; err != nil {
		return errores.Operacion("el usuario", "crear", err)
	}
	return nil
}

// Actualizar pisa los cuatro contadores del usuario. El mapa fuerza la
// escritura aun cuando el valor nuevo sea cero.
func (r *repositoryImpl) Actualizar(db *gorm.DB, id uint, respuestas, nps, csat, rd int) error {
	err := db.Model(&Usuario{}).Where("id = ?", id).Updates(map[string]interface{}{
		"responses": respuestas,
		"nps":       nps,
		"csat":      csat,
		"rd":        rd,
	}).Error
	if err != nil {
		return errores.Operacion("el usuario", "actualizar", err)
	}
	return nil
}

// Estadisticas calcula los agregados del lado del store; los promedios de
// una tabla vacía quedan en 0 por el COALESCE.
func (r *repositoryImpl) Estadisticas(db *gorm.DB) (*Estadisticas, error) {
	var e Estadisticas
	err := db.Model(&Usuario{}).
		Select("COALESCE(COUNT(*), 0) AS total_usuarios, " +
			"COALESCE(AVG(nps), 0) AS promedio_nps, " +
			"COALESCE(AVG(csat), 0) AS promedio_csat, " +
			"COALESCE(AVG(rd), 0) AS promedio_rd").
		Scan(&e).Error
	if err != nil {
		return nil, errores.Operacion("las estadísticas de usuarios", "obtener", err)
	}
	return &e, nil
}
