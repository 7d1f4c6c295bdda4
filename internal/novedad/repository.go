package novedad

import (
	"gorm.io/gorm"

	"github.com/VozAtivaCX/api-dashboard/internal/errores"
)

type Repository interface {
	Listar(db *gorm.DB, pagina, limite int) ([]Novedad, bool, error)
	Crear(db *gorm.DB, n *Novedad) error
	Actualizar(db *gorm.DB, id uint, datos *Novedad) error
	AlternarEstado(db *gorm.DB, id uint) error
	Eliminar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Listar devuelve la página pedida y si puede haber más páginas: cuando la
// cantidad devuelta iguala al límite, el caller debe asumir que sí.
func (r *repositoryImpl) Listar(db *gorm.DB, pagina, limite int) ([]Novedad, bool, error) {
	var novedades []Novedad
	offset := (pagina - 1) * limite
	if err := db.Limit(limite).Offset(offset).Find(&novedades).Error; err != nil {
		return nil, false, errores.Operacion("las novedades", "obtener", err)
	}
	return novedades, len(novedades) == limite, nil
}

func (r *repositoryImpl) Crear(db *gorm.DB, n *Novedad) error {
	if err := db.Create(n).Error; err != nil {
		return errores.Operacion("la novedad", "agregar", err)
	}
	return nil
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, id uint, datos *Novedad) error {
	err := db.Model(&Novedad{}).Where("id = ?", id).Updates(map[string]interface{}{
		"url":          datos.URL,
		"title":        datos.Titulo,
		"publish_date": datos.FechaPublicacion,
		"estado":       datos.Estado,
	}).Error
	if err != nil {
		return errores.Operacion("la novedad", "actualizar", err)
	}
	return nil
}

// AlternarEstado invierte el flag en un solo UPDATE, sin ventana
// leer-luego-escribir.
func (r *repositoryImpl) AlternarEstado(db *gorm.DB, id uint) error {
	res := db.Model(&Novedad{}).Where("id = ?", id).
		UpdateColumn("estado", gorm.Expr("1 - estado"))
	if res.Error != nil {
		return errores.Operacion("el estado de la novedad", "actualizar", res.Error)
	}
	if res.RowsAffected == 0 {
		return errores.ErrNoEncontrado
	}
	return nil
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	if err := db.Delete(&Novedad{}, id).Error; err != nil {
		return errores.Operacion("la novedad", "eliminar", err)
	}
	return nil
}
