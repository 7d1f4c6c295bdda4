package npstrimestral

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VozAtivaCX/api-dashboard/internal/errores"
)

type Repository interface {
	UltimosTres(db *gorm.DB, usuarioID uint) ([]Entrada, error)
	Guardar(db *gorm.DB, e *Entrada) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// UltimosTres devuelve las últimas tres entradas del usuario, de mes más
// reciente a más viejo.
func (r *repositoryImpl) UltimosTres(db *gorm.DB, usuarioID uint) ([]Entrada, error) {
	var entradas []Entrada
	err := db.
		Where("user_id = ?", usuarioID).
		Order("month DESC").
		Limit(3).
		Find(&entradas).Error
	if err != nil {
		return nil, errores.Operacion("el NPS trimestral", "obtener", err)
	}
	return entradas, nil
}

// Guardar hace el upsert nativo sobre (user_id, month): el conflicto lo
// resuelve el store en forma atómica actualizando el nps.
func (r *repositoryImpl) Guardar(db *gorm.DB, e *Entrada) error {
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"nps"}),
	}).Create(e).Error
	if err != nil {
		return errores.Operacion("el NPS trimestral", "actualizar", err)
	}
	return nil
}
