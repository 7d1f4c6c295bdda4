package empleado

import (
	"gorm.io/gorm"

	"github.com/VozAtivaCX/api-dashboard/internal/errores"
)

type Repository interface {
	ListarTodos(db *gorm.DB) ([]Empleado, error)
	Crear(db *gorm.DB, e *Empleado) error
	Top(db *gorm.DB, n int) ([]Empleado, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Empleado, error) {
	var empleados []Empleado
	if err := db.Find(&empleados).Error; err != nil {
		return nil, errores.Operacion("los empleados", "obtener", err)
	}
	return empleados, nil
}

func (r *repositoryImpl) Crear(db *gorm.DB, e *Empleado) error {
	if err := db.Create(e).Error; err != nil {
		return errores.Operacion("el empleado", "agregar", err)
	}
	return nil
}

// Top devuelve los n empleados con más horas trabajadas, en orden
// descendente.
func (r *repositoryImpl) Top(db *gorm.DB, n int) ([]Empleado, error) {
	var empleados []Empleado
	if err := db.Order("hours_worked DESC").Limit(n).Find(&empleados).Error; err != nil {
		return nil, errores.Operacion("el top de empleados", "obtener", err)
	}
	return empleados, nil
}
