package descanso

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VozAtivaCX/api-dashboard/internal/errores"
)

type Repository interface {
	ListarPorEmpleado(db *gorm.DB, empleadoID uint, mes, anio int) ([]HorarioBreak, error)
	Guardar(db *gorm.DB, h *HorarioBreak) error
	ResumenSemanal(db *gorm.DB, semana, anio int) ([]ResumenDia, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarPorEmpleado(db *gorm.DB, empleadoID uint, mes, anio int) ([]HorarioBreak, error) {
	var horarios []HorarioBreak
	err := db.
		Where("employee_id = ? AND month = ? AND year = ?", empleadoID, mes, anio).
		Find(&horarios).Error
	if err != nil {
		return nil, errores.Operacion("los horarios de break", "obtener", err)
	}
	return horarios, nil
}

// Guardar inserta o actualiza la franja en una sola sentencia con
// resolución de conflicto en el store, apoyada en el índice único
// compuesto. Dos llamadas concurrentes para la misma clave nunca duplican
// la fila.
func (r *repositoryImpl) Guardar(db *gorm.DB, h *HorarioBreak) error {
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "employee_id"}, {Name: "day"},
			{Name: "week"}, {Name: "month"}, {Name: "year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time"}),
	}).Create(h).Error
	if err != nil {
		return errores.Operacion("el horario de break", "actualizar", err)
	}
	return nil
}

// minutosBreakExpr devuelve la expresión SQL de minutos entre inicio y fin
// para el dialecto activo. Los horarios se guardan como texto HH:MM.
func minutosBreakExpr(dialecto string) string {
	if dialecto == "sqlite" {
		return "COALESCE(SUM((julianday(end_time) - julianday(start_time)) * 24 * 60), 0)"
	}
	return "COALESCE(SUM(EXTRACT(EPOCH FROM (end_time::time - start_time::time)) / 60), 0)"
}

// ResumenSemanal suma los minutos de break por día para una semana y año.
// Una semana sin filas devuelve una lista vacía, nunca un error.
func (r *repositoryImpl) ResumenSemanal(db *gorm.DB, semana, anio int) ([]ResumenDia, error) {
	resumen := []ResumenDia{}
	err := db.Model(&HorarioBreak{}).
		Select("day AS dia, " + minutosBreakExpr(db.Dialector.Name()) + " AS minutos_totales").
		Where("week = ? AND year = ?", semana, anio).
		Group("day").
		Scan(&resumen).Error
	if err != nil {
		return nil, errores.Operacion("el resumen semanal de breaks", "obtener", err)
	}
	return resumen, nil
}
