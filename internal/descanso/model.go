package descanso

// HorarioBreak es la franja de descanso de un empleado para un día puntual
// de una semana. La clave lógica (empleado, día, semana, mes, año) está
// respaldada por un índice único compuesto, que es lo que habilita el
// upsert nativo del repository.
type HorarioBreak struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	EmpleadoID uint   `gorm:"column:employee_id;not null;uniqueIndex:idx_break_clave" json:"employeeId"`
	Dia        string `gorm:"column:day;not null;uniqueIndex:idx_break_clave" json:"day"`
	HoraInicio string `gorm:"column:start_time;not null" json:"startTime"`
	HoraFin    string `gorm:"column:end_time;not null" json:"endTime"`
	Semana     int    `gorm:"column:week;not null;uniqueIndex:idx_break_clave" json:"week"`
	Mes        int    `gorm:"column:month;not null;uniqueIndex:idx_break_clave" json:"month"`
	Anio       int    `gorm:"column:year;not null;uniqueIndex:idx_break_clave" json:"year"`
}

func (HorarioBreak) TableName() string { return "break_schedules" }

// ResumenDia es una fila del resumen semanal: minutos de break acumulados
// por día.
type ResumenDia struct {
	Dia            string  `gorm:"column:dia" json:"day"`
	MinutosTotales float64 `gorm:"column:minutos_totales" json:"totalBreakTime"`
}
