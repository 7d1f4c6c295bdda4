package empleado

// Empleado es un agente del centro de atención. XLite es la etiqueta libre
// del softphone asignado.
type Empleado struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Nombre          string `gorm:"column:first_name;not null" json:"firstName"`
	Apellido        string `gorm:"column:last_name;not null" json:"lastName"`
	Email           string `gorm:"column:email;not null" json:"email"`
	DNI             string `gorm:"column:dni;not null" json:"dni"`
	HoraEntrada     string `gorm:"column:entry_time;not null" json:"entryTime"`
	HoraSalida      string `gorm:"column:exit_time;not null" json:"exitTime"`
	HorasTrabajadas int    `gorm:"column:hours_worked;not null" json:"hoursWorked"`
	XLite           string `gorm:"column:x_lite;not null" json:"xLite"`
}

func (Empleado) TableName() string { return "employees" }
