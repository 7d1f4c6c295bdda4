package npstrimestral

// Entrada es el NPS de un usuario para un mes. Hay a lo sumo una fila por
// (usuario, mes); el índice único compuesto es el target del upsert.
type Entrada struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UsuarioID uint   `gorm:"column:user_id;not null;uniqueIndex:idx_nps_usuario_mes" json:"userId"`
	Mes       string `gorm:"column:month;not null;uniqueIndex:idx_nps_usuario_mes" json:"month"`
	NPS       int    `gorm:"column:nps;not null" json:"nps"`
}

func (Entrada) TableName() string { return "nps_trimestral" }
