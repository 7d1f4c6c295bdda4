package usuario

// Usuario es un sujeto de encuesta del panel NPS individual. Los contadores
// arrancan en 0 y se actualizan desde el formulario de carga.
type Usuario struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Nombre     string `gorm:"column:name;not null" json:"name"`
	Email      string `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Contrasena string `gorm:"column:password;not null" json:"-"`
	Respuestas int    `gorm:"column:responses;not null;default:0" json:"responses"`
	NPS        int    `gorm:"column:nps;not null;default:0" json:"nps"`
	CSAT       int    `gorm:"column:csat;not null;default:0" json:"csat"`
	RD         int    `gorm:"column:rd;not null;default:0" json:"rd"`
}

func (Usuario) TableName() string { return "users" }

// Estadisticas son los agregados generales del panel.
type Estadisticas struct {
	TotalUsuarios int64   `gorm:"column:total_usuarios" json:"totalUsers"`
	PromedioNPS   float64 `gorm:"column:promedio_nps" json:"averageNPS"`
	PromedioCSAT  float64 `gorm:"column:promedio_csat" json:"averageCSAT"`
	PromedioRD    float64 `gorm:"column:promedio_rd" json:"averageRD"`
}
