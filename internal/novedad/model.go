package novedad

// Novedad es un ítem del muro de noticias internas. El estado es un flag
// binario: 1 activa, 0 fuera de uso.
type Novedad struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	URL              string `gorm:"column:url;not null" json:"url"`
	Titulo           string `gorm:"column:title;not null" json:"title"`
	FechaPublicacion string `gorm:"column:publish_date;not null" json:"publishDate"`
	Estado           int    `gorm:"column:estado;not null" json:"estado"`
}

// TableName conserva el nombre de tabla histórico.
func (Novedad) TableName() string { return "news" }
