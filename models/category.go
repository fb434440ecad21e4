package models

// Category hizmet kategorisi (ilk kurulumda seed edilir, çalışma anında salt okunur)
type Category struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:100;not null"`
	Icon      string `json:"icon" gorm:"size:20;not null"`
	Color     string `json:"color" gorm:"size:20;not null"` // renk kodu, örn. #ff6b00
	SortOrder int    `json:"sort_order" gorm:"default:0;index"`
}

// TableName tablo adını ayarlar
func (Category) TableName() string {
	return "categories"
}
