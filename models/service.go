package models

// Service sipariş verilebilir hizmet, tek bir kategoriye aittir
type Service struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	CategoryID  uint     `json:"category_id" gorm:"index;not null"`
	Name        string   `json:"name" gorm:"size:100;not null"`
	Description string   `json:"description" gorm:"size:255"`
	Price       int      `json:"price" gorm:"default:0"` // 0 = fiyat listelenmiyor
	ImageURL    string   `json:"image_url" gorm:"size:255"`
	Category    Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName tablo adını ayarlar
func (Service) TableName() string {
	return "services"
}
