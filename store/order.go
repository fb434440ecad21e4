package store

import (
	"gorm.io/gorm"

	"pursaklar/models"
)

// CreateOrder siparişi tek bir atomik insert ile kaydeder; kimliği
// veritabanı atar ve o.ID alanına yazılır. Kısmi yazma olmaz: insert
// başarısızsa kayıt oluşmamıştır.
func (s *Store) CreateOrder(o *models.Order) error {
	return s.db.Create(o).Error
}

// GetOrder siparişi id ile döner; bulunamazsa gorm.ErrRecordNotFound
func (s *Store) GetOrder(id uint) (*models.Order, error) {
	var o models.Order
	if err := s.db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders siparişleri yeniden eskiye doğru döner.
// status boş değilse yalnızca o durumdaki siparişler listelenir.
func (s *Store) ListOrders(status string) ([]models.Order, error) {
	list := make([]models.Order, 0)
	q := s.db.Order("id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateOrderStatus sipariş durumunu günceller; sipariş yoksa gorm.ErrRecordNotFound
func (s *Store) UpdateOrderStatus(id uint, status string) error {
	res := s.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
