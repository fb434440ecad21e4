package store

import (
	"pursaklar/models"
)

// ListCategories tüm kategorileri sort_order'a göre döner, eşitlikte id'ye bakılır
func (s *Store) ListCategories() ([]models.Category, error) {
	var list []models.Category
	if err := s.db.Order("sort_order ASC, id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListServicesByCategory kategorinin hizmetlerini ada göre sıralı döner.
// Kategori yoksa veya hizmeti yoksa boş dilim döner, hata değil.
func (s *Store) ListServicesByCategory(categoryID uint) ([]models.Service, error) {
	list := make([]models.Service, 0)
	if err := s.db.Where("category_id = ?", categoryID).Order("name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetService hizmeti id ile döner; bulunamazsa gorm.ErrRecordNotFound
func (s *Store) GetService(id uint) (*models.Service, error) {
	var svc models.Service
	if err := s.db.First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}
