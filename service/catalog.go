package service

import (
	"pursaklar/models"
	"pursaklar/store"
)

// CatalogQueryService vitrin için salt okunur katalog sorguları
type CatalogQueryService struct {
	store *store.Store
}

// NewCatalogQueryService katalog sorgu servisini oluşturur
func NewCatalogQueryService(st *store.Store) *CatalogQueryService {
	return &CatalogQueryService{store: st}
}

// ListCategories kategorileri görüntüleme sırasına göre döner
func (s *CatalogQueryService) ListCategories() ([]models.Category, error) {
	list, err := s.store.ListCategories()
	if err != nil {
		return nil, &StorageError{Op: "kategori sorgusu", Err: err}
	}
	return list, nil
}

// ListServicesByCategory kategorinin hizmetlerini ada göre sıralı döner.
// Bilinmeyen veya boş kategori için boş dilim döner, hata değil.
func (s *CatalogQueryService) ListServicesByCategory(categoryID uint) ([]models.Service, error) {
	list, err := s.store.ListServicesByCategory(categoryID)
	if err != nil {
		return nil, &StorageError{Op: "hizmet sorgusu", Err: err}
	}
	return list, nil
}
