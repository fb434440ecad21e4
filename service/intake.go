package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"pursaklar/models"
	"pursaklar/store"
	"pursaklar/validation"
)

// OrderIntakeService sipariş alma akışı: doğrula, hizmeti bul, kaydet.
// İstekler arasında durum tutmaz.
type OrderIntakeService struct {
	store *store.Store
}

// NewOrderIntakeService sipariş alma servisini oluşturur
func NewOrderIntakeService(st *store.Store) *OrderIntakeService {
	return &OrderIntakeService{store: st}
}

// SubmitOrder yeni siparişi alır. Kontroller sırayla yapılır ve ilk
// hatada kesilir: zorunlu alanlar, telefon biçimi, hizmet varlığı.
// Başarıda veritabanının atadığı kimlikle kaydedilmiş siparişi döner.
func (s *OrderIntakeService) SubmitOrder(serviceID uint, customerName, customerPhone, address, notes string) (*models.Order, error) {
	if !validation.RequiredFieldsPresent(serviceID, customerName, customerPhone) {
		return nil, &ValidationError{Reason: ReasonMissingFields, Message: "Zorunlu alanlar eksik"}
	}

	phone := validation.NormalizePhone(customerPhone)
	if !validation.PhoneMatches(phone) {
		return nil, &ValidationError{Reason: ReasonInvalidPhone, Message: "Geçerli telefon numarası girin (05XXXXXXXXX)"}
	}

	svc, err := s.store.GetService(serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "service", Message: "Hizmet bulunamadı"}
		}
		return nil, &StorageError{Op: "hizmet sorgusu", Err: err}
	}

	order := &models.Order{
		ServiceID:     svc.ID,
		ServiceName:   svc.Name, // sipariş anındaki ad, katalog değişse de kalır
		CustomerName:  strings.TrimSpace(customerName),
		CustomerPhone: phone,
		Address:       strings.TrimSpace(address),
		Notes:         strings.TrimSpace(notes),
		Status:        models.OrderStatusPending,
	}
	if err := s.store.CreateOrder(order); err != nil {
		return nil, &StorageError{Op: "sipariş kaydı", Err: err}
	}

	return order, nil
}

// GetOrder siparişi id ile döner (durum sorgulama)
func (s *OrderIntakeService) GetOrder(id uint) (*models.Order, error) {
	o, err := s.store.GetOrder(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "order", Message: "Sipariş bulunamadı"}
		}
		return nil, &StorageError{Op: "sipariş sorgusu", Err: err}
	}
	return o, nil
}
