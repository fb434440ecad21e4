package models

import (
	"time"
)

const (
	// OrderStatusPending beklemede: yeni alınan sipariş
	OrderStatusPending = "pending"
	// OrderStatusConfirmed onaylandı
	OrderStatusConfirmed = "confirmed"
	// OrderStatusCompleted tamamlandı
	OrderStatusCompleted = "completed"
	// OrderStatusCancelled iptal edildi
	OrderStatusCancelled = "cancelled"
)

// Order müşteri siparişi. ServiceName sipariş anındaki hizmet adının
// denormalize kopyasıdır; katalog sonradan değişse bile sipariş okunabilir kalır.
type Order struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ServiceID     uint      `json:"service_id" gorm:"index;not null"`
	ServiceName   string    `json:"service_name" gorm:"size:100;not null"`
	CustomerName  string    `json:"customer_name" gorm:"size:100;not null"`
	CustomerPhone string    `json:"customer_phone" gorm:"size:20;not null"`
	Address       string    `json:"address" gorm:"size:255"`
	Notes         string    `json:"notes" gorm:"size:500"`
	Status        string    `json:"status" gorm:"size:20;default:pending;index"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName tablo adını ayarlar
func (Order) TableName() string {
	return "orders"
}

// ValidStatus durum değerinin bilinen bir sipariş durumu olup olmadığını döner
func ValidStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
