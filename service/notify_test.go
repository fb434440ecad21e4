package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pursaklar/config"
	"pursaklar/models"
)

func TestOrderNotifier_Enabled(t *testing.T) {
	assert.False(t, NewOrderNotifier(&config.EmailConfig{}).Enabled())
	assert.False(t, NewOrderNotifier(&config.EmailConfig{Enabled: true}).Enabled())
	assert.False(t, NewOrderNotifier(&config.EmailConfig{OwnerEmail: "a@b.com"}).Enabled())
	assert.True(t, NewOrderNotifier(&config.EmailConfig{Enabled: true, OwnerEmail: "a@b.com"}).Enabled())
}

func TestNotifyNewOrder_DisabledIsNoop(t *testing.T) {
	n := NewOrderNotifier(&config.EmailConfig{Enabled: false})
	err := n.NotifyNewOrder(&models.Order{ID: 1, ServiceName: "Dönerci"})
	assert.NoError(t, err)
}

func TestBuildOrderEmailBody(t *testing.T) {
	n := NewOrderNotifier(&config.EmailConfig{})
	order := &models.Order{
		ID:            42,
		ServiceName:   "Dönerci",
		CustomerName:  "Ali Veli",
		CustomerPhone: "05321234567",
		Address:       "Merkez Mah. 5",
		Notes:         "",
		CreatedAt:     time.Date(2025, 3, 1, 12, 30, 0, 0, time.Local),
	}
	body := n.buildOrderEmailBody(order)
	assert.Contains(t, body, "#42")
	assert.Contains(t, body, "Dönerci")
	assert.Contains(t, body, "Ali Veli")
	assert.Contains(t, body, "05321234567")
	assert.Contains(t, body, "Merkez Mah. 5")
	assert.Contains(t, body, "2025-03-01 12:30:00")
}
