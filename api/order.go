package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pursaklar/models"
	"pursaklar/service"
)

// OrderHandler sipariş alma ve sorgulama uç noktaları
type OrderHandler struct {
	intake   *service.OrderIntakeService
	notifier *service.OrderNotifier
}

// NewOrderHandler sipariş işleyicisini oluşturur; notifier nil olabilir
func NewOrderHandler(intake *service.OrderIntakeService, notifier *service.OrderNotifier) *OrderHandler {
	return &OrderHandler{intake: intake, notifier: notifier}
}

// CreateOrderRequest sipariş isteği gövdesi.
// Zorunlu alan kontrolü servis katmanında yapılır; binding kullanılmaz ki
// eksik alanlar tek tip "Zorunlu alanlar eksik" yanıtı versin.
type CreateOrderRequest struct {
	ServiceID     uint   `json:"serviceId"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
}

// Create yeni sipariş oluşturur
// @Summary Sipariş oluştur
// @Description Doğrulama sırası: zorunlu alanlar, telefon biçimi (05XXXXXXXXX), hizmet varlığı
// @Tags sipariş
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "sipariş bilgileri"
// @Success 200 {object} OrderCreatedResponse "sipariş alındı"
// @Failure 400 {object} ErrorResponse "eksik alan veya geçersiz telefon"
// @Failure 404 {object} ErrorResponse "hizmet bulunamadı"
// @Failure 500 {object} ErrorResponse "veritabanı hatası"
// @Router /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Geçersiz istek gövdesi")
		return
	}

	order, err := h.intake.SubmitOrder(req.ServiceID, req.CustomerName, req.CustomerPhone, req.Address, req.Notes)
	if err != nil {
		HandleServiceError(c, err, "Sipariş kaydedilemedi")
		return
	}

	// bildirim sipariş alımının parçası değil, hatası yalnızca loglanır
	if h.notifier != nil && h.notifier.Enabled() {
		go func(o models.Order) {
			if err := h.notifier.NotifyNewOrder(&o); err != nil {
				log.Printf("sipariş bildirimi gönderilemedi (#%d): %v", o.ID, err)
			}
		}(*order)
	}

	c.JSON(http.StatusOK, OrderCreatedResponse{
		Success:     true,
		Message:     "Sipariş başarıyla alındı",
		OrderID:     order.ID,
		ServiceName: order.ServiceName,
	})
}

// Get sipariş durumunu sorgular
// @Summary Sipariş sorgula
// @Description Siparişin tüm alanlarını döner
// @Tags sipariş
// @Produce json
// @Param id path int true "sipariş ID"
// @Success 200 {object} models.Order "sipariş"
// @Failure 400 {object} ErrorResponse "geçersiz sipariş ID"
// @Failure 404 {object} ErrorResponse "sipariş bulunamadı"
// @Failure 500 {object} ErrorResponse "veritabanı hatası"
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz sipariş numarası")
		return
	}
	order, err := h.intake.GetOrder(uint(id64))
	if err != nil {
		HandleServiceError(c, err, "Sipariş sorgulanamadı")
		return
	}
	c.JSON(http.StatusOK, order)
}
