package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pursaklar/config"
	"pursaklar/service"
)

// ErrorResponse hata gövdesi
type ErrorResponse struct {
	Error string `json:"error"`
}

// OrderCreatedResponse başarılı sipariş yanıtı
type OrderCreatedResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	OrderID     uint   `json:"orderId"`
	ServiceName string `json:"serviceName"`
}

// Error hata yanıtı yazar
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// BadRequest 400 hata yanıtı
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404 hata yanıtı
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 hata yanıtı
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// HandleServiceError servis katmanı hatasını HTTP durum koduna çevirir:
// ValidationError → 400, NotFoundError → 404, diğerleri → 500.
// 500 durumunda iç hata detayı release modunda istemciye sızdırılmaz.
func HandleServiceError(c *gin.Context, err error, fallback string) {
	var vErr *service.ValidationError
	var nfErr *service.NotFoundError
	switch {
	case errors.As(err, &vErr):
		BadRequest(c, vErr.Message)
	case errors.As(err, &nfErr):
		NotFound(c, nfErr.Message)
	default:
		InternalError(c, config.SafeErrorMessage(err, fallback))
	}
}
