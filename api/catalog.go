package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pursaklar/service"
)

// CatalogHandler vitrin katalog uç noktaları
type CatalogHandler struct {
	catalog *service.CatalogQueryService
}

// NewCatalogHandler katalog işleyicisini oluşturur
func NewCatalogHandler(catalog *service.CatalogQueryService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListCategories tüm kategorileri getirir
// @Summary Kategori listesi
// @Description Tüm kategorileri görüntüleme sırasına göre döner
// @Tags katalog
// @Produce json
// @Success 200 {array} models.Category "kategori listesi"
// @Failure 500 {object} ErrorResponse "veritabanı hatası"
// @Router /api/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	list, err := h.catalog.ListCategories()
	if err != nil {
		HandleServiceError(c, err, "Kategoriler yüklenemedi")
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListServices kategorinin hizmetlerini getirir
// @Summary Kategoriye göre hizmet listesi
// @Description Kategorinin hizmetlerini ada göre sıralı döner; kategori boşsa boş liste
// @Tags katalog
// @Produce json
// @Param categoryId path int true "kategori ID"
// @Success 200 {array} models.Service "hizmet listesi"
// @Failure 400 {object} ErrorResponse "geçersiz kategori ID"
// @Failure 500 {object} ErrorResponse "veritabanı hatası"
// @Router /api/services/{categoryId} [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	// yol parametresi metin gelir, tipli sorguya geçmeden önce doğrula
	id64, err := strconv.ParseUint(c.Param("categoryId"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz kategori numarası")
		return
	}
	list, err := h.catalog.ListServicesByCategory(uint(id64))
	if err != nil {
		HandleServiceError(c, err, "Hizmetler yüklenemedi")
		return
	}
	c.JSON(http.StatusOK, list)
}
