package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pursaklar/config"
	"pursaklar/middleware"
	"pursaklar/models"
	"pursaklar/store"
)

// AdminHandler işletme sahibi uç noktaları: sipariş defteri, durum
// güncelleme ve dışa aktarma
type AdminHandler struct {
	cfg   *config.Config
	store *store.Store
}

// NewAdminHandler yönetim işleyicisini oluşturur
func NewAdminHandler(cfg *config.Config, st *store.Store) *AdminHandler {
	return &AdminHandler{cfg: cfg, store: st}
}

// LoginRequest yönetici giriş isteği
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login işletme sahibi girişi
// @Summary Yönetici girişi
// @Description Yapılandırmadaki hesapla giriş yapar, Bearer token döner
// @Tags yönetim
// @Accept json
// @Produce json
// @Param request body LoginRequest true "giriş bilgileri"
// @Success 200 {object} map[string]interface{} "token"
// @Failure 400 {object} ErrorResponse "eksik parametre"
// @Failure 401 {object} ErrorResponse "kullanıcı adı veya şifre hatalı"
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Kullanıcı adı ve şifre gerekli")
		return
	}

	// özet tanımlı değilse giriş kapalıdır
	if h.cfg.Admin.PasswordHash == "" {
		Error(c, http.StatusUnauthorized, "Yönetici hesabı yapılandırılmamış")
		return
	}

	if req.Username != h.cfg.Admin.Username ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.Admin.PasswordHash), []byte(req.Password)) != nil {
		Error(c, http.StatusUnauthorized, "Kullanıcı adı veya şifre hatalı")
		return
	}

	expire := time.Duration(h.cfg.JWT.ExpireHours) * time.Hour
	token, err := middleware.GenerateToken(req.Username, expire)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "Oturum oluşturulamadı"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_in": int(expire.Seconds()),
	})
}

// ListOrders sipariş defterini döner
// @Summary Sipariş listesi
// @Description Siparişleri yeniden eskiye döner; status parametresi ile süzülebilir
// @Tags yönetim
// @Produce json
// @Security BearerAuth
// @Param status query string false "sipariş durumu (pending/confirmed/completed/cancelled)"
// @Success 200 {array} models.Order "sipariş listesi"
// @Failure 400 {object} ErrorResponse "geçersiz durum"
// @Failure 401 {object} ErrorResponse "yetkisiz"
// @Failure 500 {object} ErrorResponse "veritabanı hatası"
// @Router /admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.ValidStatus(status) {
		BadRequest(c, "Geçersiz sipariş durumu")
		return
	}
	list, err := h.store.ListOrders(status)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "Siparişler yüklenemedi"))
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateStatusRequest durum güncelleme isteği
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus sipariş durumunu günceller
// @Summary Sipariş durumu güncelle
// @Description Siparişi pending/confirmed/completed/cancelled durumlarından birine alır
// @Tags yönetim
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "sipariş ID"
// @Param request body UpdateStatusRequest true "yeni durum"
// @Success 200 {object} map[string]interface{} "güncellendi"
// @Failure 400 {object} ErrorResponse "geçersiz parametre"
// @Failure 401 {object} ErrorResponse "yetkisiz"
// @Failure 404 {object} ErrorResponse "sipariş bulunamadı"
// @Failure 500 {object} ErrorResponse "veritabanı hatası"
// @Router /admin/orders/{id}/status [put]
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz sipariş numarası")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Durum alanı gerekli")
		return
	}
	if !models.ValidStatus(req.Status) {
		BadRequest(c, "Geçersiz sipariş durumu")
		return
	}

	if err := h.store.UpdateOrderStatus(uint(id64), req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Sipariş bulunamadı")
			return
		}
		InternalError(c, config.SafeErrorMessage(err, "Sipariş güncellenemedi"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sipariş durumu güncellendi"})
}

// ExportOrders sipariş defterini Excel olarak indirir
// @Summary Siparişleri dışa aktar
// @Description Tüm siparişleri xlsx dosyası olarak döner
// @Tags yönetim
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "xlsx dosyası"
// @Failure 401 {object} ErrorResponse "yetkisiz"
// @Failure 500 {object} ErrorResponse "veritabanı hatası"
// @Router /admin/orders/export [get]
func (h *AdminHandler) ExportOrders(c *gin.Context) {
	orders, err := h.store.ListOrders("")
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "Siparişler yüklenemedi"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Siparişler"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 20)
	f.SetColWidth(sheetName, "C", "C", 20)
	f.SetColWidth(sheetName, "D", "D", 15)
	f.SetColWidth(sheetName, "E", "E", 30)
	f.SetColWidth(sheetName, "F", "F", 30)
	f.SetColWidth(sheetName, "G", "G", 12)
	f.SetColWidth(sheetName, "H", "H", 20)

	headers := []string{"ID", "Hizmet", "Müşteri", "Telefon", "Adres", "Not", "Durum", "Tarih"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, order := range orders {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), order.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), order.ServiceName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), order.CustomerName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), order.CustomerPhone)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), order.Address)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), order.Notes)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), order.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), order.CreatedAt.Format("2006-01-02 15:04:05"))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), dataStyle)
	}

	filename := fmt.Sprintf("siparisler_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "Excel dosyası oluşturulamadı")
		return
	}
}
