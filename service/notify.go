package service

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"pursaklar/config"
	"pursaklar/models"
)

// OrderNotifier yeni siparişleri işletme sahibine e-posta ile bildirir.
// Bildirim sipariş alımının parçası değildir: gönderim hatası siparişi
// etkilemez, yalnızca loglanır.
type OrderNotifier struct {
	cfg *config.EmailConfig
}

// NewOrderNotifier bildirim servisini oluşturur
func NewOrderNotifier(cfg *config.EmailConfig) *OrderNotifier {
	return &OrderNotifier{cfg: cfg}
}

// Enabled bildirim gönderimi açık ve alıcı tanımlı mı?
func (n *OrderNotifier) Enabled() bool {
	return n.cfg.Enabled && n.cfg.OwnerEmail != ""
}

// NotifyNewOrder sipariş bildirimini gönderir; kapalıysa sessizce döner
func (n *OrderNotifier) NotifyNewOrder(order *models.Order) error {
	if !n.Enabled() {
		return nil
	}

	subject := fmt.Sprintf("Yeni sipariş #%d - %s", order.ID, order.ServiceName)
	body := n.buildOrderEmailBody(order)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(n.cfg.Username, n.cfg.From))
	m.SetHeader("To", n.cfg.OwnerEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("bildirim e-postası gönderilemedi: %w", err)
	}
	return nil
}

// buildOrderEmailBody bildirim içeriğini üretir
func (n *OrderNotifier) buildOrderEmailBody(order *models.Order) string {
	address := order.Address
	if address == "" {
		address = "-"
	}
	notes := order.Notes
	if notes == "" {
		notes = "-"
	}
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>📦 Yeni sipariş alındı</h2>
    <table style="border-collapse: collapse;">
        <tr><td style="padding: 4px 12px 4px 0; color: #666;">Sipariş No</td><td>#%d</td></tr>
        <tr><td style="padding: 4px 12px 4px 0; color: #666;">Hizmet</td><td>%s</td></tr>
        <tr><td style="padding: 4px 12px 4px 0; color: #666;">Müşteri</td><td>%s</td></tr>
        <tr><td style="padding: 4px 12px 4px 0; color: #666;">Telefon</td><td>%s</td></tr>
        <tr><td style="padding: 4px 12px 4px 0; color: #666;">Adres</td><td>%s</td></tr>
        <tr><td style="padding: 4px 12px 4px 0; color: #666;">Not</td><td>%s</td></tr>
        <tr><td style="padding: 4px 12px 4px 0; color: #666;">Tarih</td><td>%s</td></tr>
    </table>
    <p style="color: #666;">—— Pursaklar Süper App</p>
</body>
</html>
`, order.ID, order.ServiceName, order.CustomerName, order.CustomerPhone,
		address, notes, order.CreatedAt.Format("2006-01-02 15:04:05"))
}
