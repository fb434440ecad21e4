// Package validation sipariş alımında kullanılan saf doğrulama kuralları.
// Aynı kurallar hızlı geri bildirim için vitrin sayfasındaki formda da
// bağımsız olarak uygulanır; iki taraf bu sözleşmeye sadık kalmalıdır.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// telefon: boşluklar atıldıktan sonra 05 ile başlayan toplam 11 hane
var phonePattern = regexp.MustCompile(`^05[0-9]{9}$`)

// RequiredFieldsPresent zorunlu alanların üçü de dolu mu?
// Metin alanlarında baştaki/sondaki boşluklar sayılmaz.
func RequiredFieldsPresent(serviceID uint, customerName, customerPhone string) bool {
	return serviceID != 0 &&
		strings.TrimSpace(customerName) != "" &&
		strings.TrimSpace(customerPhone) != ""
}

// NormalizePhone telefon içindeki tüm boşluk karakterlerini kaldırır
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
}

// PhoneMatches boşluklar kaldırıldıktan sonra numara tam olarak
// 05XXXXXXXXX biçiminde mi? Ülke kodu, tire vb. kabul edilmez.
func PhoneMatches(phone string) bool {
	return phonePattern.MatchString(NormalizePhone(phone))
}
