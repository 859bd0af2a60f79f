// pkg/nationalid 11 haneli ulusal kimlik numarasının kontrol hanelerini doğrular.
package nationalid

import (
	"strings"
)

// Normalize numaradaki rakam dışı karakterleri (nokta, tire, boşluk) ayıklar.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateFormat temel biçim kontrolü: 11 hane ve tüm haneler aynı olmamalı.
// Tamamı aynı rakamdan oluşan numaralar kontrol hanelerini sağlasa da geçersizdir.
func ValidateFormat(id string) bool {
	if len(id) != 11 {
		return false
	}
	allEqual := true
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
		if id[i] != id[0] {
			allEqual = false
		}
	}
	return !allEqual
}

// checkDigit verilen haneler ve ağırlıklarla mod-11 kontrol hanesini hesaplar.
// Kalan 2'den küçükse hane 0, değilse 11-kalan olur.
func checkDigit(digits string, weights []int) int {
	total := 0
	for i, w := range weights {
		total += int(digits[i]-'0') * w
	}
	remainder := total % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// Validate numaranın biçimini ve iki kontrol hanesini doğrular.
// İlk kontrol hanesi ilk 9 hane üzerinden 10..2 ağırlıklarıyla,
// ikincisi ilk 10 hane üzerinden 11..2 ağırlıklarıyla hesaplanır.
func Validate(raw string) bool {
	id := Normalize(raw)
	if !ValidateFormat(id) {
		return false
	}

	firstWeights := []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	first := checkDigit(id[:9], firstWeights)

	secondWeights := []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	second := checkDigit(id[:10], secondWeights)

	return int(id[9]-'0') == first && int(id[10]-'0') == second
}
