package services

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// contextWithTx aktif transaction'ı context'e koyar; repository'lerin
// getDB(ctx) yardımcıları önce bu değere bakar. Böylece servisler arası
// çağrılar (ör. randevu servisi -> kontenjan defteri) aynı transaction
// üzerinde çalışır.
func contextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, "tx", tx)
}

// DateLayout API genelinde kullanılan tarih biçimi.
const DateLayout = "2006-01-02"

// NormalizeDate tarihi UTC gece yarısına sabitler. Slot ve randevu
// tarihleri her zaman bu biçimde saklanır; eşitlik karşılaştırmaları
// buna dayanır.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
