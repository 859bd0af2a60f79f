package repositories

import (
	"errors"
)

// Ortak repository hataları. Servis katmanı bu hataları kendi
// kullanıcıya dönük hatalarına çevirir.
var (
	ErrNotFound = errors.New("kayıt bulunamadı")

	// ErrNoCapacity koşullu azaltma hiçbir satırı etkilemediğinde döner:
	// slot yok ya da available == 0.
	ErrNoCapacity = errors.New("uygun kontenjan yok")

	// ErrCapacityAtTotal iade denemesi available < total koşulunu sağlamadığında döner.
	// Eşleşmemiş (fazladan) release çağrısının işaretidir.
	ErrCapacityAtTotal = errors.New("kontenjan zaten tavanda")
)
