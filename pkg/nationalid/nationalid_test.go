package nationalid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "52998224725", Normalize("529.982.247-25"))
	assert.Equal(t, "52998224725", Normalize("529 982 247 25"))
	assert.Equal(t, "52998224725", Normalize("52998224725"))
	assert.Equal(t, "", Normalize("abc-def"))
}

func TestValidateFormat(t *testing.T) {
	assert.True(t, ValidateFormat("52998224725"))

	assert.False(t, ValidateFormat("5299822472"))    // 10 hane
	assert.False(t, ValidateFormat("529982247255"))  // 12 hane
	assert.False(t, ValidateFormat("5299822472a"))   // rakam dışı karakter
	assert.False(t, ValidateFormat("11111111111"))   // tüm haneler aynı
	assert.False(t, ValidateFormat("00000000000"))
	assert.False(t, ValidateFormat(""))
}

func TestValidate(t *testing.T) {
	valid := []string{
		"52998224725",
		"11144477735",
		"529.982.247-25", // biçimli girdi normalize edilir
	}
	for _, id := range valid {
		assert.True(t, Validate(id), id)
	}

	invalid := []string{
		"52998224724", // ikinci kontrol hanesi yanlış
		"52998224735", // ilk kontrol hanesi yanlış
		"11144477734",
		"11111111111", // tüm haneler aynı (kontrol haneleri tutsa da geçersiz)
		"22222222222",
		"1234567890",  // eksik hane
		"",
	}
	for _, id := range invalid {
		assert.False(t, Validate(id), id)
	}
}
