package services

import (
	"context"
	"errors"
	"os"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/repositories"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminServiceError yönetici servisi özel hataları.
type AdminServiceError string

func (e AdminServiceError) Error() string { return string(e) }

// Hata sabitleri
const (
	ErrAdminInvalidCredentials AdminServiceError = "kullanıcı adı veya parola hatalı"
	ErrAdminUsernameExists     AdminServiceError = "bu kullanıcı adı zaten kullanımda"
	ErrAdminInvalidToken       AdminServiceError = "oturum belirteci geçersiz veya süresi dolmuş"
	ErrAdminInvalidInput       AdminServiceError = "geçersiz yönetici girdisi"
	ErrAdminPasswordTooShort   AdminServiceError = "parola en az 6 karakter olmalıdır"
)

// AdminClaims JWT içinde taşınan yönetici bilgileri.
type AdminClaims struct {
	AdminID    uint             `json:"admin_id"`
	Role       models.AdminRole `json:"role"`
	CareUnitID *uint            `json:"care_unit_id,omitempty"`
	jwt.RegisteredClaims
}

// IAdminService yönetici kimlik işlemleri için arayüz.
type IAdminService interface {
	Login(ctx context.Context, username, password string) (string, *models.Admin, error)
	CreateAdmin(ctx context.Context, username, password string, role models.AdminRole, unitID *uint) (*models.Admin, error)
	VerifyToken(token string) (*AdminClaims, error)
}

// AdminService IAdminService arayüzünü uygular.
type AdminService struct {
	repo     repositories.IAdminRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAdminService yeni bir AdminService örneği oluşturur.
// İmza anahtarı APP_JWT_SECRET ortam değişkeninden okunur.
func NewAdminService() IAdminService {
	secret := os.Getenv("APP_JWT_SECRET")
	if secret == "" {
		configslog.SLog.Warn("APP_JWT_SECRET tanımlı değil, geliştirme anahtarı kullanılıyor.")
		secret = "dev-secret-change-me"
	}
	return &AdminService{
		repo:     repositories.NewAdminRepository(),
		secret:   []byte(secret),
		tokenTTL: 8 * time.Hour,
	}
}

// Login parolayı bcrypt ile karşılaştırır ve başarılıysa imzalı JWT üretir.
// Kullanıcının var olmaması ile parolanın yanlış olması aynı hatayla döner;
// kullanıcı adı keşfine izin verilmez.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, *models.Admin, error) {
	if username == "" || password == "" {
		return "", nil, ErrAdminInvalidInput
	}

	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrAdminInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrAdminInvalidCredentials
	}

	now := time.Now().UTC()
	claims := AdminClaims{
		AdminID:    admin.ID,
		Role:       admin.Role,
		CareUnitID: admin.CareUnitID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		configslog.Log.Error("JWT imzalanamadı", zap.Error(err))
		return "", nil, err
	}

	configslog.SLog.Infof("Yönetici girişi: %s (rol: %s)", admin.Username, admin.Role)
	return token, admin, nil
}

// CreateAdmin yeni yönetici hesabı oluşturur; UnitManager rolü birim gerektirir.
func (s *AdminService) CreateAdmin(ctx context.Context, username, password string, role models.AdminRole, unitID *uint) (*models.Admin, error) {
	if username == "" {
		return nil, ErrAdminInvalidInput
	}
	if len(password) < 6 {
		return nil, ErrAdminPasswordTooShort
	}
	if role != models.AdminRoleSuper && role != models.AdminRoleUnitManager {
		return nil, ErrAdminInvalidInput
	}
	if role == models.AdminRoleUnitManager && (unitID == nil || *unitID == 0) {
		return nil, ErrAdminInvalidInput
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, ErrAdminUsernameExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Parola hashlenemedi", zap.Error(err))
		return nil, err
	}

	admin := models.Admin{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CareUnitID:   unitID,
	}
	if err := s.repo.Create(ctx, &admin); err != nil {
		configslog.Log.Error("Yönetici oluşturulamadı", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Yönetici oluşturuldu: %s (rol: %s)", username, role)
	return &admin, nil
}

// VerifyToken JWT imzasını ve süresini doğrular, claim'leri döndürür.
func (s *AdminService) VerifyToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAdminInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrAdminInvalidToken
	}
	return claims, nil
}

var _ IAdminService = (*AdminService)(nil)
