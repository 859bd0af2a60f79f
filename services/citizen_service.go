package services

import (
	"context"
	"errors"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/nationalid"
	"randevu.link/repositories"

	"go.uber.org/zap"
)

// CitizenServiceError vatandaş servisi özel hataları.
type CitizenServiceError string

func (e CitizenServiceError) Error() string { return string(e) }

// Hata sabitleri
const (
	ErrInvalidIDNumber     CitizenServiceError = "kimlik numarası doğrulamadan geçemedi"
	ErrCitizenNotFound     CitizenServiceError = "vatandaş kaydı bulunamadı"
	ErrCitizenInvalidInput CitizenServiceError = "geçersiz vatandaş girdisi"
)

// LoginResult giriş denemesinin sonucu. Vatandaş ilk girişte örtük olarak
// oluşturulduğundan Existed alanı istemciye profil formunu gösterip
// göstermeyeceğini söyler.
type LoginResult struct {
	Citizen     *models.Citizen
	Existed     bool
	HasBookings bool
}

// ProfileUpdate güncellenebilir profil alanları; nil alanlar dokunulmadan bırakılır.
type ProfileUpdate struct {
	FullName     *string
	Phone        *string
	HealthCardNo *string
}

// ICitizenService vatandaş kimlik ve profil işlemleri için arayüz.
type ICitizenService interface {
	Login(ctx context.Context, rawNationalID string, birthDate time.Time) (*LoginResult, error)
	GetCitizen(ctx context.Context, id uint) (*models.Citizen, error)
	UpdateProfile(ctx context.Context, id uint, update ProfileUpdate) error
}

// CitizenService ICitizenService arayüzünü uygular.
type CitizenService struct {
	repo        repositories.ICitizenRepository
	bookingRepo repositories.IBookingRepository
}

// NewCitizenService yeni bir CitizenService örneği oluşturur.
func NewCitizenService() ICitizenService {
	return &CitizenService{
		repo:        repositories.NewCitizenRepository(),
		bookingRepo: repositories.NewBookingRepository(),
	}
}

// Login kimlik numarasını kontrol haneleriyle doğrular, ardından kaydı bulur
// veya ilk girişte örtük olarak oluşturur. Parola yoktur; kimlik numarası ve
// doğum tarihi ikilisi giriş bilgisi olarak kullanılır.
func (s *CitizenService) Login(ctx context.Context, rawNationalID string, birthDate time.Time) (*LoginResult, error) {
	id := nationalid.Normalize(rawNationalID)
	if !nationalid.Validate(id) {
		return nil, ErrInvalidIDNumber
	}
	birthDay := NormalizeDate(birthDate)

	citizen, err := s.repo.FindByNationalIDAndBirthDate(ctx, id, birthDay)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if citizen != nil {
		count, cErr := s.bookingRepo.CountByCitizenID(ctx, citizen.ID)
		if cErr != nil {
			return nil, cErr
		}
		return &LoginResult{Citizen: citizen, Existed: true, HasBookings: count > 0}, nil
	}

	newCitizen := models.Citizen{NationalID: id, BirthDate: birthDay}
	if err := s.repo.Create(ctx, &newCitizen); err != nil {
		configslog.Log.Error("Vatandaş kaydı oluşturulamadı", zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Yeni vatandaş kaydı oluşturuldu: ID %d", newCitizen.ID)
	return &LoginResult{Citizen: &newCitizen, Existed: false, HasBookings: false}, nil
}

// GetCitizen vatandaşı ID ile getirir.
func (s *CitizenService) GetCitizen(ctx context.Context, id uint) (*models.Citizen, error) {
	if id == 0 {
		return nil, ErrCitizenInvalidInput
	}
	citizen, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCitizenNotFound
		}
		return nil, err
	}
	return citizen, nil
}

// UpdateProfile yalnızca gönderilen profil alanlarını günceller.
func (s *CitizenService) UpdateProfile(ctx context.Context, id uint, update ProfileUpdate) error {
	if id == 0 {
		return ErrCitizenInvalidInput
	}

	citizen, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCitizenNotFound
		}
		return err
	}

	if update.FullName != nil {
		citizen.FullName = *update.FullName
	}
	if update.Phone != nil {
		citizen.Phone = *update.Phone
	}
	if update.HealthCardNo != nil {
		citizen.HealthCardNo = *update.HealthCardNo
	}

	if err := s.repo.Update(ctx, citizen); err != nil {
		configslog.Log.Error("Vatandaş profili güncellenemedi", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

var _ ICitizenService = (*CitizenService)(nil)
