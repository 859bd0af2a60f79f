package services

import (
	"context"
	"errors"
	"time"

	"randevu.link/configs"
	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/metrics"
	"randevu.link/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BookingServiceError randevu kayıt servisinin özel hataları.
type BookingServiceError string

func (e BookingServiceError) Error() string { return string(e) }

// Hata sabitleri
const (
	ErrDuplicateBookingSameDay BookingServiceError = "bu tarih için zaten aktif bir randevunuz var"
	ErrBookingNotFound         BookingServiceError = "randevu bulunamadı"
	ErrNotCancellable          BookingServiceError = "randevu iptal edilebilir durumda değil"
	ErrNotCompletable          BookingServiceError = "randevu tamamlanabilir durumda değil"
	ErrBookingCreationFailed   BookingServiceError = "randevu oluşturulamadı"
	ErrBookingInvalidInput     BookingServiceError = "geçersiz randevu girdisi"
)

// IBookingService randevu kayıt işlemleri için arayüz.
// Durum makinesi: confirmed -> cancelled (kontenjan iade edilir) veya
// confirmed -> completed (kontenjan etkilenmez); terminal durumlardan çıkış yoktur.
type IBookingService interface {
	CreateBooking(ctx context.Context, citizenID, unitID, serviceID uint, date time.Time, shift models.Shift) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID uint) error
	CompleteBooking(ctx context.Context, bookingID uint) error
	GetBookingsForCitizen(ctx context.Context, citizenID uint) ([]models.Booking, error)
	GetBookingsFiltered(ctx context.Context, unitID uint, from, to *time.Time) ([]models.Booking, error)
}

// BookingService IBookingService arayüzünü uygular.
type BookingService struct {
	repo   repositories.IBookingRepository
	ledger ILedgerService
	db     *gorm.DB
}

// NewBookingService yeni bir BookingService örneği oluşturur.
func NewBookingService() IBookingService {
	return &BookingService{
		repo:   repositories.NewBookingRepository(),
		ledger: NewLedgerService(),
		db:     configs.GetDB(),
	}
}

// CreateBooking aynı transaction içinde üç adımı yürütür:
//  1. aynı gün kontrolü (erken ve anlaşılır hata için),
//  2. kontenjan defterinden rezervasyon (koşullu azaltma),
//  3. randevu kaydının eklenmesi.
//
// Aynı vatandaş/tarih için yarışan ikinci bir istek adım 1'i geçse bile
// adım 3'te kısmi unique index'e takılır; transaction geri alınır ve adım
// 2'deki azaltma da onunla birlikte geri döner. Kontenjan azaltması ile
// randevu kaydı hiçbir durumda birbirinden ayrı commit edilmez.
func (s *BookingService) CreateBooking(ctx context.Context, citizenID, unitID, serviceID uint, date time.Time, shift models.Shift) (*models.Booking, error) {
	if citizenID == 0 || unitID == 0 || serviceID == 0 || !shift.IsValid() {
		return nil, ErrBookingInvalidInput
	}
	day := NormalizeDate(date)

	var created *models.Booking
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithTx(ctx, tx)
		repoTx := repositories.NewBookingRepositoryTx(tx)

		exists, err := repoTx.ExistsConfirmedForDay(txCtx, citizenID, day)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateBookingSameDay
		}

		if err := s.ledger.Reserve(txCtx, unitID, serviceID, day, shift); err != nil {
			return err // ErrNoCapacity aynen yukarı taşınır
		}

		booking := models.Booking{
			Reference:  uuid.NewString(),
			CitizenID:  citizenID,
			CareUnitID: unitID,
			ServiceID:  serviceID,
			Date:       day,
			Shift:      shift,
			Status:     models.BookingStatusConfirmed,
		}
		if err := repoTx.Create(txCtx, &booking); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Yarışı kaybeden istek: index engelledi, rollback azaltmayı geri alır.
				return ErrDuplicateBookingSameDay
			}
			configslog.Log.Error("Randevu kaydı eklenirken transaction hatası", zap.Error(err))
			return ErrBookingCreationFailed
		}

		created = &booking
		return nil // Commit
	})

	if txErr != nil {
		if errors.Is(txErr, ErrDuplicateBookingSameDay) {
			metrics.DuplicateRejections.Inc()
		}
		return nil, txErr
	}

	metrics.BookingsCreated.Inc()
	configslog.SLog.Infof("Randevu oluşturuldu: ref %s, vatandaş %d, birim %d, %s %s",
		created.Reference, citizenID, unitID, day.Format(DateLayout), shift)
	return created, nil
}

// CancelBooking randevuyu iptal eder ve kontenjanı iade eder. Durum geçişi
// koşullu UPDATE ile yapılır: kayıt yoksa ErrBookingNotFound, confirmed
// değilse ErrNotCancellable döner. İade sırasında slotun bulunamaması bir
// veri bütünlüğü anomalisidir; loglanır ama iptalin commit edilmesini
// engellemez, vatandaşın randevusu her koşulda serbest bırakılır.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uint) error {
	if bookingID == 0 {
		return ErrBookingInvalidInput
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextWithTx(ctx, tx)
		repoTx := repositories.NewBookingRepositoryTx(tx)

		booking, err := repoTx.FindByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		rows, err := repoTx.UpdateStatusIf(txCtx, bookingID, models.BookingStatusConfirmed, models.BookingStatusCancelled)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrNotCancellable
		}

		releaseErr := s.ledger.Release(txCtx, booking.CareUnitID, booking.ServiceID, booking.Date, booking.Shift)
		if releaseErr != nil && !errors.Is(releaseErr, ErrReleaseAnomaly) {
			return releaseErr // Gerçek store hatası: iptal de geri alınır.
		}

		return nil // Commit (anomali durumunda da)
	})

	if txErr != nil {
		if !errors.Is(txErr, ErrBookingNotFound) && !errors.Is(txErr, ErrNotCancellable) {
			configslog.Log.Error("CancelBooking transaction failed", zap.Uint("bookingID", bookingID), zap.Error(txErr))
		}
		return txErr
	}

	metrics.BookingsCancelled.Inc()
	configslog.SLog.Infof("Randevu iptal edildi: ID %d", bookingID)
	return nil
}

// CompleteBooking muayenenin gerçekleştiğini işaretler (yönetici geçişi).
// Kontenjan üzerinde etkisi yoktur.
func (s *BookingService) CompleteBooking(ctx context.Context, bookingID uint) error {
	if bookingID == 0 {
		return ErrBookingInvalidInput
	}

	rows, err := s.repo.UpdateStatusIf(ctx, bookingID, models.BookingStatusConfirmed, models.BookingStatusCompleted)
	if err != nil {
		return err
	}
	if rows == 0 {
		if _, findErr := s.repo.FindByID(ctx, bookingID); errors.Is(findErr, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		return ErrNotCompletable
	}

	configslog.SLog.Infof("Randevu tamamlandı olarak işaretlendi: ID %d", bookingID)
	return nil
}

// GetBookingsForCitizen vatandaşın randevularını ilişkili kayıtlarla getirir.
func (s *BookingService) GetBookingsForCitizen(ctx context.Context, citizenID uint) ([]models.Booking, error) {
	if citizenID == 0 {
		return nil, ErrBookingInvalidInput
	}
	return s.repo.FindAllByCitizen(ctx, citizenID)
}

// GetBookingsFiltered yönetici listelemesi için filtreli randevu listesi döndürür.
func (s *BookingService) GetBookingsFiltered(ctx context.Context, unitID uint, from, to *time.Time) ([]models.Booking, error) {
	return s.repo.FindAllFiltered(ctx, unitID, from, to)
}

var _ IBookingService = (*BookingService)(nil)
