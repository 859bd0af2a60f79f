package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"randevu.link/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type BookingServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service IBookingService
	ledger  ILedgerService
	unit    *models.CareUnit
	svc     *models.Service
	citizen *models.Citizen
	date    time.Time
	ctx     context.Context
}

func (s *BookingServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.service = newTestBookingService(s.db)
	s.ledger = newTestLedgerService(s.db)
	s.unit, s.svc = seedCatalog(s.T(), s.db)
	s.citizen = seedCitizen(s.T(), s.db, "52998224725")
	s.date = NormalizeDate(time.Now().UTC().AddDate(0, 0, 1))
	s.ctx = context.Background()
}

func (s *BookingServiceTestSuite) createSlot(shift models.Shift, total int) {
	_, err := s.ledger.CreateSlot(s.ctx, s.unit.ID, s.svc.ID, s.date, shift, total)
	s.Require().NoError(err)
}

func (s *BookingServiceTestSuite) available(shift models.Shift) int {
	var slot models.Slot
	err := s.db.Where("care_unit_id = ? AND service_id = ? AND date = ? AND shift = ?",
		s.unit.ID, s.svc.ID, s.date, shift).First(&slot).Error
	s.Require().NoError(err)
	return slot.Available
}

func (s *BookingServiceTestSuite) TestCreateBooking() {
	s.createSlot(models.ShiftMorning, 2)

	booking, err := s.service.CreateBooking(s.ctx, s.citizen.ID, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().NoError(err)
	s.NotEmpty(booking.Reference)
	s.Equal(models.BookingStatusConfirmed, booking.Status)
	s.Equal(s.date, booking.Date)

	// Rezervasyon kontenjanı bir düşürür.
	s.Equal(1, s.available(models.ShiftMorning))
}

func (s *BookingServiceTestSuite) TestCreateBookingNoCapacity() {
	s.createSlot(models.ShiftMorning, 1)

	_, err := s.service.CreateBooking(s.ctx, s.citizen.ID, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().NoError(err)

	other := seedCitizen(s.T(), s.db, "11144477735")
	_, err = s.service.CreateBooking(s.ctx, other.ID, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().ErrorIs(err, ErrNoCapacity)
	s.Equal(0, s.available(models.ShiftMorning))
}

func (s *BookingServiceTestSuite) TestCreateBookingMissingSlot() {
	_, err := s.service.CreateBooking(s.ctx, s.citizen.ID, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().ErrorIs(err, ErrNoCapacity)
}

func (s *BookingServiceTestSuite) TestCreateBookingDuplicateSameDay() {
	s.createSlot(models.ShiftMorning, 5)
	s.createSlot(models.ShiftAfternoon, 5)

	_, err := s.service.CreateBooking(s.ctx, s.citizen.ID, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().NoError(err)

	// Aynı gün, farklı vardiya da olsa ikinci randevu reddedilir.
	_, err = s.service.CreateBooking(s.ctx, s.citizen.ID, s.unit.ID, s.svc.ID, s.date, models.ShiftAfternoon)
	s.Require().ErrorIs(err, ErrDuplicateBookingSameDay)

	// Reddedilen istek kontenjan tüketmemiş olmalı.
	s.Equal(5, s.available(models.ShiftAfternoon))
}

func (s *BookingServiceTestSuite) TestCreateBookingInvalidInput() {
	_, err := s.service.CreateBooking(s.ctx, 0, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().ErrorIs(err, ErrBookingInvalidInput)

	_, err = s.service.CreateBooking(s.ctx, s.citizen.ID, s.unit.ID, s.svc.ID, s.date, models.Shift("gece"))
	s.Require().ErrorIs(err, ErrBookingInvalidInput)
}

func (s *BookingServiceTestSuite) TestConcurrentBookingsRespectCapacity() {
	const capacity = 5
	const attempts = 6
	s.createSlot(models.ShiftMorning, capacity)

	citizens := make([]*models.Citizen, attempts)
	for i := range citizens {
		citizens[i] = seedCitizen(s.T(), s.db, fmt.Sprintf("900000000%02d", i))
	}

	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.service.CreateBooking(s.ctx, citizens[i].ID, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	rejected := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case err == ErrNoCapacity:
			rejected++
		default:
			s.FailNowf("beklenmeyen hata", "%v", err)
		}
	}

	s.Equal(capacity, succeeded)
	s.Equal(attempts-capacity, rejected)
	s.Equal(0, s.available(models.ShiftMorning))

	var count int64
	s.Require().NoError(s.db.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusConfirmed).Count(&count).Error)
	s.EqualValues(capacity, count)
}

func (s *BookingServiceTestSuite) TestConcurrentSameCitizenSingleWinner() {
	s.createSlot(models.ShiftMorning, 5)

	const attempts = 4
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.service.CreateBooking(s.ctx, s.citizen.ID, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			s.Require().ErrorIs(err, ErrDuplicateBookingSameDay)
		}
	}

	s.Equal(1, succeeded)
	// Kaybeden isteklerin rezervasyonları geri alınmış olmalı.
	s.Equal(4, s.available(models.ShiftMorning))
}

func (s *BookingServiceTestSuite) TestCancelBookingRestoresCapacity() {
	s.createSlot(models.ShiftMorning, 2)

	booking, err := s.service.CreateBooking(s.ctx, s.citizen.ID, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().NoError(err)
	s.Equal(1, s.available(models.ShiftMorning))

	s.Require().NoError(s.service.CancelBooking(s.ctx, booking.ID))
	s.Equal(2, s.available(models.ShiftMorning))

	var cancelled models.Booking
	s.Require().NoError(s.db.First(&cancelled, booking.ID).Error)
	s.Equal(models.BookingStatusCancelled, cancelled.Status)

	// İptal edilen gün yeniden randevuya açılır.
	_, err = s.service.CreateBooking(s.ctx, s.citizen.ID, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().NoError(err)
}

func (s *BookingServiceTestSuite) TestCancelBookingTwice() {
	s.createSlot(models.ShiftMorning, 2)

	booking, err := s.service.CreateBooking(s.ctx, s.citizen.ID, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().NoError(err)

	s.Require().NoError(s.service.CancelBooking(s.ctx, booking.ID))
	err = s.service.CancelBooking(s.ctx, booking.ID)
	s.Require().ErrorIs(err, ErrNotCancellable)

	// İkinci iptal kontenjanı bir daha artırmamış olmalı.
	s.Equal(2, s.available(models.ShiftMorning))
}

func (s *BookingServiceTestSuite) TestCancelBookingNotFound() {
	err := s.service.CancelBooking(s.ctx, 9999)
	s.Require().ErrorIs(err, ErrBookingNotFound)
}

func (s *BookingServiceTestSuite) TestCompleteBooking() {
	s.createSlot(models.ShiftMorning, 2)

	booking, err := s.service.CreateBooking(s.ctx, s.citizen.ID, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().NoError(err)

	s.Require().NoError(s.service.CompleteBooking(s.ctx, booking.ID))

	var completed models.Booking
	s.Require().NoError(s.db.First(&completed, booking.ID).Error)
	s.Equal(models.BookingStatusCompleted, completed.Status)

	// Tamamlama kontenjanı iade etmez.
	s.Equal(1, s.available(models.ShiftMorning))

	// Terminal durumdan çıkış yoktur.
	s.Require().ErrorIs(s.service.CancelBooking(s.ctx, booking.ID), ErrNotCancellable)
	s.Require().ErrorIs(s.service.CompleteBooking(s.ctx, booking.ID), ErrNotCompletable)
}

func (s *BookingServiceTestSuite) TestCompleteBookingNotFound() {
	err := s.service.CompleteBooking(s.ctx, 9999)
	s.Require().ErrorIs(err, ErrBookingNotFound)
}

func (s *BookingServiceTestSuite) TestGetBookingsForCitizen() {
	s.createSlot(models.ShiftMorning, 2)
	s.createSlot(models.ShiftAfternoon, 2)

	booking, err := s.service.CreateBooking(s.ctx, s.citizen.ID, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().NoError(err)
	s.Require().NoError(s.service.CancelBooking(s.ctx, booking.ID))

	_, err = s.service.CreateBooking(s.ctx, s.citizen.ID, s.unit.ID, s.svc.ID, s.date, models.ShiftAfternoon)
	s.Require().NoError(err)

	// İptal edilenler de listede görünür; ilişkiler yüklenir.
	bookings, err := s.service.GetBookingsForCitizen(s.ctx, s.citizen.ID)
	s.Require().NoError(err)
	s.Require().Len(bookings, 2)
	s.Equal(s.unit.Name, bookings[0].CareUnit.Name)
	s.Equal(s.svc.Name, bookings[0].Service.Name)
}

func TestBookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}
