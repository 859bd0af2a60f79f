package services

import (
	"context"
	"testing"
	"time"

	"randevu.link/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service ILedgerService
	unit    *models.CareUnit
	svc     *models.Service
	date    time.Time
	ctx     context.Context
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.service = newTestLedgerService(s.db)
	s.unit, s.svc = seedCatalog(s.T(), s.db)
	s.date = NormalizeDate(time.Now().UTC().AddDate(0, 0, 1))
	s.ctx = context.Background()
}

func (s *LedgerServiceTestSuite) slotAvailability(shift models.Shift) (int, int) {
	var slot models.Slot
	err := s.db.Where("care_unit_id = ? AND service_id = ? AND date = ? AND shift = ?",
		s.unit.ID, s.svc.ID, s.date, shift).First(&slot).Error
	s.Require().NoError(err)
	return slot.Available, slot.Total
}

func (s *LedgerServiceTestSuite) TestCreateSlotStartsFull() {
	slot, err := s.service.CreateSlot(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning, 5)
	s.Require().NoError(err)
	s.Equal(5, slot.Available)
	s.Equal(5, slot.Total)
}

func (s *LedgerServiceTestSuite) TestCreateSlotDuplicateTuple() {
	_, err := s.service.CreateSlot(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning, 5)
	s.Require().NoError(err)

	_, err = s.service.CreateSlot(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning, 3)
	s.Require().ErrorIs(err, ErrSlotExists)

	// Farklı vardiya ayrı slottur.
	_, err = s.service.CreateSlot(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftAfternoon, 3)
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TestCreateSlotInvalidInput() {
	_, err := s.service.CreateSlot(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning, 0)
	s.Require().ErrorIs(err, ErrLedgerInvalidInput)

	_, err = s.service.CreateSlot(s.ctx, s.unit.ID, s.svc.ID, s.date, models.Shift("evening"), 5)
	s.Require().ErrorIs(err, ErrLedgerInvalidInput)
}

func (s *LedgerServiceTestSuite) TestReserveDecrementsUntilExhausted() {
	_, err := s.service.CreateSlot(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning, 3)
	s.Require().NoError(err)

	for i := 0; i < 3; i++ {
		s.Require().NoError(s.service.Reserve(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning))
	}

	available, _ := s.slotAvailability(models.ShiftMorning)
	s.Equal(0, available)

	err = s.service.Reserve(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().ErrorIs(err, ErrNoCapacity)

	// available hiçbir koşulda negatife inmez.
	available, _ = s.slotAvailability(models.ShiftMorning)
	s.Equal(0, available)
}

func (s *LedgerServiceTestSuite) TestReserveUnknownSlot() {
	err := s.service.Reserve(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().ErrorIs(err, ErrNoCapacity)
}

func (s *LedgerServiceTestSuite) TestReleaseRestoresCapacity() {
	_, err := s.service.CreateSlot(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning, 2)
	s.Require().NoError(err)

	s.Require().NoError(s.service.Reserve(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning))
	s.Require().NoError(s.service.Release(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning))

	available, total := s.slotAvailability(models.ShiftMorning)
	s.Equal(total, available)
}

func (s *LedgerServiceTestSuite) TestReleaseAtTotalIsAnomaly() {
	_, err := s.service.CreateSlot(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning, 2)
	s.Require().NoError(err)

	// Rezervasyonsuz iade: tavan aşılmaz, anomali döner.
	err = s.service.Release(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().ErrorIs(err, ErrReleaseAnomaly)

	available, total := s.slotAvailability(models.ShiftMorning)
	s.Equal(total, available)
}

func (s *LedgerServiceTestSuite) TestReleaseUnknownSlotIsAnomaly() {
	err := s.service.Release(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning)
	s.Require().ErrorIs(err, ErrReleaseAnomaly)
}

func (s *LedgerServiceTestSuite) TestQueryAvailabilityGroupsByDate() {
	day2 := s.date.AddDate(0, 0, 1)

	_, err := s.service.CreateSlot(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftMorning, 2)
	s.Require().NoError(err)
	_, err = s.service.CreateSlot(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftAfternoon, 1)
	s.Require().NoError(err)
	_, err = s.service.CreateSlot(s.ctx, s.unit.ID, s.svc.ID, day2, models.ShiftMorning, 1)
	s.Require().NoError(err)

	// Öğleden sonra kontenjanı tüketilir; listeden düşmelidir.
	s.Require().NoError(s.service.Reserve(s.ctx, s.unit.ID, s.svc.ID, s.date, models.ShiftAfternoon))

	dates, err := s.service.QueryAvailability(s.ctx, s.unit.ID, s.svc.ID, s.date)
	s.Require().NoError(err)
	s.Require().Len(dates, 2)

	s.Equal(s.date.Format(DateLayout), dates[0].Date)
	s.Require().Contains(dates[0].Shifts, models.ShiftMorning)
	s.NotContains(dates[0].Shifts, models.ShiftAfternoon)
	s.Equal(2, dates[0].Shifts[models.ShiftMorning].Available)

	s.Equal(day2.Format(DateLayout), dates[1].Date)
	s.Require().Contains(dates[1].Shifts, models.ShiftMorning)
}

func (s *LedgerServiceTestSuite) TestQueryAvailabilityExcludesPastDates() {
	past := s.date.AddDate(0, 0, -7)
	_, err := s.service.CreateSlot(s.ctx, s.unit.ID, s.svc.ID, past, models.ShiftMorning, 2)
	s.Require().NoError(err)

	dates, err := s.service.QueryAvailability(s.ctx, s.unit.ID, s.svc.ID, s.date)
	s.Require().NoError(err)
	s.Empty(dates)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
