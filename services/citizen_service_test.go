package services

import (
	"context"
	"testing"
	"time"

	"randevu.link/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CitizenServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service ICitizenService
	ctx     context.Context
}

func (s *CitizenServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.service = newTestCitizenService(s.db)
	s.ctx = context.Background()
}

func (s *CitizenServiceTestSuite) TestLoginCreatesOnFirstVisit() {
	birthDate := time.Date(1985, 3, 22, 0, 0, 0, 0, time.UTC)

	result, err := s.service.Login(s.ctx, "52998224725", birthDate)
	s.Require().NoError(err)
	s.False(result.Existed)
	s.False(result.HasBookings)
	s.Equal("52998224725", result.Citizen.NationalID)
	s.Equal(birthDate, result.Citizen.BirthDate)
}

func (s *CitizenServiceTestSuite) TestLoginFindsExistingRecord() {
	birthDate := time.Date(1985, 3, 22, 0, 0, 0, 0, time.UTC)

	first, err := s.service.Login(s.ctx, "52998224725", birthDate)
	s.Require().NoError(err)

	second, err := s.service.Login(s.ctx, "52998224725", birthDate)
	s.Require().NoError(err)
	s.True(second.Existed)
	s.Equal(first.Citizen.ID, second.Citizen.ID)
}

func (s *CitizenServiceTestSuite) TestLoginNormalizesFormattedNumber() {
	birthDate := time.Date(1985, 3, 22, 0, 0, 0, 0, time.UTC)

	result, err := s.service.Login(s.ctx, "529.982.247-25", birthDate)
	s.Require().NoError(err)
	s.Equal("52998224725", result.Citizen.NationalID)
}

func (s *CitizenServiceTestSuite) TestLoginRejectsInvalidNumber() {
	birthDate := time.Date(1985, 3, 22, 0, 0, 0, 0, time.UTC)

	_, err := s.service.Login(s.ctx, "52998224724", birthDate)
	s.Require().ErrorIs(err, ErrInvalidIDNumber)

	_, err = s.service.Login(s.ctx, "11111111111", birthDate)
	s.Require().ErrorIs(err, ErrInvalidIDNumber)

	// Geçersiz deneme kayıt oluşturmamış olmalı.
	var count int64
	s.Require().NoError(s.db.Model(&models.Citizen{}).Count(&count).Error)
	s.EqualValues(0, count)
}

func (s *CitizenServiceTestSuite) TestLoginReportsExistingBookings() {
	birthDate := time.Date(1985, 3, 22, 0, 0, 0, 0, time.UTC)

	result, err := s.service.Login(s.ctx, "52998224725", birthDate)
	s.Require().NoError(err)

	unit, svc := seedCatalog(s.T(), s.db)
	date := NormalizeDate(time.Now().UTC().AddDate(0, 0, 1))

	ledger := newTestLedgerService(s.db)
	_, err = ledger.CreateSlot(s.ctx, unit.ID, svc.ID, date, models.ShiftMorning, 2)
	s.Require().NoError(err)

	booking := newTestBookingService(s.db)
	_, err = booking.CreateBooking(s.ctx, result.Citizen.ID, unit.ID, svc.ID, date, models.ShiftMorning)
	s.Require().NoError(err)

	again, err := s.service.Login(s.ctx, "52998224725", birthDate)
	s.Require().NoError(err)
	s.True(again.HasBookings)
}

func (s *CitizenServiceTestSuite) TestUpdateProfilePartial() {
	birthDate := time.Date(1985, 3, 22, 0, 0, 0, 0, time.UTC)

	result, err := s.service.Login(s.ctx, "52998224725", birthDate)
	s.Require().NoError(err)

	fullName := "Ayşe Yılmaz"
	phone := "+90 555 111 22 33"
	s.Require().NoError(s.service.UpdateProfile(s.ctx, result.Citizen.ID, ProfileUpdate{
		FullName: &fullName,
		Phone:    &phone,
	}))

	citizen, err := s.service.GetCitizen(s.ctx, result.Citizen.ID)
	s.Require().NoError(err)
	s.Equal(fullName, citizen.FullName)
	s.Equal(phone, citizen.Phone)

	// Nil alanlar dokunulmadan kalır.
	cardNo := "1234567890"
	s.Require().NoError(s.service.UpdateProfile(s.ctx, result.Citizen.ID, ProfileUpdate{
		HealthCardNo: &cardNo,
	}))

	citizen, err = s.service.GetCitizen(s.ctx, result.Citizen.ID)
	s.Require().NoError(err)
	s.Equal(fullName, citizen.FullName)
	s.Equal(cardNo, citizen.HealthCardNo)
}

func (s *CitizenServiceTestSuite) TestUpdateProfileNotFound() {
	fullName := "Ayşe Yılmaz"
	err := s.service.UpdateProfile(s.ctx, 9999, ProfileUpdate{FullName: &fullName})
	s.Require().ErrorIs(err, ErrCitizenNotFound)
}

func (s *CitizenServiceTestSuite) TestGetCitizenNotFound() {
	_, err := s.service.GetCitizen(s.ctx, 9999)
	s.Require().ErrorIs(err, ErrCitizenNotFound)
}

func TestCitizenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CitizenServiceTestSuite))
}
