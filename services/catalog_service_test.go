package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service ICatalogService
	ctx     context.Context
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.service = newTestCatalogService(s.db)
	s.ctx = context.Background()
}

func (s *CatalogServiceTestSuite) TestCreateCityAndList() {
	city, err := s.service.CreateCity(s.ctx, "Ankara")
	s.Require().NoError(err)
	s.NotZero(city.ID)

	_, err = s.service.CreateCity(s.ctx, "Ankara")
	s.Require().ErrorIs(err, ErrCityExists)

	_, err = s.service.CreateCity(s.ctx, "")
	s.Require().ErrorIs(err, ErrCatalogInvalidInput)

	cities, err := s.service.ListCities(s.ctx)
	s.Require().NoError(err)
	s.Len(cities, 1)
}

func (s *CatalogServiceTestSuite) TestCreateUnitRequiresCity() {
	_, err := s.service.CreateUnit(s.ctx, "Merkez ASM", "Adres", 9999)
	s.Require().ErrorIs(err, ErrCityNotFound)

	city, err := s.service.CreateCity(s.ctx, "İzmir")
	s.Require().NoError(err)

	unit, err := s.service.CreateUnit(s.ctx, "Konak ASM", "Mithatpaşa Cad.", city.ID)
	s.Require().NoError(err)
	s.Equal(city.ID, unit.CityID)

	units, err := s.service.ListUnits(s.ctx, city.ID)
	s.Require().NoError(err)
	s.Len(units, 1)

	// Bilinmeyen şehir için boş liste döner, hata değil.
	units, err = s.service.ListUnits(s.ctx, 9999)
	s.Require().NoError(err)
	s.Empty(units)
}

func (s *CatalogServiceTestSuite) TestAssignServiceToUnit() {
	city, err := s.service.CreateCity(s.ctx, "İstanbul")
	s.Require().NoError(err)
	unit, err := s.service.CreateUnit(s.ctx, "Merkez ASM", "Cumhuriyet Cad.", city.ID)
	s.Require().NoError(err)
	svc, err := s.service.CreateService(s.ctx, "Aşı", "Rutin aşı uygulamaları")
	s.Require().NoError(err)

	s.Require().NoError(s.service.AssignServiceToUnit(s.ctx, unit.ID, svc.ID))

	// Aynı ilişki ikinci kez kurulamaz.
	err = s.service.AssignServiceToUnit(s.ctx, unit.ID, svc.ID)
	s.Require().ErrorIs(err, ErrServiceAlreadyAssigned)

	services, err := s.service.ListServicesOfUnit(s.ctx, unit.ID)
	s.Require().NoError(err)
	s.Require().Len(services, 1)
	s.Equal(svc.ID, services[0].ID)
}

func (s *CatalogServiceTestSuite) TestAssignServiceUnknownTargets() {
	city, err := s.service.CreateCity(s.ctx, "İstanbul")
	s.Require().NoError(err)
	unit, err := s.service.CreateUnit(s.ctx, "Merkez ASM", "Cumhuriyet Cad.", city.ID)
	s.Require().NoError(err)

	err = s.service.AssignServiceToUnit(s.ctx, 9999, 1)
	s.Require().ErrorIs(err, ErrUnitNotFound)

	err = s.service.AssignServiceToUnit(s.ctx, unit.ID, 9999)
	s.Require().ErrorIs(err, ErrServiceNotFound)
}

func (s *CatalogServiceTestSuite) TestCreateServiceDuplicateName() {
	_, err := s.service.CreateService(s.ctx, "Aşı", "")
	s.Require().NoError(err)

	_, err = s.service.CreateService(s.ctx, "Aşı", "Tekrar")
	s.Require().ErrorIs(err, ErrServiceExists)
}

func (s *CatalogServiceTestSuite) TestListServicesOfUnknownUnit() {
	_, err := s.service.ListServicesOfUnit(s.ctx, 9999)
	s.Require().ErrorIs(err, ErrUnitNotFound)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
