package services

import (
	"context"
	"testing"

	"randevu.link/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AdminServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service IAdminService
	ctx     context.Context
}

func (s *AdminServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.service = newTestAdminService(s.db)
	s.ctx = context.Background()
}

func (s *AdminServiceTestSuite) TestCreateAdminAndLogin() {
	admin, err := s.service.CreateAdmin(s.ctx, "yonetici", "gizli123", models.AdminRoleSuper, nil)
	s.Require().NoError(err)
	s.NotEqual("gizli123", admin.PasswordHash)

	token, logged, err := s.service.Login(s.ctx, "yonetici", "gizli123")
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.Equal(admin.ID, logged.ID)

	claims, err := s.service.VerifyToken(token)
	s.Require().NoError(err)
	s.Equal(admin.ID, claims.AdminID)
	s.Equal(models.AdminRoleSuper, claims.Role)
	s.Nil(claims.CareUnitID)
}

func (s *AdminServiceTestSuite) TestLoginWrongPassword() {
	_, err := s.service.CreateAdmin(s.ctx, "yonetici", "gizli123", models.AdminRoleSuper, nil)
	s.Require().NoError(err)

	_, _, err = s.service.Login(s.ctx, "yonetici", "yanlis")
	s.Require().ErrorIs(err, ErrAdminInvalidCredentials)

	// Bilinmeyen kullanıcı aynı hatayla döner.
	_, _, err = s.service.Login(s.ctx, "bilinmeyen", "gizli123")
	s.Require().ErrorIs(err, ErrAdminInvalidCredentials)
}

func (s *AdminServiceTestSuite) TestCreateAdminValidation() {
	_, err := s.service.CreateAdmin(s.ctx, "yonetici", "kisa", models.AdminRoleSuper, nil)
	s.Require().ErrorIs(err, ErrAdminPasswordTooShort)

	// UnitManager rolü birim gerektirir.
	_, err = s.service.CreateAdmin(s.ctx, "birimci", "gizli123", models.AdminRoleUnitManager, nil)
	s.Require().ErrorIs(err, ErrAdminInvalidInput)

	unitID := uint(3)
	manager, err := s.service.CreateAdmin(s.ctx, "birimci", "gizli123", models.AdminRoleUnitManager, &unitID)
	s.Require().NoError(err)
	s.Require().NotNil(manager.CareUnitID)
	s.Equal(unitID, *manager.CareUnitID)

	_, err = s.service.CreateAdmin(s.ctx, "birimci", "gizli123", models.AdminRoleUnitManager, &unitID)
	s.Require().ErrorIs(err, ErrAdminUsernameExists)
}

func (s *AdminServiceTestSuite) TestVerifyTokenInvalid() {
	_, err := s.service.VerifyToken("bozuk.token.degeri")
	s.Require().ErrorIs(err, ErrAdminInvalidToken)

	// Başka anahtarla imzalanmış belirteç reddedilir.
	claims := AdminClaims{AdminID: 1, Role: models.AdminRoleSuper}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("baska-anahtar"))
	s.Require().NoError(err)

	_, err = s.service.VerifyToken(foreign)
	s.Require().ErrorIs(err, ErrAdminInvalidToken)
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
