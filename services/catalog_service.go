package services

import (
	"context"
	"errors"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/repositories"

	"go.uber.org/zap"
)

// CatalogServiceError katalog servisi özel hataları.
type CatalogServiceError string

func (e CatalogServiceError) Error() string { return string(e) }

// Hata sabitleri
const (
	ErrCityExists             CatalogServiceError = "bu isimde bir şehir zaten var"
	ErrCityNotFound           CatalogServiceError = "şehir bulunamadı"
	ErrUnitNotFound           CatalogServiceError = "sağlık birimi bulunamadı"
	ErrServiceExists          CatalogServiceError = "bu isimde bir hizmet zaten var"
	ErrServiceNotFound        CatalogServiceError = "hizmet bulunamadı"
	ErrServiceAlreadyAssigned CatalogServiceError = "hizmet bu birime zaten tanımlı"
	ErrCatalogInvalidInput    CatalogServiceError = "geçersiz katalog girdisi"
)

// ICatalogService şehir/birim/hizmet kataloğu işlemleri için arayüz.
// Katalog basit referans verisidir; isim benzersizliği dışında kural yoktur.
type ICatalogService interface {
	ListCities(ctx context.Context) ([]models.City, error)
	CreateCity(ctx context.Context, name string) (*models.City, error)
	ListUnits(ctx context.Context, cityID uint) ([]models.CareUnit, error)
	CreateUnit(ctx context.Context, name, address string, cityID uint) (*models.CareUnit, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, name, description string) (*models.Service, error)
	ListServicesOfUnit(ctx context.Context, unitID uint) ([]models.Service, error)
	AssignServiceToUnit(ctx context.Context, unitID, serviceID uint) error
}

// CatalogService ICatalogService arayüzünü uygular.
type CatalogService struct {
	cityRepo    repositories.ICityRepository
	unitRepo    repositories.ICareUnitRepository
	serviceRepo repositories.IServiceRepository
}

// NewCatalogService yeni bir CatalogService örneği oluşturur.
func NewCatalogService() ICatalogService {
	return &CatalogService{
		cityRepo:    repositories.NewCityRepository(),
		unitRepo:    repositories.NewCareUnitRepository(),
		serviceRepo: repositories.NewServiceRepository(),
	}
}

func (s *CatalogService) ListCities(ctx context.Context) ([]models.City, error) {
	return s.cityRepo.FindAll(ctx)
}

func (s *CatalogService) CreateCity(ctx context.Context, name string) (*models.City, error) {
	if name == "" {
		return nil, ErrCatalogInvalidInput
	}

	if _, err := s.cityRepo.FindByName(ctx, name); err == nil {
		return nil, ErrCityExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	city := models.City{Name: name}
	if err := s.cityRepo.Create(ctx, &city); err != nil {
		configslog.Log.Error("Şehir oluşturulamadı", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Şehir oluşturuldu: %s (ID %d)", name, city.ID)
	return &city, nil
}

// ListUnits cityID sıfırsa tüm birimleri, değilse şehre ait birimleri getirir.
func (s *CatalogService) ListUnits(ctx context.Context, cityID uint) ([]models.CareUnit, error) {
	if cityID == 0 {
		return s.unitRepo.FindAll(ctx)
	}
	return s.unitRepo.FindAllByCityID(ctx, cityID)
}

func (s *CatalogService) CreateUnit(ctx context.Context, name, address string, cityID uint) (*models.CareUnit, error) {
	if name == "" || cityID == 0 {
		return nil, ErrCatalogInvalidInput
	}

	if _, err := s.cityRepo.FindByID(ctx, cityID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}

	unit := models.CareUnit{Name: name, Address: address, CityID: cityID}
	if err := s.unitRepo.Create(ctx, &unit); err != nil {
		configslog.Log.Error("Sağlık birimi oluşturulamadı", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Sağlık birimi oluşturuldu: %s (ID %d)", name, unit.ID)
	return &unit, nil
}

func (s *CatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.serviceRepo.FindAll(ctx)
}

func (s *CatalogService) CreateService(ctx context.Context, name, description string) (*models.Service, error) {
	if name == "" {
		return nil, ErrCatalogInvalidInput
	}

	if _, err := s.serviceRepo.FindByName(ctx, name); err == nil {
		return nil, ErrServiceExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	service := models.Service{Name: name, Description: description}
	if err := s.serviceRepo.Create(ctx, &service); err != nil {
		configslog.Log.Error("Hizmet oluşturulamadı", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Hizmet oluşturuldu: %s (ID %d)", name, service.ID)
	return &service, nil
}

func (s *CatalogService) ListServicesOfUnit(ctx context.Context, unitID uint) ([]models.Service, error) {
	if unitID == 0 {
		return nil, ErrCatalogInvalidInput
	}
	services, err := s.unitRepo.FindServices(ctx, unitID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	return services, nil
}

// AssignServiceToUnit hizmeti birime bağlar; mevcut ilişki tekrarlanmaz.
func (s *CatalogService) AssignServiceToUnit(ctx context.Context, unitID, serviceID uint) error {
	if unitID == 0 || serviceID == 0 {
		return ErrCatalogInvalidInput
	}

	unit, err := s.unitRepo.FindByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUnitNotFound
		}
		return err
	}
	service, err := s.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrServiceNotFound
		}
		return err
	}

	assigned, err := s.unitRepo.HasService(ctx, unitID, serviceID)
	if err != nil {
		return err
	}
	if assigned {
		return ErrServiceAlreadyAssigned
	}

	if err := s.unitRepo.AppendService(ctx, unit, service); err != nil {
		configslog.Log.Error("Hizmet birime bağlanamadı",
			zap.Uint("unitID", unitID), zap.Uint("serviceID", serviceID), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Hizmet birime bağlandı: birim %d, hizmet %d", unitID, serviceID)
	return nil
}

var _ ICatalogService = (*CatalogService)(nil)
