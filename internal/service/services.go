package service

import (
	"github.com/marketcore/vendor-shipping/internal/config"
	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/store"
)

type Services struct {
	AuthService           AuthService
	SellerService         SellerService
	ShippingOptionService ShippingOptionService
	AppInfoService        AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:           NewAuthService(storages.SellerRepository, cfg.App, logger),
		SellerService:         NewSellerService(storages.SellerRepository, logger),
		ShippingOptionService: NewShippingOptionService(storages.ShippingOptionRepository, storages.ServiceZoneRepository, storages.LinkRepository, logger),
		AppInfoService:        appInfoService,
	}, nil
}
