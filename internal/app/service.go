package app

import (
	"overlay-config/internal/adapters"
	"overlay-config/internal/core"
	"overlay-config/internal/ports"
)

type Service struct {
	Scanner ports.ScannerPort
	Policy  ports.PolicySourcePort
	cache   *configCache
}

func NewService() *Service {
	return &Service{
		Scanner: adapters.NewOverlayScannerAdapter(),
		Policy:  adapters.NewOverlayConfigXMLAdapter(),
		cache:   newConfigCache(),
	}
}

func (s *Service) resolver() core.Resolver {
	return core.NewResolver(s.Scanner, s.Policy)
}
