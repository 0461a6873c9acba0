package service

import (
	"github.com/logilink/logilink-client/internal/adapter"
	"github.com/logilink/logilink-client/internal/session"
	"github.com/logilink/logilink-client/internal/store"
)

type ClientServices struct {
	AuthService        ClientAuthService
	MarketplaceService MarketplaceService
	ReferenceService   ReferenceService
	ReferenceJob       ReferenceJob
	CalcService        CalcService
}

func NewClientServices(localStore *store.ClientStorages, backendAdapter adapter.BackendAdapter, sessions *session.Store, deviceType string) *ClientServices {
	referenceSvc := NewClientReferenceService(backendAdapter)

	return &ClientServices{
		AuthService:        NewClientAuthService(localStore, backendAdapter, sessions, deviceType),
		MarketplaceService: NewClientMarketplaceService(backendAdapter),
		ReferenceService:   referenceSvc,
		ReferenceJob:       NewClientReferenceJob(referenceSvc),
		CalcService:        NewClientCalcService(),
	}
}
