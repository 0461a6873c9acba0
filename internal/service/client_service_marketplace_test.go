package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/logilink/logilink-client/internal/mock"
	"github.com/logilink/logilink-client/models"
)

func newTestMarketplaceSvc(t *testing.T, ctrl *gomock.Controller) (MarketplaceService, *mock.MockBackendAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	return NewClientMarketplaceService(mockAdapter), mockAdapter
}

func TestClientMarketplaceService_Loads_NilBecomesEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestMarketplaceSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListLoads(ctx).Return(nil, nil)

	posts, err := svc.Loads(ctx)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestClientMarketplaceService_Loads_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestMarketplaceSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListLoads(ctx).Return(nil, errors.New("bad gateway"))

	_, err := svc.Loads(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list loads")
}

func TestClientMarketplaceService_PostLoad_ReturnsCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestMarketplaceSvc(t, ctrl)
	ctx := context.Background()

	post := models.LoadPost{Origin: "Nagpur", Destination: "Pune", Material: "Steel"}
	mockAdapter.EXPECT().CreateLoad(ctx, post).DoAndReturn(
		func(_ context.Context, p models.LoadPost) (models.LoadPost, error) {
			p.ID = 101
			return p, nil
		},
	)

	created, err := svc.PostLoad(ctx, post)
	require.NoError(t, err)
	assert.Equal(t, int64(101), created.ID)
	assert.Equal(t, "Nagpur", created.Origin)
}

func TestClientMarketplaceService_Search_InvalidFilterType_NoNetworkCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestMarketplaceSvc(t, ctrl)

	_, err := svc.Search(context.Background(), models.SearchQuery{Keyword: "pune", FilterType: "cargo"})
	assert.ErrorIs(t, err, ErrInvalidFilterType)
}

func TestClientMarketplaceService_Search_NormalisesNilSlices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestMarketplaceSvc(t, ctrl)
	ctx := context.Background()

	q := models.SearchQuery{Keyword: "pune", FilterType: models.ListingKindLoad}
	mockAdapter.EXPECT().Search(ctx, q).Return(models.SearchResult{
		Loads: []models.LoadPost{{ID: 1, Origin: "Pune"}},
	}, nil)

	result, err := svc.Search(ctx, q)
	require.NoError(t, err)
	assert.Len(t, result.Loads, 1)
	assert.NotNil(t, result.Trucks)
	assert.NotNil(t, result.Trips)
}

func TestClientMarketplaceService_FilterLoads(t *testing.T) {
	svc := NewClientMarketplaceService(nil)

	posts := []models.LoadPost{
		{ID: 1, Origin: "Nagpur", Destination: "Pune", Material: "Steel"},
		{ID: 2, Origin: "Delhi", Destination: "Jaipur", Material: "Cement"},
		{ID: 3, Origin: "Mumbai", Destination: "Nagpur", Material: "Textiles"},
	}

	tests := []struct {
		name    string
		keyword string
		wantIDs []int64
	}{
		{name: "empty keyword matches all", keyword: "", wantIDs: []int64{1, 2, 3}},
		{name: "matches origin and destination", keyword: "nagpur", wantIDs: []int64{1, 3}},
		{name: "matches material", keyword: "cement", wantIDs: []int64{2}},
		{name: "case insensitive", keyword: "STEEL", wantIDs: []int64{1}},
		{name: "no match yields empty slice", keyword: "kolkata", wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := svc.FilterLoads(posts, tt.keyword)

			gotIDs := []int64{}
			for _, p := range filtered {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestClientMarketplaceService_FilterTrucks(t *testing.T) {
	svc := NewClientMarketplaceService(nil)

	posts := []models.TruckPost{
		{ID: 1, CurrentCity: "Pune", TruckType: "Open", VehicleNumber: "MH12AB1234"},
		{ID: 2, CurrentCity: "Indore", TruckType: "Container", VehicleNumber: "MP09CD5678"},
	}

	filtered := svc.FilterTrucks(posts, "container")
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(2), filtered[0].ID)

	assert.Empty(t, svc.FilterTrucks(posts, "trailer"))
	assert.NotNil(t, svc.FilterTrucks(nil, ""))
}

func TestClientMarketplaceService_RemoveVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestMarketplaceSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteVehicle(ctx, int64(9)).Return(nil)
	assert.NoError(t, svc.RemoveVehicle(ctx, 9))

	mockAdapter.EXPECT().DeleteVehicle(ctx, int64(10)).Return(errors.New("not found"))
	assert.Error(t, svc.RemoveVehicle(ctx, 10))
}
