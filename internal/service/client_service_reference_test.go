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

func referenceStates() []models.State {
	return []models.State{
		{ID: 1, Name: "Maharashtra", Code: "MH"},
		{ID: 2, Name: "Madhya Pradesh", Code: "MP"},
	}
}

func referenceCities() []models.City {
	return []models.City{
		{ID: 10, Name: "Pune", StateID: 1},
		{ID: 11, Name: "Nagpur", StateID: 1},
		{ID: 20, Name: "Indore", StateID: 2},
	}
}

func TestClientReferenceService_States_FetchedOnceThenCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	svc := NewClientReferenceService(mockAdapter)
	ctx := context.Background()

	mockAdapter.EXPECT().States(ctx).Return(referenceStates(), nil).Times(1)

	first, err := svc.States(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// second call is served from cache: the single Times(1) expectation
	// would fail the test on a repeat fetch
	second, err := svc.States(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClientReferenceService_CitiesOfState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	svc := NewClientReferenceService(mockAdapter)
	ctx := context.Background()

	mockAdapter.EXPECT().Cities(ctx).Return(referenceCities(), nil).Times(1)

	cities, err := svc.CitiesOfState(ctx, 1)
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Pune", cities[0].Name)

	none, err := svc.CitiesOfState(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestClientReferenceService_Refresh_ReplacesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	svc := NewClientReferenceService(mockAdapter)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().States(ctx).Return(referenceStates()[:1], nil),
		mockAdapter.EXPECT().States(ctx).Return(referenceStates(), nil),
		mockAdapter.EXPECT().Cities(ctx).Return(referenceCities(), nil),
	)

	states, err := svc.States(ctx)
	require.NoError(t, err)
	require.Len(t, states, 1)

	require.NoError(t, svc.Refresh(ctx))

	states, err = svc.States(ctx)
	require.NoError(t, err)
	assert.Len(t, states, 2)
}

func TestClientReferenceService_Refresh_KeepsCacheOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	svc := NewClientReferenceService(mockAdapter)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().States(ctx).Return(referenceStates(), nil),
		mockAdapter.EXPECT().States(ctx).Return(nil, errors.New("bad gateway")),
	)

	states, err := svc.States(ctx)
	require.NoError(t, err)
	require.Len(t, states, 2)

	require.Error(t, svc.Refresh(ctx))

	// cached list survives the failed refresh
	states, err = svc.States(ctx)
	require.NoError(t, err)
	assert.Len(t, states, 2)
}
