package impl

import (
	"context"
	"testing"

	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/geo"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/domain/service"
	mockRepo "bakehouse/internal/mocks/repository"
	mockSvc "bakehouse/internal/mocks/service"
	"bakehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreService_CreateStore_Success(t *testing.T) {
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewStoreService(mockStoreRepo, mockGeocoder, newTestLogger())

	ctx := context.Background()

	mockGeocoder.EXPECT().
		Geocode(ctx, "Al Barsha 1, Dubai").
		Return(geo.Point{Lat: 25.1124, Lng: 55.1964}, nil)

	var created *entity.Store
	mockStoreRepo.EXPECT().
		CreateStore(ctx, mock.AnythingOfType("*entity.Store")).
		Run(func(_ context.Context, store *entity.Store) {
			created = store
		}).
		Return(nil)

	store, err := svc.CreateStore(ctx, &usecase.CreateStoreInput{
		Name:          "  Al Barsha Branch  ",
		Address:       "Al Barsha 1, Dubai",
		ContactNumber: "+971 4 123 4567",
		Hours:         "9 AM - 10 PM",
		Status:        entity.StoreStatusOperational,
		Category:      "Smart Seven",
	})
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Same(t, store, created)

	assert.Equal(t, "Al Barsha Branch", store.Name)
	assert.Equal(t, 25.1124, store.Latitude)
	assert.Equal(t, 55.1964, store.Longitude)
	assert.Equal(t, "al barsha branch", store.NormalizedName)
	assert.Equal(t, "al barsha 1 dubai", store.NormalizedAddress)
	assert.Equal(t, "smart seven", store.NormalizedCategory)
	assert.NotEqual(t, uuid.Nil, store.ID)
}

func TestStoreService_CreateStore_AddressNotFound(t *testing.T) {
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewStoreService(mockStoreRepo, mockGeocoder, newTestLogger())

	ctx := context.Background()

	mockGeocoder.EXPECT().
		Geocode(ctx, "nowhere at all").
		Return(geo.Point{}, service.ErrAddressNotFound)

	store, err := svc.CreateStore(ctx, &usecase.CreateStoreInput{
		Name:    "Ghost Branch",
		Address: "nowhere at all",
	})
	require.Error(t, err)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestStoreService_CreateStore_Duplicate(t *testing.T) {
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewStoreService(mockStoreRepo, mockGeocoder, newTestLogger())

	ctx := context.Background()

	mockGeocoder.EXPECT().
		Geocode(ctx, "Al Barsha 1, Dubai").
		Return(geo.Point{Lat: 25.1124, Lng: 55.1964}, nil)

	mockStoreRepo.EXPECT().
		CreateStore(ctx, mock.AnythingOfType("*entity.Store")).
		Return(repository.ErrDuplicateStore)

	store, err := svc.CreateStore(ctx, &usecase.CreateStoreInput{
		Name:    "AL BARSHA    BRANCH!!",
		Address: "Al Barsha 1, Dubai",
	})
	require.Error(t, err)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateStore)
}

func TestStoreService_CreateStore_InvalidFields(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateStoreInput
	}{
		{
			name:  "missing name",
			input: &usecase.CreateStoreInput{Name: "   ", Address: "Al Barsha 1"},
		},
		{
			name:  "missing address",
			input: &usecase.CreateStoreInput{Name: "Al Barsha Branch", Address: ""},
		},
		{
			name: "malformed contact number",
			input: &usecase.CreateStoreInput{
				Name:          "Al Barsha Branch",
				Address:       "Al Barsha 1",
				ContactNumber: "call us maybe",
			},
		},
		{
			name: "malformed hours",
			input: &usecase.CreateStoreInput{
				Name:    "Al Barsha Branch",
				Address: "Al Barsha 1",
				Hours:   "whenever",
			},
		},
		{
			name: "unknown status",
			input: &usecase.CreateStoreInput{
				Name:    "Al Barsha Branch",
				Address: "Al Barsha 1",
				Status:  entity.StoreStatus("on fire"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStoreRepo := mockRepo.NewMockStoreRepository(t)
			mockGeocoder := mockSvc.NewMockGeocoder(t)
			svc := NewStoreService(mockStoreRepo, mockGeocoder, newTestLogger())

			store, err := svc.CreateStore(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, store)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestStoreService_UpdateStore_AddressChangeRegeocodes(t *testing.T) {
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewStoreService(mockStoreRepo, mockGeocoder, newTestLogger())

	ctx := context.Background()
	storeID := uuid.New()

	existing := &entity.Store{
		ID:        storeID,
		Name:      "Al Barsha Branch",
		Address:   "Al Barsha 1, Dubai",
		Latitude:  25.1124,
		Longitude: 55.1964,
		Status:    entity.StoreStatusOperational,
	}
	existing.Normalize()

	mockStoreRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(existing, nil)

	mockGeocoder.EXPECT().
		Geocode(ctx, "Jumeirah Beach Road, Dubai").
		Return(geo.Point{Lat: 25.2048, Lng: 55.2708}, nil)

	mockStoreRepo.EXPECT().
		UpdateStore(ctx, mock.AnythingOfType("*entity.Store")).
		Return(nil)

	newAddress := "Jumeirah Beach Road, Dubai"
	store, err := svc.UpdateStore(ctx, storeID, &usecase.UpdateStoreInput{
		Address: &newAddress,
	})
	require.NoError(t, err)
	assert.Equal(t, newAddress, store.Address)
	assert.Equal(t, 25.2048, store.Latitude)
	assert.Equal(t, 55.2708, store.Longitude)
	assert.Equal(t, "jumeirah beach road dubai", store.NormalizedAddress)
}

func TestStoreService_UpdateStore_SameAddressSkipsGeocoding(t *testing.T) {
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewStoreService(mockStoreRepo, mockGeocoder, newTestLogger())

	ctx := context.Background()
	storeID := uuid.New()

	existing := &entity.Store{
		ID:        storeID,
		Name:      "Al Barsha Branch",
		Address:   "Al Barsha 1, Dubai",
		Latitude:  25.1124,
		Longitude: 55.1964,
	}
	existing.Normalize()

	mockStoreRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(existing, nil)

	mockStoreRepo.EXPECT().
		UpdateStore(ctx, mock.AnythingOfType("*entity.Store")).
		Return(nil)

	sameAddress := "Al Barsha 1, Dubai"
	newSupervisor := "Fatima"
	store, err := svc.UpdateStore(ctx, storeID, &usecase.UpdateStoreInput{
		Address:    &sameAddress,
		Supervisor: &newSupervisor,
	})
	require.NoError(t, err)
	assert.Equal(t, "Fatima", store.Supervisor)
	assert.Equal(t, 25.1124, store.Latitude)
	mockGeocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

func TestStoreService_UpdateStore_NotFound(t *testing.T) {
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewStoreService(mockStoreRepo, mockGeocoder, newTestLogger())

	ctx := context.Background()
	storeID := uuid.New()

	mockStoreRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	store, err := svc.UpdateStore(ctx, storeID, &usecase.UpdateStoreInput{})
	require.Error(t, err)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_DeleteStore(t *testing.T) {
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewStoreService(mockStoreRepo, mockGeocoder, newTestLogger())

	ctx := context.Background()
	storeID := uuid.New()

	mockStoreRepo.EXPECT().
		DeleteStore(ctx, storeID).
		Return(nil)

	require.NoError(t, svc.DeleteStore(ctx, storeID))
}

func TestStoreService_DeleteStore_NotFound(t *testing.T) {
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewStoreService(mockStoreRepo, mockGeocoder, newTestLogger())

	ctx := context.Background()
	storeID := uuid.New()

	mockStoreRepo.EXPECT().
		DeleteStore(ctx, storeID).
		Return(repository.ErrStoreNotFound)

	err := svc.DeleteStore(ctx, storeID)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_ListStores_All(t *testing.T) {
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewStoreService(mockStoreRepo, mockGeocoder, newTestLogger())

	ctx := context.Background()
	expected := []*entity.Store{{Name: "Al Barsha Branch"}}

	mockStoreRepo.EXPECT().
		ListStores(ctx).
		Return(expected, nil)

	stores, err := svc.ListStores(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, expected, stores)
}

func TestStoreService_ListStores_SearchUsesNormalizedQuery(t *testing.T) {
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewStoreService(mockStoreRepo, mockGeocoder, newTestLogger())

	ctx := context.Background()

	mockStoreRepo.EXPECT().
		SearchStores(ctx, "branch 1").
		Return([]*entity.Store{}, nil)

	stores, err := svc.ListStores(ctx, "  Branch One!  ")
	require.NoError(t, err)
	assert.Empty(t, stores)
}
