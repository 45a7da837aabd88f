package impl

import (
	"context"
	"testing"

	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/repository"
	mockRepo "bakehouse/internal/mocks/repository"
	"bakehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliveryFeeService_CreateFee_Success(t *testing.T) {
	mockFeeRepo := mockRepo.NewMockDeliveryFeeRepository(t)
	svc := NewDeliveryFeeService(mockFeeRepo, newTestLogger())

	ctx := context.Background()

	mockFeeRepo.EXPECT().
		CreateFee(ctx, mock.AnythingOfType("*entity.DeliveryFee")).
		Return(nil)

	fee, err := svc.CreateFee(ctx, &usecase.CreateDeliveryFeeInput{
		Location:              "  Al Barsha One  ",
		Zone:                  "Zone Two",
		MinOrderAmount:        50,
		DeliveryCharge:        10,
		AmountForFreeDelivery: 150,
	})
	require.NoError(t, err)
	require.NotNil(t, fee)

	assert.Equal(t, "Al Barsha One", fee.Location)
	assert.Equal(t, "al barsha 1", fee.NormalizedLocation)
	assert.Equal(t, "zone 2", fee.NormalizedZone)
	assert.NotEqual(t, uuid.Nil, fee.ID)
}

func TestDeliveryFeeService_CreateFee_EmptyZoneAllowed(t *testing.T) {
	mockFeeRepo := mockRepo.NewMockDeliveryFeeRepository(t)
	svc := NewDeliveryFeeService(mockFeeRepo, newTestLogger())

	ctx := context.Background()

	mockFeeRepo.EXPECT().
		CreateFee(ctx, mock.AnythingOfType("*entity.DeliveryFee")).
		Return(nil)

	fee, err := svc.CreateFee(ctx, &usecase.CreateDeliveryFeeInput{
		Location:       "Al Barsha",
		Zone:           "",
		DeliveryCharge: 10,
	})
	require.NoError(t, err)
	require.NotNil(t, fee)

	assert.Equal(t, "", fee.Zone)
	assert.Equal(t, "", fee.NormalizedZone)
	assert.Equal(t, "al barsha", fee.NormalizedLocation)
}

func TestDeliveryFeeService_CreateFee_Duplicate(t *testing.T) {
	mockFeeRepo := mockRepo.NewMockDeliveryFeeRepository(t)
	svc := NewDeliveryFeeService(mockFeeRepo, newTestLogger())

	ctx := context.Background()

	mockFeeRepo.EXPECT().
		CreateFee(ctx, mock.AnythingOfType("*entity.DeliveryFee")).
		Return(repository.ErrDuplicateFee)

	fee, err := svc.CreateFee(ctx, &usecase.CreateDeliveryFeeInput{
		Location:       "AL BARSHA ONE!!",
		Zone:           "zone two",
		DeliveryCharge: 10,
	})
	require.Error(t, err)
	assert.Nil(t, fee)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateFee)
}

func TestDeliveryFeeService_CreateFee_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateDeliveryFeeInput
	}{
		{
			name:  "missing location",
			input: &usecase.CreateDeliveryFeeInput{Location: " ", Zone: "Zone 1"},
		},
		{
			name: "negative charge",
			input: &usecase.CreateDeliveryFeeInput{
				Location:       "Al Barsha",
				Zone:           "Zone 1",
				DeliveryCharge: -5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFeeRepo := mockRepo.NewMockDeliveryFeeRepository(t)
			svc := NewDeliveryFeeService(mockFeeRepo, newTestLogger())

			fee, err := svc.CreateFee(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, fee)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDeliveryFeeService_UpdateFee_PartialUpdate(t *testing.T) {
	mockFeeRepo := mockRepo.NewMockDeliveryFeeRepository(t)
	svc := NewDeliveryFeeService(mockFeeRepo, newTestLogger())

	ctx := context.Background()
	feeID := uuid.New()

	existing := &entity.DeliveryFee{
		ID:             feeID,
		Location:       "Al Barsha One",
		Zone:           "Zone Two",
		MinOrderAmount: 50,
		DeliveryCharge: 10,
	}
	existing.Normalize()

	mockFeeRepo.EXPECT().
		FindFeeByID(ctx, feeID).
		Return(existing, nil)

	mockFeeRepo.EXPECT().
		UpdateFee(ctx, mock.AnythingOfType("*entity.DeliveryFee")).
		Return(nil)

	newZone := "Zone Three"
	newCharge := 15.0
	fee, err := svc.UpdateFee(ctx, feeID, &usecase.UpdateDeliveryFeeInput{
		Zone:           &newZone,
		DeliveryCharge: &newCharge,
	})
	require.NoError(t, err)
	assert.Equal(t, "Zone Three", fee.Zone)
	assert.Equal(t, "zone 3", fee.NormalizedZone)
	assert.Equal(t, 15.0, fee.DeliveryCharge)
	assert.Equal(t, "Al Barsha One", fee.Location)
	assert.Equal(t, 50.0, fee.MinOrderAmount)
}

func TestDeliveryFeeService_UpdateFee_NotFound(t *testing.T) {
	mockFeeRepo := mockRepo.NewMockDeliveryFeeRepository(t)
	svc := NewDeliveryFeeService(mockFeeRepo, newTestLogger())

	ctx := context.Background()
	feeID := uuid.New()

	mockFeeRepo.EXPECT().
		FindFeeByID(ctx, feeID).
		Return(nil, repository.ErrFeeNotFound)

	fee, err := svc.UpdateFee(ctx, feeID, &usecase.UpdateDeliveryFeeInput{})
	require.Error(t, err)
	assert.Nil(t, fee)
	assert.ErrorIs(t, err, domainerrors.ErrFeeNotFound)
}

func TestDeliveryFeeService_DeleteFee_NotFound(t *testing.T) {
	mockFeeRepo := mockRepo.NewMockDeliveryFeeRepository(t)
	svc := NewDeliveryFeeService(mockFeeRepo, newTestLogger())

	ctx := context.Background()
	feeID := uuid.New()

	mockFeeRepo.EXPECT().
		DeleteFee(ctx, feeID).
		Return(repository.ErrFeeNotFound)

	err := svc.DeleteFee(ctx, feeID)
	assert.ErrorIs(t, err, domainerrors.ErrFeeNotFound)
}

func TestDeliveryFeeService_ListFees_SearchUsesNormalizedQuery(t *testing.T) {
	mockFeeRepo := mockRepo.NewMockDeliveryFeeRepository(t)
	svc := NewDeliveryFeeService(mockFeeRepo, newTestLogger())

	ctx := context.Background()

	mockFeeRepo.EXPECT().
		SearchFees(ctx, "al barsha 1").
		Return([]*entity.DeliveryFee{}, nil)

	fees, err := svc.ListFees(ctx, "Al Barsha  ONE!")
	require.NoError(t, err)
	assert.Empty(t, fees)
}
