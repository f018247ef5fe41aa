//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"promo-pricing-service/internal/domain/pricing"
	"promo-pricing-service/internal/domain/promotion"
	"promo-pricing-service/internal/infra"
	"promo-pricing-service/internal/infra/repository"
	sqlc "promo-pricing-service/internal/infra/sqlc/generated"
	repositorymock "promo-pricing-service/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discountedResult() (*pricing.Result, uuid.UUID) {
	promoID := uuid.New()
	line := pricing.PricedLine{
		LineItem: pricing.LineItem{
			LineID:     uuid.New(),
			ItemID:     uuid.New(),
			CategoryID: uuid.New(),
			Quantity:   2,
			UnitPrice:  20000,
		},
		FinalUnitPrice: 16000,
		FinalTotal:     32000,
		Applied: &pricing.AppliedLine{
			PromotionID:   promoID,
			PromotionName: "Lunch Deal",
			Discount:      8000,
		},
	}
	return &pricing.Result{
		Subtotal:          40000,
		PromotionDiscount: 8000,
		Total:             32000,
		Lines:             []pricing.PricedLine{line},
		Applied: []pricing.AppliedPromotion{
			{
				PromotionID:     promoID,
				Name:            "Lunch Deal",
				Kind:            promotion.KindItemPercentage,
				TotalDiscount:   8000,
				AffectedLineIDs: []uuid.UUID{line.LineID},
			},
		},
	}, promoID
}

// =============================================================================
// Create Order Tests
// =============================================================================

func TestOrderRepository_Create(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockOrderWriteQueries, *pricing.Result, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: order with lines and promotion breakdown",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, result *pricing.Result, promoID uuid.UUID) {
				mock.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderParams) (uuid.UUID, error) {
						assert.Equal(t, orderID, arg.ID)
						assert.InDelta(t, 40000, arg.Subtotal, 0.001)
						assert.InDelta(t, 32000, arg.Total, 0.001)
						return arg.ID, nil
					})
				mock.EXPECT().CreateOrderItem(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderItemParams) error {
						assert.Equal(t, orderID, arg.OrderID)
						assert.InDelta(t, 8000, arg.DiscountAmount, 0.001)
						assert.True(t, arg.PromotionID.Valid)
						return nil
					})
				mock.EXPECT().CreateOrderPromotion(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderPromotionParams) error {
						assert.Equal(t, promoID, arg.PromotionID)
						assert.Equal(t, string(promotion.KindItemPercentage), arg.PromotionKind)
						return nil
					})
			},
			expectedError: false,
		},
		{
			name: "error: order insert fails",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, result *pricing.Result, promoID uuid.UUID) {
				mock.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: line insert fails",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, result *pricing.Result, promoID uuid.UUID) {
				mock.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any()).Return(orderID, nil)
				mock.EXPECT().CreateOrderItem(ctx, gomock.Any(), gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
			repo := repository.NewOrderRepository(mockQueries)

			result, promoID := discountedResult()
			tc.setupMock(mockQueries, result, promoID)

			actualError := repo.Create(ctx, &mockDBTX{}, orderID, result)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
