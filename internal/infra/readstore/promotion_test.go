//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"promo-pricing-service/internal/infra"
	"promo-pricing-service/internal/infra/readstore"
	sqlc "promo-pricing-service/internal/infra/sqlc/generated"
	"promo-pricing-service/tests/common/builder"
	readstoremock "promo-pricing-service/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// FindByCode Tests
// =============================================================================

func TestPromotionReadStore_FindByCode(t *testing.T) {
	ctx := context.Background()

	happyRow := builder.NewPromotionBuilder().
		WithCode("SAVE10").
		WithSlot("14:00", "17:00").
		WithDays(time.Monday, time.Friday).
		BuildInfra()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockPromotionReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: promotion found",
			setupMock: func(mock *readstoremock.MockPromotionReadQueries) {
				mock.EXPECT().GetPromotionByCode(ctx, gomock.Any(), "SAVE10").Return(happyRow, nil)
			},
			expectedError: false,
		},
		{
			name: "error: promotion not found",
			setupMock: func(mock *readstoremock.MockPromotionReadQueries) {
				mock.EXPECT().GetPromotionByCode(ctx, gomock.Any(), "SAVE10").Return(sqlc.Promotions{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockPromotionReadQueries) {
				mock.EXPECT().GetPromotionByCode(ctx, gomock.Any(), "SAVE10").Return(sqlc.Promotions{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockPromotionReadQueries(ctrl)
			store := readstore.NewPromotionReadStore(&mockDBTX{}, mockQueries)

			tc.setupMock(mockQueries)

			snap, actualError := store.FindByCode(ctx, "SAVE10")

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Nil(t, snap)
			} else {
				require.NoError(t, actualError)
				require.NotNil(t, snap)
				assert.Equal(t, happyRow.ID, snap.ID)
				require.NotNil(t, snap.Code)
				assert.Equal(t, "SAVE10", *snap.Code)
				require.Len(t, snap.TimeSlots, 1)
				assert.Equal(t, "14:00", snap.TimeSlots[0].Start)
				assert.Equal(t, "17:00", snap.TimeSlots[0].End)
				assert.Equal(t, []int{1, 5}, snap.DaysOfWeek)
			}
		})
	}
}

// =============================================================================
// ListActive Tests
// =============================================================================

func TestPromotionReadStore_ListActive(t *testing.T) {
	ctx := context.Background()
	asOf := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockPromotionReadQueries)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success: two campaigns returned",
			setupMock: func(mock *readstoremock.MockPromotionReadQueries) {
				rows := []sqlc.Promotions{
					builder.NewPromotionBuilder().BuildInfra(),
					builder.NewPromotionBuilder().WithPriority(5).BuildInfra(),
				}
				mock.EXPECT().ListActivePromotions(ctx, gomock.Any(), gomock.Any()).Return(rows, nil)
			},
			expectedCount: 2,
		},
		{
			name: "success: no active campaigns",
			setupMock: func(mock *readstoremock.MockPromotionReadQueries) {
				mock.EXPECT().ListActivePromotions(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedCount: 0,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockPromotionReadQueries) {
				mock.EXPECT().ListActivePromotions(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
		},
		{
			name: "error: corrupt time slot payload",
			setupMock: func(mock *readstoremock.MockPromotionReadQueries) {
				row := builder.NewPromotionBuilder().BuildInfra()
				row.TimeSlots = []byte("{not json")
				mock.EXPECT().ListActivePromotions(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.Promotions{row}, nil)
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockPromotionReadQueries(ctrl)
			store := readstore.NewPromotionReadStore(&mockDBTX{}, mockQueries)

			tc.setupMock(mockQueries)

			snapshots, actualError := store.ListActive(ctx, asOf)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.Nil(t, snapshots)
			} else {
				require.NoError(t, actualError)
				assert.Len(t, snapshots, tc.expectedCount)
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
	return nil
}
