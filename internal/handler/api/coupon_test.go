//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"promo-pricing-service/internal/handler/api"
	"promo-pricing-service/internal/pkg/errs"
	"promo-pricing-service/internal/usecase/queries"
	mock_queries "promo-pricing-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockQueries *mock_queries.MockCouponQueries
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.ctrl = gomock.NewController(s.T())
	s.mockQueries = mock_queries.NewMockCouponQueries(s.ctrl)
	handler := api.NewCouponHandler(s.mockQueries)

	s.router.GET("/coupons/validate", handler.ValidateCoupon)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *CouponHandlerTestSuite) TestValidateCoupon() {
	s.Run("valid code", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), "SAVE10").
			Return(&queries.CouponValidation{
				Valid: true,
				Promotion: &queries.CouponPromotionView{
					ID:   uuid.New(),
					Name: "Ten Percent Off",
					Code: "SAVE10",
					Kind: "order_percentage",
				},
			}, nil)

		w := s.get("/coupons/validate?code=SAVE10")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"valid":true`)
		s.Contains(w.Body.String(), "Ten Percent Off")
	})

	s.Run("invalid code carries the reason", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), "GONE").
			Return(&queries.CouponValidation{
				Valid:  false,
				Reason: queries.ReasonUsageExhausted,
			}, nil)

		w := s.get("/coupons/validate?code=GONE")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"valid":false`)
		s.Contains(w.Body.String(), queries.ReasonUsageExhausted)
	})

	s.Run("missing code parameter", func() {
		w := s.get("/coupons/validate")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("lookup failure", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), "X").
			Return(nil, errs.New("boom"))

		w := s.get("/coupons/validate?code=X")
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}
