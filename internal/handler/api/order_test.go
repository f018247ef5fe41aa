//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"promo-pricing-service/internal/domain/pricing"
	"promo-pricing-service/internal/handler/api"
	"promo-pricing-service/internal/usecase/commands"
	"promo-pricing-service/internal/usecase/queries"
	mock_commands "promo-pricing-service/tests/mock/commands"
	mock_queries "promo-pricing-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	ctrl         *gomock.Controller
	mockCommands *mock_commands.MockPricingCommands
	mockQueries  *mock_queries.MockOrderQueries
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.ctrl = gomock.NewController(s.T())
	s.mockCommands = mock_commands.NewMockPricingCommands(s.ctrl)
	s.mockQueries = mock_queries.NewMockOrderQueries(s.ctrl)
	handler := api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/orders", handler.CreateOrder)
	s.router.POST("/orders/price", handler.PriceOrder)
	s.router.GET("/orders/:id", handler.GetOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) postJSON(url string, body map[string]any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func validOrderBody() map[string]any {
	return map[string]any{
		"items": []map[string]any{{
			"itemId":     uuid.New().String(),
			"categoryId": uuid.New().String(),
			"quantity":   1,
			"unitPrice":  43000,
		}},
		"bills": map[string]any{
			"subtotal":     43000,
			"total":        35000,
			"totalWithTax": 38500,
		},
	}
}

func (s *OrderHandlerTestSuite) TestPriceOrder() {
	s.Run("returns the pricing breakdown", func() {
		s.mockCommands.EXPECT().PriceOrder(gomock.Any(), gomock.Any()).
			Return(&pricing.Result{Subtotal: 43000, PromotionDiscount: 8000, Total: 35000}, nil)

		w := s.postJSON("/orders/price", validOrderBody())

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"total":35000`)
	})

	s.Run("malformed body", func() {
		w := s.postJSON("/orders/price", map[string]any{"items": "nope"})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("invalid order", func() {
		s.mockCommands.EXPECT().PriceOrder(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidOrder)

		w := s.postJSON("/orders/price", validOrderBody())
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown coupon", func() {
		s.mockCommands.EXPECT().PriceOrder(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrCouponNotFound)

		w := s.postJSON("/orders/price", validOrderBody())
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("mismatched totals return both numbers", func() {
		s.mockCommands.EXPECT().PriceOrder(gomock.Any(), gomock.Any()).
			Return(nil, &pricing.ReconciliationError{Submitted: 30000, Calculated: 34200})

		w := s.postJSON("/orders/price", validOrderBody())

		s.Equal(http.StatusUnprocessableEntity, w.Code)
		s.Contains(w.Body.String(), "Bill total (30000) does not match calculated total (34200)")
		s.Contains(w.Body.String(), `"submittedTotal":30000`)
		s.Contains(w.Body.String(), `"calculatedTotal":34200`)
	})
}

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	s.Run("persists and returns the order id", func() {
		orderID := uuid.New()
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(&commands.CreateOrderResult{
				OrderID: orderID,
				Pricing: &pricing.Result{Subtotal: 43000, PromotionDiscount: 8000, Total: 35000},
			}, nil)

		w := s.postJSON("/orders", validOrderBody())

		s.Equal(http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), orderID.String())
	})

	s.Run("invalid coupon", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCoupon)

		w := s.postJSON("/orders", validOrderBody())
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("storage failure", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDatabaseOperationFailed)

		w := s.postJSON("/orders", validOrderBody())
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}

func (s *OrderHandlerTestSuite) TestGetOrder() {
	s.Run("returns the stored order", func() {
		orderID := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), orderID).
			Return(&queries.OrderView{ID: orderID, Subtotal: 43000, Total: 35000, PromotionDiscount: 8000}, nil)

		req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID.String(), nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), orderID.String())
	})

	s.Run("bad id", func() {
		req := httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("missing order", func() {
		orderID := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), orderID).
			Return(nil, queries.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID.String(), nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusNotFound, w.Code)
	})
}
