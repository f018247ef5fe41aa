package api

import (
	"errors"
	"net/http"

	"promo-pricing-service/internal/domain/pricing"
	reqdto "promo-pricing-service/internal/handler/dto/request"
	resdto "promo-pricing-service/internal/handler/dto/response"
	"promo-pricing-service/internal/handler/httperr"
	"promo-pricing-service/internal/usecase/commands"
	"promo-pricing-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	pricingCommands commands.PricingCommands
	orderQueries    queries.OrderQueries
}

func NewOrderHandler(pricingCommands commands.PricingCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		pricingCommands: pricingCommands,
		orderQueries:    orderQueries,
	}
}

// @Summary Price an order
// @Description Recompute promotions and totals for an order without persisting it
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.PriceOrderRequest true "Order pricing request"
// @Success 200 {object} resdto.PricingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders/price [post]
func (h *OrderHandler) PriceOrder(c *gin.Context) {
	var req reqdto.PriceOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.pricingCommands.PriceOrder(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondPricingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPricingResult(result))
}

// @Summary Create order
// @Description Price, reconcile and persist an order, consuming promotion usage
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.PriceOrderRequest true "Order request"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req reqdto.PriceOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.pricingCommands.CreateOrder(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondPricingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateOrderResponse{
		OrderID: created.OrderID,
		Pricing: resdto.FromPricingResult(created.Pricing),
	})
}

// @Summary Get order
// @Description Fetch a persisted order with its pricing breakdown
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, queries.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromOrderView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) respondPricingError(c *gin.Context, err error) {
	var reconciliationErr *pricing.ReconciliationError
	switch {
	case errors.Is(err, commands.ErrInvalidOrder):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order",
		})
	case errors.Is(err, commands.ErrCouponNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Coupon not found",
		})
	case errors.Is(err, commands.ErrInvalidCoupon):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or expired coupon",
		})
	case errors.As(err, &reconciliationErr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
			reconciliationErr.Error(), gin.H{
				"submittedTotal":  reconciliationErr.Submitted,
				"calculatedTotal": reconciliationErr.Calculated,
			})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", nil)
	}
}
