package api

import (
	"net/http"
	"strings"

	resdto "promo-pricing-service/internal/handler/dto/response"
	"promo-pricing-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponQueries queries.CouponQueries
}

func NewCouponHandler(couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		couponQueries: couponQueries,
	}
}

// @Summary Validate coupon
// @Description Check whether a coupon code can currently be applied
// @Tags coupons
// @Produce json
// @Param code query string true "Coupon code"
// @Success 200 {object} resdto.CouponValidationResponse
// @Failure 400 {object} map[string]string
// @Router /coupons/validate [get]
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Coupon code is required",
		})
		return
	}

	validation, err := h.couponQueries.Validate(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponValidation(validation))
}
