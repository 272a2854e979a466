package api

import (
	"net/http"

	"tripfair/internal/domain/negotiation"
	reqdto "tripfair/internal/handler/dto/request"
	resdto "tripfair/internal/handler/dto/response"
	"tripfair/internal/pkg/errs"
	"tripfair/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type NegotiationHandler struct {
	negotiationCommands commands.NegotiationCommands
}

func NewNegotiationHandler(negotiationCommands commands.NegotiationCommands) *NegotiationHandler {
	return &NegotiationHandler{
		negotiationCommands: negotiationCommands,
	}
}

// @Summary Negotiate a price
// @Description Issue a time-bound discounted offer for a property
// @Tags negotiations
// @Accept json
// @Produce json
// @Param request body reqdto.NegotiateRequest true "Negotiation request"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} resdto.NoOfferResponse
// @Failure 404 {object} resdto.NoOfferResponse
// @Router /negotiations [post]
func (h *NegotiationHandler) Negotiate(c *gin.Context) {
	var req reqdto.NegotiateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, resdto.NewNoOfferResponse(negotiation.ReasonInvalidPropertyID.String()))
		return
	}

	params := commands.NegotiateParams{
		PropertyID: req.TrimmedPropertyID(),
		RoomID:     req.TrimmedRoomID(),
		Quantity:   req.Quantity,
	}

	outcome, err := h.negotiationCommands.Negotiate(c.Request.Context(), params)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidPropertyID), errs.Is(err, commands.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, resdto.NewNoOfferResponse(negotiation.ReasonInvalidPropertyID.String()))
		case errs.Is(err, commands.ErrPropertyNotFound), errs.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, resdto.NewNoOfferResponse(negotiation.ReasonNotFound.String()))
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	if outcome.Status == negotiation.StatusNoOffer {
		c.JSON(http.StatusOK, resdto.NewNoOfferResponse(outcome.Reason.String()))
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferResult(outcome.Offer))
}

// @Summary Validate an offer
// @Description Re-validate an offer before booking; expired or stale offers are refused
// @Tags negotiations
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateOfferRequest true "Offer to validate"
// @Success 200 {object} resdto.OfferValidationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /negotiations/validate [post]
func (h *NegotiationHandler) ValidateOffer(c *gin.Context) {
	var req reqdto.ValidateOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.ValidateOfferParams{
		PropertyID:      req.PropertyID,
		RoomID:          req.RoomID,
		Quantity:        req.Quantity,
		DiscountedTotal: req.DiscountedTotal,
		ExpiresAt:       req.ExpiresAt,
	}

	validation, err := h.negotiationCommands.ValidateOffer(c.Request.Context(), params)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrOfferExpired):
			c.JSON(http.StatusGone, gin.H{
				"error": "Offer has expired, renegotiate for a current price",
			})
		case errs.Is(err, commands.ErrOfferPriceChanged):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Offer no longer matches the current rate",
			})
		case errs.Is(err, commands.ErrInvalidPropertyID):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid property ID",
			})
		case errs.Is(err, commands.ErrPropertyNotFound), errs.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, &resdto.OfferValidationResponse{
		Valid:           validation.Valid,
		DiscountedTotal: validation.DiscountedTotal,
	})
}
