package api

import (
	"net/http"

	reqdto "tripfair/internal/handler/dto/request"
	resdto "tripfair/internal/handler/dto/response"
	"tripfair/internal/pkg/errs"
	"tripfair/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type CartHandler struct {
	cartCommands commands.CartCommands
}

func NewCartHandler(cartCommands commands.CartCommands) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
	}
}

// @Summary Evaluate a cart
// @Description Price cart line items, annotate bundle eligibility and apply at most one package
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.EvaluateCartRequest true "Cart contents"
// @Success 200 {object} resdto.CartEvaluationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/evaluate [post]
func (h *CartHandler) Evaluate(c *gin.Context) {
	var req reqdto.EvaluateCartRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.EvaluateCartParams{
		Items: lo.Map(req.Items, func(it reqdto.CartItemRequest, _ int) commands.CartItemParams {
			return commands.CartItemParams{
				ServiceID: it.ServiceID,
				Quantity:  it.Quantity,
			}
		}),
		ApplyPackageID: req.ApplyPackageID,
	}

	eval, err := h.cartCommands.Evaluate(c.Request.Context(), params)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartEvaluation(eval))
}

func (h *CartHandler) writeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrEmptyCart), errs.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart",
		})
	case errs.Is(err, commands.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
		})
	case errs.Is(err, commands.ErrPackageNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Package not found",
		})
	case errs.Is(err, commands.ErrPackageNotEligible):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Package not eligible for this cart",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
