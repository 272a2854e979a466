package api

import (
	"net/http"
	"time"

	reqdto "tripfair/internal/handler/dto/request"
	resdto "tripfair/internal/handler/dto/response"
	"tripfair/internal/pkg/errs"
	"tripfair/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminCommands commands.AdminCommands
}

func NewAdminHandler(adminCommands commands.AdminCommands) *AdminHandler {
	return &AdminHandler{
		adminCommands: adminCommands,
	}
}

// @Summary Get a property discount override
// @Tags admin
// @Produce json
// @Param propertyId path string true "Property ID"
// @Success 200 {object} resdto.OverrideResponse
// @Failure 404 {object} map[string]string
// @Router /admin/overrides/{propertyId} [get]
func (h *AdminHandler) GetOverride(c *gin.Context) {
	snapshot, err := h.adminCommands.GetOverride(c.Request.Context(), c.Param("propertyId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOverrideSnapshot(snapshot))
}

// @Summary Set a property discount override
// @Description Upsert an override and invalidate the record cache
// @Tags admin
// @Accept json
// @Produce json
// @Param propertyId path string true "Property ID"
// @Param request body reqdto.SetOverrideRequest true "Override"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admin/overrides/{propertyId} [put]
func (h *AdminHandler) SetOverride(c *gin.Context) {
	var req reqdto.SetOverrideRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	validFrom, ok := h.parseTimestamp(c, req.ValidFrom)
	if !ok {
		return
	}
	validTo, ok := h.parseTimestamp(c, req.ValidTo)
	if !ok {
		return
	}

	snapshot := commands.OverrideSnapshot{
		PropertyID:   c.Param("propertyId"),
		Rate:         req.Rate,
		ValidFrom:    validFrom,
		ValidTo:      validTo,
		CampaignName: req.CampaignName,
	}
	if err := h.adminCommands.SetOverride(c.Request.Context(), snapshot); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete a property discount override
// @Tags admin
// @Produce json
// @Param propertyId path string true "Property ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/overrides/{propertyId} [delete]
func (h *AdminHandler) DeleteOverride(c *gin.Context) {
	if err := h.adminCommands.DeleteOverride(c.Request.Context(), c.Param("propertyId")); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Invalidate the record cache
// @Description Flush all cached record-store reads
// @Tags admin
// @Produce json
// @Success 204
// @Router /admin/cache/invalidate [post]
func (h *AdminHandler) InvalidateCache(c *gin.Context) {
	h.adminCommands.InvalidateCache()
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) parseTimestamp(c *gin.Context, raw *string) (*time.Time, bool) {
	if raw == nil {
		return nil, true
	}
	parsed, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid timestamp, expected RFC3339",
		})
		return nil, false
	}
	return &parsed, true
}

func (h *AdminHandler) writeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrOverrideNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Override not found",
		})
	case errs.Is(err, commands.ErrInvalidPropertyID),
		errs.Is(err, commands.ErrInvalidRate),
		errs.Is(err, commands.ErrInvalidWindow):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid override",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
