package api

import (
	"net/http"

	reqdto "tripfair/internal/handler/dto/request"
	resdto "tripfair/internal/handler/dto/response"
	"tripfair/internal/pkg/errs"
	"tripfair/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	providerQueries queries.ProviderQueries
}

func NewProviderHandler(providerQueries queries.ProviderQueries) *ProviderHandler {
	return &ProviderHandler{
		providerQueries: providerQueries,
	}
}

// @Summary Quote a provider for an event location
// @Description Price base fee plus travel surcharge for one provider
// @Tags providers
// @Accept json
// @Produce json
// @Param id path string true "Provider ID"
// @Param request body reqdto.EventLocationRequest true "Event location"
// @Success 200 {object} queries.ProviderQuoteView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /providers/{id}/quotes [post]
func (h *ProviderHandler) Quote(c *gin.Context) {
	providerID := c.Param("id")

	var req reqdto.EventLocationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	loc := queries.EventLocation{Lat: *req.Lat, Lon: *req.Lon, Address: req.Address}
	quote, err := h.providerQueries.QuoteForProvider(c.Request.Context(), providerID, loc, req.IsWeekend)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// @Summary Find providers for an event location
// @Description Serviceable providers sorted ascending by total price
// @Tags providers
// @Accept json
// @Produce json
// @Param request body reqdto.EventLocationRequest true "Event location"
// @Success 200 {object} resdto.ProviderSearchResponse
// @Failure 400 {object} map[string]string
// @Router /providers/search [post]
func (h *ProviderHandler) Search(c *gin.Context) {
	var req reqdto.EventLocationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	loc := queries.EventLocation{Lat: *req.Lat, Lon: *req.Lon, Address: req.Address}
	providers, err := h.providerQueries.FindProvidersForLocation(c.Request.Context(), loc, req.IsWeekend)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, &resdto.ProviderSearchResponse{
		Providers: providers,
		Count:     len(providers),
	})
}

// @Summary Coverage check
// @Description Whether a provider covers a location, honoring named coverage areas
// @Tags providers
// @Accept json
// @Produce json
// @Param id path string true "Provider ID"
// @Param request body reqdto.EventLocationRequest true "Event location"
// @Success 200 {object} resdto.CoverageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /providers/{id}/coverage [post]
func (h *ProviderHandler) Coverage(c *gin.Context) {
	providerID := c.Param("id")

	var req reqdto.EventLocationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	loc := queries.EventLocation{Lat: *req.Lat, Lon: *req.Lon, Address: req.Address}
	covered, err := h.providerQueries.CoversLocation(c.Request.Context(), providerID, loc)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, &resdto.CoverageResponse{
		ProviderID: providerID,
		Covered:    covered,
	})
}

func (h *ProviderHandler) writeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrProviderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Provider not found",
		})
	case errs.Is(err, queries.ErrInvalidLocation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event location",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
