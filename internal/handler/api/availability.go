package api

import (
	"net/http"
	"strconv"
	"time"

	resdto "tripfair/internal/handler/dto/response"
	"tripfair/internal/pkg/errs"
	"tripfair/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const dateQueryLayout = "2006-01-02"

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Availability calendar
// @Description 30-day availability horizon for a service, starting today
// @Tags availability
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.AvailabilityCalendarResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id}/availability [get]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	serviceID := c.Param("id")

	days, err := h.availabilityQueries.Calendar(c.Request.Context(), serviceID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, &resdto.AvailabilityCalendarResponse{
		ServiceID: serviceID,
		Days:      days,
	})
}

// @Summary Availability check
// @Description Whether a service can accommodate a quantity on a date
// @Tags availability
// @Produce json
// @Param id path string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param quantity query int false "Requested units" default(1)
// @Success 200 {object} queries.AvailabilityCheckView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id}/availability/check [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	serviceID := c.Param("id")

	date, ok := h.parseDate(c)
	if !ok {
		return
	}

	quantity := 1
	if raw := c.Query("quantity"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid quantity",
			})
			return
		}
		quantity = parsed
	}

	view, err := h.availabilityQueries.Check(c.Request.Context(), serviceID, date, quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Dynamic price
// @Description Scarcity-adjusted price for a service on a date
// @Tags availability
// @Produce json
// @Param id path string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param weekend query bool false "Weekend pricing" default(false)
// @Success 200 {object} queries.DynamicPriceView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id}/price [get]
func (h *AvailabilityHandler) DynamicPrice(c *gin.Context) {
	serviceID := c.Param("id")

	date, ok := h.parseDate(c)
	if !ok {
		return
	}

	isWeekend := c.Query("weekend") == "true"
	view, err := h.availabilityQueries.DynamicPrice(c.Request.Context(), serviceID, date, isWeekend)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *AvailabilityHandler) parseDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	date, err := time.ParseInLocation(dateQueryLayout, raw, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return date, true
}

func (h *AvailabilityHandler) writeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
