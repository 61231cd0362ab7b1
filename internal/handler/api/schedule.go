package api

import (
	"errors"
	"net/http"
	"time"

	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ScheduleHandler serves the read-only scheduling surface: open slots and the
// transition metadata derived from the lifecycle table.
type ScheduleHandler struct {
	bookingQueries queries.BookingQueries
}

func NewScheduleHandler(bookingQueries queries.BookingQueries) *ScheduleHandler {
	return &ScheduleHandler{
		bookingQueries: bookingQueries,
	}
}

// @Summary Get available slots
// @Description List free start times for a provider, date and service
// @Tags schedule
// @Produce json
// @Param id path string true "Provider ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param service_id query string true "Service ID"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /providers/{id}/slots [get]
func (h *ScheduleHandler) AvailableSlots(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider ID format", "")
		return
	}

	date, err := time.ParseInLocation(dateLayout, c.Query("date"), time.UTC)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", "")
		return
	}

	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID format", "")
		return
	}

	slots, err := h.bookingQueries.AvailableSlots(c.Request.Context(), providerID, date, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", "")
		case errors.Is(err, errs.ErrProviderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Provider not found", "")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SlotsResponse{
		ProviderID: providerID,
		Date:       date.Format(dateLayout),
		Slots:      slots,
	})
}

// @Summary Get allowed transitions
// @Description List the transitions permitted from a booking status, with metadata
// @Tags schedule
// @Produce json
// @Param status path string true "Current status"
// @Success 200 {object} map[string][]resdto.TransitionOptionResponse
// @Failure 422 {object} map[string]string
// @Router /statuses/{status}/transitions [get]
func (h *ScheduleHandler) AllowedTransitions(c *gin.Context) {
	options, err := h.bookingQueries.AllowedTransitions(c.Param("status"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Unknown booking status", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"transitions": resdto.FromTransitionOptions(options)})
}
