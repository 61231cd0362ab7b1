package api

import (
	"errors"
	"net/http"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/schedule"
	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Validate a candidate time slot and create a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", "")
		return
	}

	params := commands.CreateBookingParams{
		CustomerID: req.CustomerID,
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Note:       req.GetNote(),
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), params)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Reschedule booking
// @Description Move a booking to a new validated time slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.RescheduleBookingRequest true "Reschedule request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/reschedule [post]
func (h *BookingHandler) Reschedule(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	var req reqdto.RescheduleBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", "")
		return
	}

	params := commands.RescheduleBookingParams{
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
	}

	view, err := h.bookingCommands.Reschedule(c.Request.Context(), id, params)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Transition booking status
// @Description Drive a booking along the lifecycle state machine
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param X-Actor header string false "Identity recorded in the history ledger"
// @Param request body reqdto.TransitionStatusRequest true "Transition request"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/status [post]
func (h *BookingHandler) TransitionStatus(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	var req reqdto.TransitionStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", "")
		return
	}

	changedBy := c.GetString(middleware.ActorKey)
	if changedBy == "" {
		changedBy = middleware.ActorSystem
	}

	params := commands.TransitionStatusParams{
		Status:    req.Status,
		Reason:    req.GetReason(),
		Notes:     req.GetNotes(),
		ChangedBy: changedBy,
	}

	result, err := h.bookingCommands.TransitionStatus(c.Request.Context(), id, params)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking history
// @Description List the booking's status transitions in chronological order
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string][]resdto.HistoryEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/history [get]
func (h *BookingHandler) History(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	entries, err := h.bookingQueries.History(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": resdto.FromHistoryEntries(entries)})
}

func parseBookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", "")
		return uuid.Nil, false
	}
	return id, true
}

// writeBookingError translates usecase and domain outcomes into protocol
// responses: conflicts with existing state are 409, rule violations are 422,
// missing entities are 404.
func writeBookingError(c *gin.Context, err error) {
	var conflictErr *schedule.ConflictError
	if errors.As(err, &conflictErr) {
		writeConflictError(c, conflictErr)
		return
	}

	var transitionErr *booking.TransitionError
	if errors.As(err, &transitionErr) {
		writeTransitionError(c, transitionErr)
		return
	}

	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", "")
	case errors.Is(err, errs.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", "")
	case errors.Is(err, errs.ErrProviderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Provider not found", "")
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", "")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
	}
}

func writeConflictError(c *gin.Context, err *schedule.ConflictError) {
	status := http.StatusUnprocessableEntity
	if err.Kind == schedule.KindDoubleBooked || err.Kind == schedule.KindInsufficientGap {
		status = http.StatusConflict
	}

	resp := httperr.Response{
		Status:  status,
		Message: conflictMessage(err.Kind),
		Kind:    string(err.Kind),
	}
	if err.Conflict != nil {
		resp.Conflict = gin.H{
			"booking_id": err.Conflict.BookingID,
			"start_time": err.Conflict.Slot.Start(),
			"end_time":   err.Conflict.Slot.End(),
		}
	}
	httperr.AbortWith(c, err, resp)
}

func conflictMessage(kind schedule.ConflictKind) string {
	switch kind {
	case schedule.KindOutsideBusinessHours:
		return "Requested time is outside business hours"
	case schedule.KindInPast:
		return "Requested time is in the past"
	case schedule.KindInvalidInterval:
		return "End time must be after start time"
	case schedule.KindDoubleBooked:
		return "The provider already has a booking in this time slot"
	case schedule.KindInsufficientGap:
		return "The requested time leaves less than the minimum gap between bookings"
	default:
		return "Booking conflict"
	}
}

func writeTransitionError(c *gin.Context, err *booking.TransitionError) {
	status := http.StatusUnprocessableEntity
	var msg string
	switch err.Kind {
	case booking.KindUnknownStatus:
		msg = "Unknown booking status"
	case booking.KindReasonRequired:
		msg = "This transition requires a reason"
	case booking.KindInvalidTransition:
		status = http.StatusConflict
		msg = "Transition not allowed from current status"
	case booking.KindPastBooking:
		msg = "Booking has already started or passed"
	case booking.KindTooCloseToCancel:
		status = http.StatusConflict
		msg = "Too close to the booking start to cancel"
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}
	httperr.AbortWithError(c, status, err, msg, string(err.Kind))
}
