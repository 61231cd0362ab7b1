package response

import (
	"time"

	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         uuid.UUID  `json:"customerId"`
	ProviderID         uuid.UUID  `json:"providerId"`
	ServiceID          uuid.UUID  `json:"serviceId"`
	StartTime          time.Time  `json:"startTime"`
	EndTime            time.Time  `json:"endTime"`
	Status             string     `json:"status"`
	PriceCents         int64      `json:"priceCents"`
	Note               *string    `json:"note,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type SlotsResponse struct {
	ProviderID uuid.UUID `json:"providerId"`
	Date       string    `json:"date"`
	Slots      []string  `json:"slots"`
}

type TransitionResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	ChangedAt time.Time `json:"changedAt"`
}

type HistoryEntryResponse struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Reason    *string   `json:"reason,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	ChangedAt time.Time `json:"changedAt"`
	ChangedBy string    `json:"changedBy"`
}

type TransitionOptionResponse struct {
	To             string `json:"to"`
	RequiresReason bool   `json:"requiresReason"`
	DisplayName    string `json:"displayName"`
	Description    string `json:"description"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                 v.ID,
		CustomerID:         v.CustomerID,
		ProviderID:         v.ProviderID,
		ServiceID:          v.ServiceID,
		StartTime:          v.StartTime,
		EndTime:            v.EndTime,
		Status:             v.Status,
		PriceCents:         v.PriceCents,
		Note:               v.Note,
		CancelledAt:        v.CancelledAt,
		CancellationReason: v.CancellationReason,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromTransitionResult(r *commands.TransitionStatusResult) *TransitionResponse {
	return &TransitionResponse{
		BookingID: r.BookingID,
		From:      r.From,
		To:        r.To,
		ChangedAt: r.ChangedAt,
	}
}

func FromHistoryEntries(entries []queries.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = HistoryEntryResponse{
			From:      e.From,
			To:        e.To,
			Reason:    e.Reason,
			Notes:     e.Notes,
			ChangedAt: e.ChangedAt,
			ChangedBy: e.ChangedBy,
		}
	}
	return out
}

func FromTransitionOptions(options []queries.TransitionOption) []TransitionOptionResponse {
	out := make([]TransitionOptionResponse, len(options))
	for i, o := range options {
		out[i] = TransitionOptionResponse{
			To:             o.To,
			RequiresReason: o.RequiresReason,
			DisplayName:    o.DisplayName,
			Description:    o.Description,
		}
	}
	return out
}
