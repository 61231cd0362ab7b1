package request

import (
	"strings"
	"time"

	"slotbook/internal/pkg/ptr"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	ProviderID uuid.UUID `json:"provider_id" binding:"required"`
	ServiceID  uuid.UUID `json:"service_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
	Note       *string   `json:"note,omitempty" binding:"omitempty,max=500"`
}

func (r CreateBookingRequest) GetNote() *string {
	return trimmedOrNil(r.Note)
}

type RescheduleBookingRequest struct {
	StartTime  time.Time  `json:"start_time" binding:"required"`
	EndTime    time.Time  `json:"end_time" binding:"required"`
	ProviderID *uuid.UUID `json:"provider_id,omitempty"`
	ServiceID  *uuid.UUID `json:"service_id,omitempty"`
}

type TransitionStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Reason *string `json:"reason,omitempty" binding:"omitempty,max=500"`
	Notes  *string `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r TransitionStatusRequest) GetReason() *string {
	return trimmedOrNil(r.Reason)
}

func (r TransitionStatusRequest) GetNotes() *string {
	return trimmedOrNil(r.Notes)
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return ptr.TrimmedOrNil(&trimmed)
}
