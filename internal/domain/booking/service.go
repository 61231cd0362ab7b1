package booking

import "github.com/google/uuid"

// Service is the bookable offering; its duration drives slot length.
type Service struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
	Price           Money
}
