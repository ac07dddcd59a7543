package contact

import (
	"time"

	"github.com/google/uuid"
)

// Status is the delivery state of an archived message.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

// Record is an archived contact message.
type Record struct {
	ID        uuid.UUID
	Locale    string
	ClientIP  string
	Message   Message
	Status    Status
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
