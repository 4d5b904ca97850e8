package domain

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation is one evaluated expression as kept in the history.
// Exactly one of Result or Error is meaningful: Kind is empty on success.
type Evaluation struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Result     int64     `json:"result"`
	Error      string    `json:"error,omitempty"`
	Kind       string    `json:"kind,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (e Evaluation) Failed() bool {
	return e.Kind != ""
}
