package session

import (
	"time"

	"github.com/google/uuid"

	"keiyaku/internal/navigation"
	"keiyaku/internal/selection"
)

// Session is everything the signup wizard remembers about one
// visitor: the contract choice from the previous step, the product
// selection in progress and where in the wizard the browser is.
type Session struct {
	ID           string                 `json:"id"`
	ContractType selection.ContractType `json:"contract_type"`
	Selection    selection.State        `json:"selection"`
	CurrentPath  string                 `json:"current_path"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func New(contractType selection.ContractType) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:           uuid.New().String(),
		ContractType: contractType,
		Selection:    selection.NewState(),
		CurrentPath:  navigation.StepProductSelection,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
