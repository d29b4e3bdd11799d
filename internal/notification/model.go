package notification

import "time"

const (
	TypeOrder   = "order"
	TypeStock   = "stock"
	TypeGeneral = "general"
)

type Notification struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
