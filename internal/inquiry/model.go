package inquiry

import "time"

type InquiryStatus string

const (
	StatusNew       InquiryStatus = "new"
	StatusResponded InquiryStatus = "responded"
	StatusClosed    InquiryStatus = "closed"
)

// Inquiry is a product or trade question. Guests submit with a name
// and phone of their own; signed-in users get theirs filled from the
// account, and UserID links back to it.
type Inquiry struct {
	ID        uint          `json:"id"`
	UserID    *uint         `json:"user_id,omitempty"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
