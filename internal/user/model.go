package user

import "time"

type UserStatus string

const (
	StatusPending   UserStatus = "pending"
	StatusApproved  UserStatus = "approved"
	StatusSuspended UserStatus = "suspended"
)

type User struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	BusinessName string     `json:"business_name"`
	GSTNumber    string     `json:"gst_number"`
	Address      string     `json:"address"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ProfileUpdate carries the optional profile fields: nil means leave
// unchanged.
type ProfileUpdate struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	BusinessName *string `json:"business_name"`
	GSTNumber    *string `json:"gst_number"`
	Address      *string `json:"address"`
}

type StockAlert struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Notified  bool      `json:"notified"`
	CreatedAt time.Time `json:"created_at"`
}
