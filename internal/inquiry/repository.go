package inquiry

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	Create(ctx context.Context, inq *Inquiry) error
	CreateForUser(ctx context.Context, userID uint, message string) (*Inquiry, error)
	ListByUser(ctx context.Context, userID uint) ([]Inquiry, error)
	ListAll(ctx context.Context) ([]Inquiry, error)
	UpdateStatus(ctx context.Context, id uint, status InquiryStatus) (*Inquiry, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, inq *Inquiry) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO inquiries (name, phone, message, status)
		VALUES ($1, $2, $3, 'new')
		RETURNING id, status, created_at
	`, inq.Name, inq.Phone, inq.Message).Scan(&inq.ID, &inq.Status, &inq.CreatedAt)
}

// CreateForUser copies the account's name and phone into the inquiry
// so the record stays readable after profile edits.
func (r *repository) CreateForUser(ctx context.Context, userID uint, message string) (*Inquiry, error) {
	var inq Inquiry
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO inquiries (user_id, name, phone, message, status)
		SELECT id, name, phone, $2, 'new' FROM users WHERE id = $1
		RETURNING id, user_id, name, phone, message, status, created_at
	`, userID, message).
		Scan(&inq.ID, &inq.UserID, &inq.Name, &inq.Phone, &inq.Message, &inq.Status, &inq.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inq, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]Inquiry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, phone, message, status, created_at
		FROM inquiries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInquiries(rows)
}

func (r *repository) ListAll(ctx context.Context) ([]Inquiry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, phone, message, status, created_at
		FROM inquiries
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInquiries(rows)
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status InquiryStatus) (*Inquiry, error) {
	var inq Inquiry
	err := r.db.QueryRowContext(ctx, `
		UPDATE inquiries SET status = $1 WHERE id = $2
		RETURNING id, user_id, name, phone, message, status, created_at
	`, status, id).
		Scan(&inq.ID, &inq.UserID, &inq.Name, &inq.Phone, &inq.Message, &inq.Status, &inq.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInquiryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inq, nil
}

func scanInquiries(rows *sql.Rows) ([]Inquiry, error) {
	var inquiries []Inquiry
	for rows.Next() {
		var inq Inquiry
		if err := rows.Scan(&inq.ID, &inq.UserID, &inq.Name, &inq.Phone, &inq.Message,
			&inq.Status, &inq.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}
