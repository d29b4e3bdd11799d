package user

import (
	"context"
	"database/sql"
	"errors"

	"bananex-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdateProfile(ctx context.Context, id uint, upd ProfileUpdate) (*User, error)
	ListAll(ctx context.Context) ([]*User, error)
	UpdateStatus(ctx context.Context, id uint, status UserStatus) (*User, error)
	CreateStockAlert(ctx context.Context, userID, productID uint) (*StockAlert, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	log := logger.FromCtx(ctx)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, phone, password_hash, role, business_name, gst_number, address, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending', NOW())
		RETURNING id, status, created_at
	`, u.Name, u.Email, u.Phone, u.PasswordHash, u.Role, u.BusinessName, u.GSTNumber, u.Address).
		Scan(&u.ID, &u.Status, &u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return ErrEmailExists
		}
		log.Error("db: failed to insert user",
			zap.String("email", u.Email),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, password_hash, role, business_name, gst_number, address, status, created_at
		FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role,
		&u.BusinessName, &u.GSTNumber, &u.Address, &u.Status, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, password_hash, role, business_name, gst_number, address, status, created_at
		FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role,
		&u.BusinessName, &u.GSTNumber, &u.Address, &u.Status, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile applies only the provided fields, COALESCE keeps the
// stored value for anything passed as nil.
func (r *repository) UpdateProfile(ctx context.Context, id uint, upd ProfileUpdate) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET name = COALESCE($1, name),
		    phone = COALESCE($2, phone),
		    business_name = COALESCE($3, business_name),
		    gst_number = COALESCE($4, gst_number),
		    address = COALESCE($5, address)
		WHERE id = $6
		RETURNING id, name, email, phone, password_hash, role, business_name, gst_number, address, status, created_at
	`, upd.Name, upd.Phone, upd.BusinessName, upd.GSTNumber, upd.Address, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role,
			&u.BusinessName, &u.GSTNumber, &u.Address, &u.Status, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) ListAll(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, role, business_name, gst_number, address, status, created_at
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role,
			&u.BusinessName, &u.GSTNumber, &u.Address, &u.Status, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status UserStatus) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		UPDATE users SET status = $1 WHERE id = $2
		RETURNING id, name, email, status
	`, status, id).Scan(&u.ID, &u.Name, &u.Email, &u.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) CreateStockAlert(ctx context.Context, userID, productID uint) (*StockAlert, error) {
	var a StockAlert
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO stock_alerts (user_id, product_id, notified, created_at)
		VALUES ($1, $2, FALSE, NOW())
		RETURNING id, user_id, product_id, notified, created_at
	`, userID, productID).Scan(&a.ID, &a.UserID, &a.ProductID, &a.Notified, &a.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrAlertExists
		}
		return nil, err
	}
	return &a, nil
}
