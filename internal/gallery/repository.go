package gallery

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	Create(ctx context.Context, img *Image) error
	ListAll(ctx context.Context) ([]Image, error)
	GetByID(ctx context.Context, id uint) (*Image, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, img *Image) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO gallery_images (title, file_path, url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, img.Title, img.FilePath, img.URL).Scan(&img.ID, &img.CreatedAt)
}

func (r *repository) ListAll(ctx context.Context) ([]Image, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, file_path, url, created_at
		FROM gallery_images
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.Title, &img.FilePath, &img.URL, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Image, error) {
	var img Image
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, file_path, url, created_at
		FROM gallery_images WHERE id = $1
	`, id).Scan(&img.ID, &img.Title, &img.FilePath, &img.URL, &img.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrImageNotFound
	}
	return nil
}
