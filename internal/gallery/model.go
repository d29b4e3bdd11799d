package gallery

import "time"

type Image struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	FilePath  string    `json:"file_path"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
