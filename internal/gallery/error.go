package gallery

import "errors"

var (
	ErrImageNotFound   = errors.New("image not found")
	ErrUnsupportedType = errors.New("unsupported image type, use jpg, png or webp")
	ErrEmptyFile       = errors.New("uploaded file is empty")
)
