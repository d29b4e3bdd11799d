package transport

import (
	"net/http"

	"bananex-be/internal/gallery"
)

const maxUploadSize = 10 << 20 // 10 MiB

type galleryHandler struct {
	svc gallery.Service
}

func (h *galleryHandler) list(w http.ResponseWriter, r *http.Request) {
	images, err := h.svc.ListAll(r.Context())
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"images": images})
}

func (h *galleryHandler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	img, err := h.svc.Upload(r.Context(), r.FormValue("title"), header.Filename, file)
	if err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"image": img})
}

func (h *galleryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondDomainError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"deleted": id})
}
