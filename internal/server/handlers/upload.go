// Handles image uploads (multipart/form-data).

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apierrors "github.com/lorekeep/lorekeep/internal/errors"
	"github.com/lorekeep/lorekeep/internal/images"
	"github.com/lorekeep/lorekeep/internal/utils"
)

// UploadHandler accepts image uploads and hands them to the image store.
type UploadHandler struct {
	Images         *images.Store
	MaxUploadBytes int64
}

// NewUploadHandler creates the upload handler.
func NewUploadHandler(store *images.Store, maxUploadBytes int64) *UploadHandler {
	return &UploadHandler{Images: store, MaxUploadBytes: maxUploadBytes}
}

// Upload reads the "image" form file and stores it, responding with the
// public path of the saved file.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		utils.RespondError(w, apierrors.UploadRejected("invalid multipart form").Wrap(err))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondError(w, apierrors.UploadRejected("no image file provided"))
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close uploaded file", "err", err)
		}
	}()

	path, err := h.Images.Save(header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		if errors.Is(err, images.ErrNotImage) {
			utils.RespondError(w, apierrors.UploadRejected("only image uploads are accepted"))
			return
		}
		utils.RespondError(w, apierrors.Storage(err))
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"path": path})
}

// Delete removes a previously uploaded image by its file name.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Images.Delete(r.PathValue("name")) {
		utils.RespondError(w, apierrors.NotFound("upload"))
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
