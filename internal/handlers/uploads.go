// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"draftdeck/internal/extract"
	"draftdeck/internal/middleware"
	"draftdeck/internal/models"
	"draftdeck/internal/slug"
	"draftdeck/internal/storage"
	"draftdeck/internal/store"
	"draftdeck/internal/style"
)

// downloadURLTTL is how long a presigned download link stays valid.
const downloadURLTTL = 15 * time.Minute

// Uploads handles writing-sample ingestion: file uploads, typed posts,
// listing, deletion and original-file downloads. Every successful
// ingestion triggers a free style profile rebuild.
type Uploads struct {
	profileRebuilder
	storage *storage.Client
}

// NewUploads creates the uploads handler group. storage may be nil,
// in which case only the extracted text is kept.
func NewUploads(uploads *store.UploadStore, onboardings *store.OnboardingStore, profiles *store.ProfileStore, backend style.TextGenerator, storage *storage.Client) *Uploads {
	return &Uploads{
		profileRebuilder: profileRebuilder{
			uploads:     uploads,
			onboardings: onboardings,
			profiles:    profiles,
			backend:     backend,
		},
		storage: storage,
	}
}

// Create handles POST /api/uploads (multipart). Accepts .txt and .pdf
// up to 25MB, extracts the plain text and stores the raw file in the
// private bucket.
func (h *Uploads) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, models.MaxUploadBytes+4096)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field required (max 25MB)")
		return
	}
	defer file.Close()

	if header.Size > models.MaxUploadBytes {
		writeError(w, http.StatusBadRequest, "file exceeds the 25MB limit")
		return
	}

	var fileType models.FileType
	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".txt":
		fileType = models.FileTypeTxt
	case ".pdf":
		fileType = models.FileTypePdf
	default:
		writeError(w, http.StatusBadRequest, "only .txt and .pdf files are supported")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read file")
		return
	}

	text, err := extract.Text(fileType, data)
	if err != nil {
		slog.Warn("extract text", "file", header.Filename, "error", err)
		writeError(w, http.StatusBadRequest, "could not extract text from file")
		return
	}
	if strings.TrimSpace(text) == "" {
		writeError(w, http.StatusBadRequest, "file contains no extractable text")
		return
	}

	var s3Key *string
	if h.storage != nil {
		key := fmt.Sprintf("uploads/%s/%s-%s%s",
			sess.UserID, uuid.New(), slug.Generate(strings.TrimSuffix(header.Filename, ext)), ext)
		if err := h.storage.Upload(r.Context(), key, contentTypeFor(fileType), bytes.NewReader(data), int64(len(data))); err != nil {
			// Keep the extracted text; the original file is a convenience.
			slog.Warn("store original file", "key", key, "error", err)
		} else {
			s3Key = &key
		}
	}

	upload, err := h.uploads.Create(&models.Upload{
		UserID:      sess.UserID,
		Source:      models.SourceFile,
		FileType:    fileType,
		Filename:    header.Filename,
		S3Key:       s3Key,
		SizeBytes:   int64(len(data)),
		TextExtract: text,
	})
	if err != nil {
		slog.Error("create upload", "error", err)
		writeError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	h.rebuildAfterIngest(r, sess.UserID)
	writeJSON(w, http.StatusCreated, upload)
}

// CreateTyped handles POST /api/uploads/typed, for posts pasted into
// the UI instead of uploaded as files.
func (h *Uploads) CreateTyped(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text required")
		return
	}

	upload, err := h.uploads.Create(&models.Upload{
		UserID:      sess.UserID,
		Source:      models.SourceTyped,
		FileType:    models.FileTypeText,
		Filename:    strings.TrimSpace(req.Title),
		SizeBytes:   int64(len(req.Text)),
		TextExtract: req.Text,
	})
	if err != nil {
		slog.Error("create typed upload", "error", err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}

	h.rebuildAfterIngest(r, sess.UserID)
	writeJSON(w, http.StatusCreated, upload)
}

// List handles GET /api/uploads.
func (h *Uploads) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	uploads, err := h.uploads.ListByUser(sess.UserID)
	if err != nil {
		slog.Error("list uploads", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if uploads == nil {
		uploads = []*models.Upload{}
	}
	writeJSON(w, http.StatusOK, uploads)
}

// Delete handles DELETE /api/uploads/{id}, removing both the row and
// the stored original.
func (h *Uploads) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	upload, err := h.uploads.FindByID(id)
	if err != nil {
		slog.Error("find upload", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if upload == nil || upload.UserID != sess.UserID {
		writeError(w, http.StatusNotFound, "upload not found")
		return
	}

	if upload.S3Key != nil && h.storage != nil {
		if err := h.storage.Delete(r.Context(), *upload.S3Key); err != nil {
			// Orphaned objects are cheaper than blocking the delete.
			slog.Warn("delete original file", "key", *upload.S3Key, "error", err)
		}
	}

	if err := h.uploads.Delete(id); err != nil {
		slog.Error("delete upload", "error", err)
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Download handles GET /api/uploads/{id}/download, returning a
// presigned URL for the original file.
func (h *Uploads) Download(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	upload, err := h.uploads.FindByID(id)
	if err != nil {
		slog.Error("find upload", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if upload == nil || upload.UserID != sess.UserID {
		writeError(w, http.StatusNotFound, "upload not found")
		return
	}
	if upload.S3Key == nil || h.storage == nil {
		writeError(w, http.StatusNotFound, "no stored file for this upload")
		return
	}

	url, err := h.storage.PresignedURL(r.Context(), *upload.S3Key, downloadURLTTL)
	if err != nil {
		slog.Error("presign download", "error", err)
		writeError(w, http.StatusInternalServerError, "could not create download link")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"url":        url,
		"expires_in": int(downloadURLTTL.Seconds()),
	})
}

// rebuildAfterIngest refreshes the style profile with the new sample
// included. Free, and fail-soft: the upload already succeeded.
func (h *Uploads) rebuildAfterIngest(r *http.Request, userID uuid.UUID) {
	if _, _, err := h.rebuild(r.Context(), userID); err != nil && !errors.Is(err, errNoCorpus) {
		slog.Warn("rebuild profile", "user", userID, "error", err)
	}
}

func contentTypeFor(ft models.FileType) string {
	if ft == models.FileTypePdf {
		return "application/pdf"
	}
	return "text/plain; charset=utf-8"
}
