package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewdeck-dev/crewdeck/internal/store"
	"github.com/crewdeck-dev/crewdeck/internal/types"
)

func (h *Handler) ListUploads(ctx *gin.Context) {
	uploads, err := h.store.ListUploads(ctx.Request.Context())

	if err != nil {
		log.Printf("Failed to list uploads: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch uploads"})
		return
	}

	ctx.JSON(http.StatusOK, uploads)
}

// CreateUpload writes the blob before the metadata record, so a failed
// insert can still clean up its bytes and no record ever points at a blob
// that was never written.
func (h *Handler) CreateUpload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	memberName := ctx.PostForm("memberName")

	if memberName == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Member name is required"})
		return
	}

	if file.Size > types.MaxUploadSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File is too large. Maximum size is 10MB"})
		return
	}

	fileType := file.Header.Get("Content-Type")

	if _, ok := types.AllowedUploadTypes[fileType]; !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only PDF, DOC, and DOCX files are allowed."})
		return
	}

	filename, err := h.files.Save(file)

	if err != nil {
		log.Printf("Failed to store uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	upload, err := h.store.CreateUpload(ctx.Request.Context(), store.InsertUpload{
		Filename:     filename,
		OriginalName: file.Filename,
		MemberName:   memberName,
		FileSize:     file.Size,
		FileType:     fileType,
	})

	if err != nil {
		log.Printf("Failed to create upload record: %v", err)
		if removeErr := h.files.Remove(filename); removeErr != nil {
			log.Printf("Failed to remove orphaned blob %s: %v", filename, removeErr)
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	ctx.JSON(http.StatusCreated, upload)
}

// DeleteUpload removes the metadata first and the bytes second. A leftover
// blob without a record is invisible to clients; a record without bytes
// would 404 on download, so that ordering is the safer failure.
func (h *Handler) DeleteUpload(ctx *gin.Context) {
	id := ctx.Param("id")

	upload, err := h.store.GetUpload(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Upload not found"})
			return
		}
		log.Printf("Failed to fetch upload: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	deleted, err := h.store.DeleteUpload(ctx.Request.Context(), id)

	if err != nil {
		log.Printf("Failed to delete upload record: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Upload not found"})
		return
	}

	if err := h.files.Remove(upload.Filename); err != nil {
		log.Printf("Failed to remove blob %s: %v", upload.Filename, err)
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}

func (h *Handler) DownloadUpload(ctx *gin.Context) {
	upload, err := h.store.GetUpload(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Upload not found"})
			return
		}
		log.Printf("Failed to fetch upload: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to download file"})
		return
	}

	path, ok := h.files.Path(upload.Filename)

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "File not found on disk"})
		return
	}

	ctx.FileAttachment(path, upload.OriginalName)
}
