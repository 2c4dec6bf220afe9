package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"freight_crm/internal/adapter/http/dto/request"
	"freight_crm/internal/adapter/http/dto/response"
	"freight_crm/internal/adapter/http/middleware"
	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase"
	"freight_crm/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	formFieldFile  = "file"
	formFieldLabel = "label"
	formFieldSize  = "size"
)

var errNoFilePart = errors.New("multipart body has no file part")

type FileHandler struct {
	usecase usecase.IFileUseCase
	logger  *zap.Logger
}

func NewFileHandler(uc usecase.IFileUseCase, logger *zap.Logger) *FileHandler {
	return &FileHandler{usecase: uc, logger: orNop(logger)}
}

// ListFiles godoc
// @Summary      List the deal's files
// @Tags         files
// @Produce      json
// @Param        id   path     string  true  "Deal ID"
// @Success      200  {array}  entities.DealFile
// @Router       /deals/{id}/files [get]
func (h *FileHandler) ListFiles(c *gin.Context) {
	files, err := h.usecase.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapFileError(err))
		return
	}
	c.JSON(http.StatusOK, nonNil(files))
}

// UploadFile godoc
// @Summary      Upload a file to the deal
// @Description  Multipart body. Optional "size" and "label" fields must precede the "file" part to apply while streaming; a label sent after it is applied once stored.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true   "Deal ID"
// @Param        file   formData  file    true   "File"
// @Param        label  formData  string  false  "Label"
// @Param        size   formData  int     false  "Declared size in bytes"
// @Success      201    {object}  entities.DealFile
// @Failure      413    {object}  pkg.HTTPError
// @Router       /deals/{id}/files [post]
func (h *FileHandler) UploadFile(c *gin.Context) {
	mr, err := c.Request.MultipartReader()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	in := usecase.UploadInput{DealID: c.Param("id"), Size: -1}
	var (
		stored    bool
		file      entities.DealFile
		lateLabel string
	)
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			invalidRequest(c, err)
			return
		}

		switch part.FormName() {
		case formFieldLabel:
			v, err := readField(part)
			if err != nil {
				invalidRequest(c, err)
				return
			}
			if stored {
				lateLabel = v
			} else {
				in.Label = v
			}
		case formFieldSize:
			v, err := readField(part)
			if err != nil {
				invalidRequest(c, err)
				return
			}
			if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
				in.Size = n
			}
		case formFieldFile:
			if stored {
				_ = part.Close()
				continue
			}
			in.Name = part.FileName()
			in.ContentType = part.Header.Get("Content-Type")
			in.Body = part

			f, err := h.usecase.Upload(c.Request.Context(), middleware.SessionFrom(c), in)
			if err != nil {
				h.logger.Warn("[file][handler] upload failed", zap.String("deal_id", in.DealID), zap.String("name", in.Name), zap.Error(err))
				writeError(c, mapFileError(err))
				return
			}
			stored = true
			file = f
		}
		_ = part.Close()
	}

	if !stored {
		invalidRequest(c, errNoFilePart)
		return
	}
	if lateLabel != "" {
		labeled, err := h.usecase.SetLabel(c.Request.Context(), file.DealID, file.ID, lateLabel)
		if err != nil {
			h.logger.Warn("[file][handler] label not stored", zap.String("file_id", file.ID), zap.Error(err))
		} else {
			file = labeled
		}
	}
	c.JSON(http.StatusCreated, file)
}

// PendingUploads godoc
// @Summary      List uploads still in progress for the deal
// @Tags         files
// @Produce      json
// @Param        id   path     string  true  "Deal ID"
// @Success      200  {array}  response.PendingUploadResponse
// @Router       /deals/{id}/files/pending [get]
func (h *FileHandler) PendingUploads(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPendingUploads(h.usecase.Pending(c.Param("id"))))
}

// DownloadFile godoc
// @Summary      Download a file's content
// @Tags         files
// @Produce      octet-stream
// @Param        id       path  string  true  "Deal ID"
// @Param        file_id  path  string  true  "File ID"
// @Success      200
// @Router       /deals/{id}/files/{file_id}/content [get]
func (h *FileHandler) DownloadFile(c *gin.Context) {
	f, rc, err := h.usecase.Open(c.Request.Context(), c.Param("id"), c.Param("file_id"))
	if err != nil {
		writeError(c, mapFileError(err))
		return
	}
	defer rc.Close()

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": f.Name})
	c.DataFromReader(http.StatusOK, f.Size, f.ContentType, rc, map[string]string{"Content-Disposition": disposition})
}

// DeleteFile godoc
// @Summary      Delete a file
// @Tags         files
// @Param        id       path  string  true  "Deal ID"
// @Param        file_id  path  string  true  "File ID"
// @Success      204
// @Router       /deals/{id}/files/{file_id} [delete]
func (h *FileHandler) DeleteFile(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), c.Param("file_id")); err != nil {
		writeError(c, mapFileError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SetFileLabel godoc
// @Summary      Set or clear a file's label
// @Tags         files
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Deal ID"
// @Param        file_id  path      string                    true  "File ID"
// @Param        body     body      request.FileLabelRequest  true  "Label"
// @Success      200      {object}  entities.DealFile
// @Router       /deals/{id}/files/{file_id}/label [put]
func (h *FileHandler) SetFileLabel(c *gin.Context) {
	var req request.FileLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	f, err := h.usecase.SetLabel(c.Request.Context(), c.Param("id"), c.Param("file_id"), req.Label)
	if err != nil {
		writeError(c, mapFileError(err))
		return
	}
	c.JSON(http.StatusOK, f)
}

const maxFieldSize = 4 << 10

func readField(r io.Reader) (string, error) {
	b, err := io.ReadAll(io.LimitReader(r, maxFieldSize))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func mapFileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFileName),
		errors.Is(err, usecase.ErrEmptyFile),
		errors.Is(err, usecase.ErrInvalidFileID),
		errors.Is(err, usecase.ErrInvalidFileLabel):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File exceeds the upload limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrFileNotFound):
		return pkg.NewDomainErrorSimple("FILE_NOT_FOUND", "File not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLabelsUnavailable):
		return pkg.NewDomainError("LABELS_UNAVAILABLE", "File labels are unavailable", err, http.StatusServiceUnavailable)
	default:
		return mapCommonError(err)
	}
}
