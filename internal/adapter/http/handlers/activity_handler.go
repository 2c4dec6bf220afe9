package handlers

import (
	"errors"
	"net/http"

	"freight_crm/internal/adapter/http/dto/request"
	"freight_crm/internal/adapter/http/middleware"
	"freight_crm/internal/usecase"
	"freight_crm/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActivityHandler handles the deal's notes, doors and the supplier quote
// e-mail built from the doors.
type ActivityHandler struct {
	notes  usecase.INoteUseCase
	doors  usecase.IDoorUseCase
	logger *zap.Logger
}

func NewActivityHandler(notes usecase.INoteUseCase, doors usecase.IDoorUseCase, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{notes: notes, doors: doors, logger: orNop(logger)}
}

// ListNotes godoc
// @Summary      List the deal's notes, newest first
// @Tags         notes
// @Produce      json
// @Param        id   path     string  true  "Deal ID"
// @Success      200  {array}  entities.Note
// @Router       /deals/{id}/notes [get]
func (h *ActivityHandler) ListNotes(c *gin.Context) {
	notes, err := h.notes.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapActivityError(err))
		return
	}
	c.JSON(http.StatusOK, nonNil(notes))
}

// CreateNote godoc
// @Summary      Add a note authored by the session user
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id           path      string                     true  "Deal ID"
// @Param        X-User-ID    header    string                     true  "Author"
// @Param        X-User-Name  header    string                     false "Author name"
// @Param        body         body      request.CreateNoteRequest  true  "Note"
// @Success      201          {object}  entities.Note
// @Failure      401          {object}  pkg.HTTPError
// @Router       /deals/{id}/notes [post]
func (h *ActivityHandler) CreateNote(c *gin.Context) {
	var req request.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	n, err := h.notes.Create(c.Request.Context(), middleware.SessionFrom(c), c.Param("id"), req.Body, req.Attachments)
	if err != nil {
		h.logger.Warn("[note][handler] create failed", zap.String("deal_id", c.Param("id")), zap.Error(err))
		writeError(c, mapActivityError(err))
		return
	}
	c.JSON(http.StatusCreated, n)
}

// ListDoors godoc
// @Summary      List the deal's doors by position
// @Tags         doors
// @Produce      json
// @Param        id   path     string  true  "Deal ID"
// @Success      200  {array}  entities.Door
// @Router       /deals/{id}/doors [get]
func (h *ActivityHandler) ListDoors(c *gin.Context) {
	doors, err := h.doors.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapActivityError(err))
		return
	}
	c.JSON(http.StatusOK, nonNil(doors))
}

// CreateDoor godoc
// @Summary      Append a door to the deal
// @Tags         doors
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Deal ID"
// @Param        body  body      request.DoorRequest  true  "Door"
// @Success      201   {object}  entities.Door
// @Router       /deals/{id}/doors [post]
func (h *ActivityHandler) CreateDoor(c *gin.Context) {
	var req request.DoorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	d, err := h.doors.Create(c.Request.Context(), c.Param("id"), req.ToEntity(""))
	if err != nil {
		writeError(c, mapActivityError(err))
		return
	}
	c.JSON(http.StatusCreated, d)
}

// UpdateDoor godoc
// @Summary      Replace a door
// @Tags         doors
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Deal ID"
// @Param        door_id  path      string               true  "Door ID"
// @Param        body     body      request.DoorRequest  true  "Door"
// @Success      200      {object}  entities.Door
// @Router       /deals/{id}/doors/{door_id} [put]
func (h *ActivityHandler) UpdateDoor(c *gin.Context) {
	var req request.DoorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	d, err := h.doors.Update(c.Request.Context(), c.Param("id"), req.ToEntity(c.Param("door_id")))
	if err != nil {
		writeError(c, mapActivityError(err))
		return
	}
	c.JSON(http.StatusOK, d)
}

// DeleteDoor godoc
// @Summary      Delete a door
// @Tags         doors
// @Param        id       path  string  true  "Deal ID"
// @Param        door_id  path  string  true  "Door ID"
// @Success      204
// @Router       /deals/{id}/doors/{door_id} [delete]
func (h *ActivityHandler) DeleteDoor(c *gin.Context) {
	if err := h.doors.Delete(c.Request.Context(), c.Param("id"), c.Param("door_id")); err != nil {
		writeError(c, mapActivityError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// QuoteEmail godoc
// @Summary      Build the supplier quote e-mail for the deal's doors
// @Tags         doors
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true   "Deal ID"
// @Param        body  body      request.QuoteEmailRequest  false  "Recipient"
// @Success      200   {object}  quote.Email
// @Failure      409   {object}  pkg.HTTPError
// @Router       /deals/{id}/quote-email [post]
func (h *ActivityHandler) QuoteEmail(c *gin.Context) {
	var req request.QuoteEmailRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidRequest(c, err)
			return
		}
	}

	email, err := h.doors.QuoteEmail(c.Request.Context(), c.Param("id"), req.To)
	if err != nil {
		writeError(c, mapActivityError(err))
		return
	}
	c.JSON(http.StatusOK, email)
}

func mapActivityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNoteBody),
		errors.Is(err, usecase.ErrInvalidFileID),
		errors.Is(err, usecase.ErrInvalidDoorID),
		errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAttachmentDenied):
		return pkg.NewDomainErrorSimple("ATTACHMENT_DENIED", "Attachment does not belong to this deal", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFileNotFound):
		return pkg.NewDomainErrorSimple("FILE_NOT_FOUND", "File not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDoorNotFound):
		return pkg.NewDomainErrorSimple("DOOR_NOT_FOUND", "Door not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoDoorsToQuote):
		return pkg.NewDomainErrorSimple("NO_DOORS_TO_QUOTE", "Deal has no doors to quote", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
