package request

import (
	"strings"

	"freight_crm/internal/domain/entities"
)

type CreateNoteRequest struct {
	Body        string   `json:"body" binding:"required"`
	Attachments []string `json:"attachments"`
}

// DoorRequest carries one industrial door line. Dimensions are free text in
// millimetres, as typed by the seller.
type DoorRequest struct {
	Quantity       int      `json:"quantity" binding:"gte=0"`
	FrameType      string   `json:"frame_type"`
	CanvasType     string   `json:"canvas_type"`
	Material       string   `json:"material"`
	Finish         string   `json:"finish"`
	WidthMM        string   `json:"width_mm"`
	HeightMM       string   `json:"height_mm"`
	ClearanceLeft  string   `json:"clearance_left"`
	ClearanceRight string   `json:"clearance_right"`
	ClearanceTop   string   `json:"clearance_top"`
	MotorSide      string   `json:"motor_side"`
	Actuators      []string `json:"actuators"`
	Notes          string   `json:"notes"`
	Images         []string `json:"images"`
}

func (r DoorRequest) ToEntity(id string) entities.Door {
	return entities.Door{
		ID:             id,
		Quantity:       r.Quantity,
		FrameType:      strings.TrimSpace(r.FrameType),
		CanvasType:     strings.TrimSpace(r.CanvasType),
		Material:       strings.TrimSpace(r.Material),
		Finish:         strings.TrimSpace(r.Finish),
		WidthMM:        strings.TrimSpace(r.WidthMM),
		HeightMM:       strings.TrimSpace(r.HeightMM),
		ClearanceLeft:  strings.TrimSpace(r.ClearanceLeft),
		ClearanceRight: strings.TrimSpace(r.ClearanceRight),
		ClearanceTop:   strings.TrimSpace(r.ClearanceTop),
		MotorSide:      strings.TrimSpace(r.MotorSide),
		Actuators:      r.Actuators,
		Notes:          strings.TrimSpace(r.Notes),
		Images:         r.Images,
	}
}

type QuoteEmailRequest struct {
	To string `json:"to" binding:"omitempty,email"`
}

// FileLabelRequest sets a file's label. An empty label removes it.
type FileLabelRequest struct {
	Label string `json:"label"`
}

// LiveQuery is one message of the live search socket.
type LiveQuery struct {
	Query string `json:"query"`
}
