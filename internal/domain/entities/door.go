package entities

import "time"

// Door is one industrial door configuration quoted under a deal.
// Dimensions and clearances are kept as entered (mm).
type Door struct {
	ID             string    `json:"id"`
	DealID         string    `json:"deal_id"`
	Position       int       `json:"position"`
	Quantity       int       `json:"quantity"`
	FrameType      string    `json:"frame_type"`
	CanvasType     string    `json:"canvas_type"`
	Material       string    `json:"material"`
	Finish         string    `json:"finish"`
	WidthMM        string    `json:"width_mm"`
	HeightMM       string    `json:"height_mm"`
	ClearanceLeft  string    `json:"clearance_left,omitempty"`
	ClearanceRight string    `json:"clearance_right,omitempty"`
	ClearanceTop   string    `json:"clearance_top,omitempty"`
	MotorSide      string    `json:"motor_side"`
	Actuators      []string  `json:"actuators,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Images         []string  `json:"images,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
