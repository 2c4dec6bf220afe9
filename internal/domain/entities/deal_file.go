package entities

import "time"

type DealFile struct {
	ID          string    `json:"id"`
	DealID      string    `json:"deal_id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Label       string    `json:"label,omitempty"`
	StorageKey  string    `json:"-"`
	UploadedBy  string    `json:"uploaded_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PendingUpload is an in-flight upload, keyed by a temporary id until the
// file is persisted.
type PendingUpload struct {
	TempID        string    `json:"temp_id"`
	DealID        string    `json:"deal_id"`
	Name          string    `json:"name"`
	BytesTotal    int64     `json:"bytes_total"`
	BytesReceived int64     `json:"bytes_received"`
	StartedAt     time.Time `json:"started_at"`
}

// Progress returns the received fraction in [0,1], or -1 when the total is unknown.
func (p PendingUpload) Progress() float64 {
	if p.BytesTotal <= 0 {
		return -1
	}
	if p.BytesReceived >= p.BytesTotal {
		return 1
	}
	return float64(p.BytesReceived) / float64(p.BytesTotal)
}
