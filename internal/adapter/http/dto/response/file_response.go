package response

import (
	"time"

	"freight_crm/internal/domain/entities"
)

type PendingUploadResponse struct {
	TempID        string    `json:"temp_id"`
	Name          string    `json:"name"`
	BytesTotal    int64     `json:"bytes_total"`
	BytesReceived int64     `json:"bytes_received"`
	Progress      *float64  `json:"progress"`
	StartedAt     time.Time `json:"started_at"`
}

// FromPendingUploads reports progress as null while the total size is unknown.
func FromPendingUploads(pending []entities.PendingUpload) []PendingUploadResponse {
	out := make([]PendingUploadResponse, 0, len(pending))
	for _, p := range pending {
		r := PendingUploadResponse{
			TempID:        p.TempID,
			Name:          p.Name,
			BytesTotal:    p.BytesTotal,
			BytesReceived: p.BytesReceived,
			StartedAt:     p.StartedAt,
		}
		if progress := p.Progress(); progress >= 0 {
			r.Progress = &progress
		}
		out = append(out, r)
	}
	return out
}
