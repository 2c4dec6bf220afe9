package interfaces

import "context"

// IReportRenderer produces the PDF operation report of a deal.
type IReportRenderer interface {
	Render(ctx context.Context, dealID string) ([]byte, error)
}
