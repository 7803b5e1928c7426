package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
)

const (
	consoleNotFoundError   = "Endpoint not found"
	consoleNotFoundMessage = "The requested API endpoint is not available"
)

// LookupMockResponse returns the canned gateway response for a path
// template. Paths are matched literally, so "/v1/payments/{id}" must be
// sent with the placeholder intact. Unknown paths produce an error-shaped
// response, never a Go error.
func (u *Usecase) LookupMockResponse(ctx context.Context, path string) entity.ConsoleResponse {
	now := u.now().Format(time.RFC3339Nano)

	switch path {
	case "/v1/payments":
		return entity.ConsoleResponse{
			ID:        u.paymentID.Generate(),
			Amount:    1000,
			Currency:  "INR",
			Status:    "created",
			CreatedAt: now,
			Method:    "upi",
		}
	case "/v1/payments/{id}/capture":
		return entity.ConsoleResponse{
			ID:         u.paymentID.Generate(),
			Amount:     1000,
			Status:     "captured",
			CapturedAt: now,
		}
	case "/v1/refunds":
		return entity.ConsoleResponse{
			ID:        u.refundID.Generate(),
			Amount:    1000,
			Status:    "processed",
			CreatedAt: now,
		}
	case "/v1/payments/{id}":
		return entity.ConsoleResponse{
			ID:        u.paymentID.Generate(),
			Amount:    2500,
			Currency:  "INR",
			Status:    "captured",
			Method:    "card",
			CreatedAt: now,
		}
	default:
		return entity.ConsoleResponse{
			Error:   consoleNotFoundError,
			Message: consoleNotFoundMessage,
		}
	}
}
