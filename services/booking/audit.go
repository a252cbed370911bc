package booking

import (
	"roomyy/utils"

	"go.uber.org/zap"
)

// The booking audit trail: every targeted operation logs an attempt event
// before acting and a success or failure event after. This is observability
// only, failed writes are never replayed.

func logOperation(operation, bookingID, actorID string, details map[string]any) {
	utils.GetLogger().Info("booking operation",
		zap.String("operation", operation),
		zap.String("bookingId", bookingID),
		zap.String("userId", actorID),
		zap.Any("details", details),
	)
}

func logFailure(operation, bookingID, actorID string, err error, details map[string]any) {
	utils.GetLogger().Error("booking operation failed",
		zap.String("operation", operation),
		zap.String("bookingId", bookingID),
		zap.String("userId", actorID),
		zap.Error(err),
		zap.Any("details", details),
	)
}
