package logging

import (
	"context"

	"go.uber.org/zap"
)

// Audit resource types.
const (
	ResourceProfile        = "profile"
	ResourceCurrentProfile = "current_profile"
	ResourceDiet           = "diet"
	ResourceMealItem       = "meal_item"
	ResourceFood           = "food"
)

// Audit results.
const (
	AuditSuccess = "success"
	AuditFailure = "failure"
	AuditNoop    = "noop"
)

// LogAuditEvent logs a structured audit event for a state mutation.
// resourceType is one of the Resource constants and result one of the Audit
// result constants. details may be nil.
func LogAuditEvent(
	ctx context.Context,
	action, resourceType, resourceID, result string,
	details map[string]any,
) {
	LoggerFromContext(ctx).Info("Audit event",
		zap.String("audit.action", action),
		zap.String("audit.resource_type", resourceType),
		zap.String("audit.resource_id", resourceID),
		zap.String("audit.result", result),
		zap.Any("audit.details", details),
	)
}
