// Package domlog records business-level audit events. Unlike the diagnostic
// logs in pkg/logger, these lines are part of the application's observable
// behavior and their wording is stable.
//
//go:generate mockgen -package mockdomlog -source=domlog.go -destination=mock/mockdomlog.go *
package domlog

import (
	"context"
	"fmt"

	"crm/pkg/domain"
	"crm/pkg/logger"
)

// DomainLogger records domain events worth auditing.
type DomainLogger interface {
	// UserTypeHasChanged records that a user switched between customer and
	// employee membership.
	UserTypeHasChanged(ctx context.Context, userID int64, oldType, newType domain.UserType)
}

// ZapDomainLogger writes audit lines through the context-scoped zap logger.
type ZapDomainLogger struct{}

// NewZapDomainLogger creates a ZapDomainLogger.
func NewZapDomainLogger() *ZapDomainLogger {
	return &ZapDomainLogger{}
}

// UserTypeHasChanged logs the membership change. The message text is stable;
// operational tooling greps for it.
func (l *ZapDomainLogger) UserTypeHasChanged(ctx context.Context, userID int64, oldType, newType domain.UserType) {
	logger.Info(ctx, fmt.Sprintf("User %d changed type from %s to %s", userID, oldType, newType))
}
