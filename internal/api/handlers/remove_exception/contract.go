package remove_exception

import "context"

type ScheduleService interface {
	RemoveException(ctx context.Context, affiliateID int64, exceptionID string, userID int64, isAdmin bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
