package feed

import (
	"fmt"
	"log/slog"
)

// restyLogger routes resty's own diagnostics into slog instead of stderr.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...any) {
	slog.Error(fmt.Sprintf(format, v...), slog.String("component", "resty"))
}

func (restyLogger) Warnf(format string, v ...any) {
	slog.Warn(fmt.Sprintf(format, v...), slog.String("component", "resty"))
}

func (restyLogger) Debugf(format string, v ...any) {
	slog.Debug(fmt.Sprintf(format, v...), slog.String("component", "resty"))
}
