package repomanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/infrakeeper/internal/logging"
)

// gooseLogger adapts logging.Logger to goose.Logger.
type gooseLogger struct {
	ctx    context.Context
	logger logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.logger.Info(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level, then panics.
func (g gooseLogger) Fatalf(format string, v ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	g.logger.Error(g.ctx, msg)
	panic(msg)
}
