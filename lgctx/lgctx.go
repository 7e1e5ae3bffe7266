package lgctx

import (
	"context"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/kolsch"
)

type loggerKey struct{}

func NewContext(parent context.Context, logger lager.Logger) context.Context {
	return context.WithValue(parent, loggerKey{}, logger)
}

// FromContext returns a logger that discards everything when ctx carries
// none.
func FromContext(ctx context.Context) lager.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(lager.Logger); ok {
		return logger
	}

	return kolsch.NewLogger()
}

func WithSession(ctx context.Context, task string, data ...lager.Data) lager.Logger {
	return FromContext(ctx).Session(task, data...)
}

func WithData(ctx context.Context, data lager.Data) lager.Logger {
	return FromContext(ctx).WithData(data)
}
