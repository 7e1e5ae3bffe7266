package commands

import (
	"os"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/kolsch"
)

func newLogger(component string, debug bool) lager.Logger {
	if !debug {
		return kolsch.NewLogger()
	}

	logger := lager.NewLogger(component)
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	return logger
}
