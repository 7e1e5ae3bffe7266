// Package kolsch provides a logger that drops everything, for quiet CLI runs
// and code paths with no logger to hand.
package kolsch

import "code.cloudfoundry.org/lager"

type nullLogger struct{}

func (l *nullLogger) RegisterSink(lager.Sink)                    {}
func (l *nullLogger) Session(string, ...lager.Data) lager.Logger { return l }
func (l *nullLogger) SessionName() string                        { return "" }
func (l *nullLogger) Debug(string, ...lager.Data)                {}
func (l *nullLogger) Info(string, ...lager.Data)                 {}
func (l *nullLogger) Error(string, error, ...lager.Data)         {}
func (l *nullLogger) Fatal(string, error, ...lager.Data)         {}
func (l *nullLogger) WithData(lager.Data) lager.Logger           { return l }

func NewLogger() lager.Logger {
	return &nullLogger{}
}
