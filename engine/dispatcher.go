package engine

import (
	"os"
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/db"
)

//go:generate counterfeiter . Dispatcher

// Dispatcher executes started scans in the background.
type Dispatcher interface {
	Dispatch(lager.Logger, db.Scan)
}

type AsyncDispatcher struct {
	engine Engine
	wg     sync.WaitGroup
}

func NewAsyncDispatcher(engine Engine) *AsyncDispatcher {
	return &AsyncDispatcher{engine: engine}
}

func (d *AsyncDispatcher) Dispatch(logger lager.Logger, scan db.Scan) {
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()

		if _, err := d.engine.Execute(logger, scan); err != nil {
			logger.Info("dispatched-scan-failed", lager.Data{"scan": scan.ID})
		}
	}()
}

// Run waits for in-flight scans after being signalled so that none is cut
// off mid-transaction.
func (d *AsyncDispatcher) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	close(ready)

	<-signals
	d.wg.Wait()

	return nil
}
