// Package parallel fans independent asset jobs out to a fixed set of
// workers. Asset generations have no data dependency on one another, so
// commands simply submit and wait.
package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
)

type Pool struct {
	wg   sync.WaitGroup
	jobs chan func()
	stop func()
}

// Start spins up numWorkers workers, one per CPU when numWorkers < 1.
// A single-worker pool runs jobs inline.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{stop: func() {}}
	if numWorkers < 2 {
		return p
	}

	p.jobs = make(chan func(), numWorkers)
	for range numWorkers {
		p.wg.Go(func() {
			for f := range p.jobs {
				f()
			}
		})
	}
	p.stop = sync.OnceFunc(func() { close(p.jobs) })
	return p
}

func (p *Pool) Do(f func()) {
	if p.jobs == nil {
		f()
		return
	}
	p.jobs <- f
}

// Wait blocks until every submitted job has finished; done also stops the
// workers, after which Do must not be called again.
func (p *Pool) Wait(done bool) {
	if p.jobs == nil {
		return
	}
	if done {
		p.stop()
	}
	p.wg.Wait()
}
