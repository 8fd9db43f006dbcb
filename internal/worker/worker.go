// File: internal/worker/worker.go
package worker

import "sync"

// Job is a unit of background work, e.g. stamping a login time after the
// response has been written.
type Job func()

// Pool runs jobs on a fixed set of goroutines.
type Pool interface {
	Submit(Job)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Job)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Job
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// Submit queues a job. Jobs submitted after Stop are dropped rather than
// panicking on the closed queue.
func (p *pool) Submit(j Job) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.jobs <- j
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (p *pool) Stop() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
