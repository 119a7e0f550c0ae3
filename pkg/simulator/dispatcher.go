package simulator

import "sync"

// dispatcher runs queued callbacks in order on one goroutine.
type dispatcher struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	done   chan struct{}
}

func newDispatcher() *dispatcher {
	d := &dispatcher{done: make(chan struct{})}
	d.cond = sync.NewCond(&d.mu)
	go d.run()
	return d
}

// post queues fn. It never blocks and never runs fn on the caller's goroutine.
// Returns false once the dispatcher is closed.
func (d *dispatcher) post(fn func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}
	d.queue = append(d.queue, fn)
	d.cond.Signal()
	return true
}

// sync waits until the queue is empty, including callbacks queued by
// callbacks that ran in the meantime.
func (d *dispatcher) sync() {
	for {
		idle := make(chan bool, 1)
		if !d.post(func() {
			d.mu.Lock()
			idle <- len(d.queue) == 0
			d.mu.Unlock()
		}) {
			return
		}
		select {
		case empty := <-idle:
			if empty {
				return
			}
		case <-d.done:
			return
		}
	}
}

func (d *dispatcher) close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.cond.Signal()
	d.mu.Unlock()
	<-d.done
}

func (d *dispatcher) run() {
	defer close(d.done)
	for {
		d.mu.Lock()
		for len(d.queue) == 0 && !d.closed {
			d.cond.Wait()
		}
		if len(d.queue) == 0 && d.closed {
			d.mu.Unlock()
			return
		}
		fn := d.queue[0]
		d.queue[0] = nil
		d.queue = d.queue[1:]
		d.mu.Unlock()

		fn()
	}
}
