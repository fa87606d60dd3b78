package stream

import (
	"context"
	"io"
	"os"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/legoisland/sceneengine/svc"
)

// Controller receives chunks as a DiskProvider's worker finishes reading
// them, matching MxStreamController's role as an MxDiskStreamProvider's
// callback target.
type Controller interface {
	Deliver(buf *Buffer)
}

// diskJob is one outstanding chunk read, identified either by the object
// the streaming action plays (for a kill-all-for-this-object cancel) or
// by its own identity (for a cancel of one specific scheduled read).
type diskJob struct {
	objectID   uint32
	identity   any
	controller Controller
	offset     int64
	size       int
	cancelled  bool
}

// DiskProvider streams chunks from one open file via a single dedicated
// worker goroutine, matching MxDiskStreamProvider's one-thread, one-queue,
// one-critical-section design. Jobs delivered to the same Controller are
// always delivered in the order they were scheduled, since one goroutine
// drains the queue strictly in FIFO order.
type DiskProvider struct {
	file *os.File
	size int64

	cs    svc.CriticalSection
	queue []*diskJob

	// sem bounds how many reads may be outstanding (scheduled but not yet
	// delivered) at once: Schedule acquires a slot, the worker releases
	// it once a job is processed, so a caller that schedules faster than
	// the worker can drain blocks rather than growing the queue without
	// bound.
	sem *semaphore.Weighted

	signal chan struct{}
	done   chan struct{}
	wg     sync.WaitGroup

	idleMu sync.Mutex
	idleCV *sync.Cond
}

// NewDiskProvider opens path and starts its worker goroutine. queueCapacity
// bounds how many chunk reads may be in flight at once (see svc.Config's
// DiskWorkerQueueCapacity).
func NewDiskProvider(path string, queueCapacity int64) (*DiskProvider, *svc.Error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, svc.Wrap(err, svc.ResourceAllocation, "stream: opening "+path)
	}
	info, statErr := f.Stat()
	if statErr != nil {
		f.Close()
		return nil, svc.Wrap(statErr, svc.ResourceAllocation, "stream: stat "+path)
	}
	p := &DiskProvider{
		file:   f,
		size:   info.Size(),
		sem:    semaphore.NewWeighted(queueCapacity),
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	p.idleCV = sync.NewCond(&p.idleMu)
	p.wg.Add(1)
	go p.run()
	return p, nil
}

// FileSize reports the underlying file's length in bytes.
func (p *DiskProvider) FileSize() uint32 { return uint32(p.size) }

// Schedule enqueues a chunk read of size bytes at offset, to be delivered
// to controller once read, tagged with objectID (for kill-all cancels)
// and identity (for single-job cancels). It blocks until a queue slot is
// free.
func (p *DiskProvider) Schedule(ctx context.Context, controller Controller, objectID uint32, identity any, offset int64, size int) *svc.Error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return svc.Wrap(err, svc.Cancelled, "stream: schedule")
	}
	job := &diskJob{objectID: objectID, identity: identity, controller: controller, offset: offset, size: size}

	unlock := p.cs.Auto()
	p.queue = append(p.queue, job)
	unlock()

	select {
	case p.signal <- struct{}{}:
	default:
	}
	return nil
}

// Cancel marks every queued job matching objectID (a "kill all of this
// object's streaming" request) or, if identity is non-nil, the one job
// matching it exactly. Cancelled jobs still consume their queue slot when
// the worker reaches them, but their buffer is discarded instead of
// delivered.
func (p *DiskProvider) Cancel(objectID uint32, identity any) {
	unlock := p.cs.Auto()
	defer unlock()
	for _, job := range p.queue {
		if (identity != nil && job.identity == identity) || (identity == nil && job.objectID == objectID) {
			job.cancelled = true
		}
	}
}

// WaitForWorkToComplete blocks until the queue has been fully drained.
func (p *DiskProvider) WaitForWorkToComplete() {
	p.idleMu.Lock()
	for p.queueLen() > 0 {
		p.idleCV.Wait()
	}
	p.idleMu.Unlock()
}

func (p *DiskProvider) queueLen() int {
	unlock := p.cs.Auto()
	defer unlock()
	return len(p.queue)
}

// Close stops the worker goroutine and closes the underlying file.
func (p *DiskProvider) Close() error {
	close(p.done)
	p.wg.Wait()
	return p.file.Close()
}

func (p *DiskProvider) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case <-p.signal:
		}
		for {
			job, ok := p.popJob()
			if !ok {
				break
			}
			p.perform(job)
			p.sem.Release(1)
			p.idleMu.Lock()
			p.idleCV.Broadcast()
			p.idleMu.Unlock()
		}
	}
}

func (p *DiskProvider) popJob() (*diskJob, bool) {
	unlock := p.cs.Auto()
	defer unlock()
	if len(p.queue) == 0 {
		return nil, false
	}
	job := p.queue[0]
	p.queue = p.queue[1:]
	return job, true
}

func (p *DiskProvider) perform(job *diskJob) {
	if job.cancelled {
		return
	}
	data := make([]byte, job.size)
	n, err := p.file.ReadAt(data, job.offset)
	if err != nil && err != io.EOF {
		return
	}
	job.controller.Deliver(&Buffer{Data: data[:n]})
}
