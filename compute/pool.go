// MIT License
// Author: Umesh Patil, Neosemantix, Inc.
package compute

// Pool holds two separate sets of workers - one for blocking jobs and the
// other for async execution - and routes each submission to the least
// loaded worker of the matching kind.
type Pool struct {
	asyncWorkers    []Worker
	blockingWorkers []Worker
}

type PoolCfg struct {

	// Number of workers which handle async jobs
	AsyncWorkerCount int `json:"async_worker_count"`

	// Number of workers which handle blocking jobs, where the caller
	// waits for the computation result
	BlockingWorkerCount int `json:"blocking_worker_count"`
}

func NewPool(pc PoolCfg, wc WorkerCfg) *Pool {
	p := new(Pool)
	p.asyncWorkers = make([]Worker, pc.AsyncWorkerCount)
	for i := 0; i < pc.AsyncWorkerCount; i++ {
		p.asyncWorkers[i] = NewWorker(wc)
	}
	p.blockingWorkers = make([]Worker, pc.BlockingWorkerCount)
	for i := 0; i < pc.BlockingWorkerCount; i++ {
		p.blockingWorkers[i] = NewWorker(wc)
	}
	return p
}

func (p *Pool) Start() {
	for _, aw := range p.asyncWorkers {
		aw.Start()
	}
	for _, bw := range p.blockingWorkers {
		bw.Start()
	}
}

func (p *Pool) Submit(job Job) error {
	workers := p.asyncWorkers
	if job.Blocking() {
		workers = p.blockingWorkers
	}
	return leastLoaded(workers).Submit(job)
}

func leastLoaded(workers []Worker) Worker {
	index := 0
	min := workers[0].QueueLen()
	for i := 1; i < len(workers); i++ {
		if l := workers[i].QueueLen(); l < min {
			index = i
			min = l
		}
	}
	return workers[index]
}

func (p *Pool) QueueLen() int {
	jobsInQueue := 0
	for _, aw := range p.asyncWorkers {
		jobsInQueue += aw.QueueLen()
	}
	for _, bw := range p.blockingWorkers {
		jobsInQueue += bw.QueueLen()
	}
	return jobsInQueue
}

func (p *Pool) Stop() {
	for _, aw := range p.asyncWorkers {
		aw.Stop()
	}
	for _, bw := range p.blockingWorkers {
		bw.Stop()
	}
}

func (p *Pool) TotalWorkerCount() int {
	return len(p.asyncWorkers) + len(p.blockingWorkers)
}
