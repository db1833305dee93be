// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dnsworker

import (
	"context"

	"github.com/siemens/digrank/netns"

	"github.com/gammazero/workerpool"
	"github.com/thediveo/lxkns/log"
	"golang.org/x/time/rate"
)

// Pool is a (size-limited) pool of DNS workers.
type Pool struct {
	netns   string        // path of the network namespace to query from, if any.
	limiter *rate.Limiter // paces task starts, or nil.
	workers *workerpool.WorkerPool
}

// PoolOption can be passed to New when creating new [Pool] objects.
type PoolOption func(*Pool)

// New returns a pool of the specified size of DNS workers.
//
// DNS tasks are submitted using [Pool.Submit] in form of task functions. Task
// submitters are themselves responsible for capturing the necessary context in
// their task function closure.
//
// To operate a Pool in a network namespace different to that of the OS-level
// thread of the caller specify the [InNetworkNamespace] option and pass it a
// filesystem path that must reference a network namespace (such as
// "/proc/666/ns/net"). Network namespaces are supported on Linux only; on
// other platforms, tasks of such a Pool always get passed an error.
func New(size int, options ...PoolOption) *Pool {
	if size < 1 {
		size = 1
	}
	pool := &Pool{
		workers: workerpool.New(size),
	}
	for _, opt := range options {
		opt(pool)
	}
	return pool
}

// InNetworkNamespace optionally runs the tasks of a Pool inside the network
// namespace referenced by the specified filesystem path. An empty path leaves
// the tasks in the current network namespace.
func InNetworkNamespace(netnsref string) PoolOption {
	return func(p *Pool) {
		p.netns = netnsref
	}
}

// WithRate limits the start of tasks to the specified number per second, with
// an initial burst of the same size. A rate of zero or less means no limit.
func WithRate(perSecond float64) PoolOption {
	return func(p *Pool) {
		if perSecond <= 0 {
			p.limiter = nil
			return
		}
		burst := int(perSecond)
		if burst < 1 {
			burst = 1
		}
		p.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// Submit a task to the pool, where it gets enqueued to be executed on the next
// available worker. When the context gets done while a rate-limited task still
// waits for its turn, the task is passed the context's error instead. The same
// goes for failing to switch into the pool's network namespace.
func (p *Pool) Submit(ctx context.Context, task func(err error)) {
	p.workers.Submit(func() { p.task(ctx, task) })
}

// task waits for its turn (if rate-limited) and then runs the specified task
// function, switching into the pool's network namespace if necessary.
func (p *Pool) task(ctx context.Context, task func(err error)) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			task(err)
			return
		}
	}
	if p.netns == "" {
		task(nil)
		return
	}
	// As we cannot run the task at all in case of switching errors, we pass
	// the error in.
	if err := netns.Execute(p.netns, func() { task(nil) }); err != nil {
		log.Warnf("%s", err.Error())
		task(err)
	}
}

// StopWait waits for all enqueued tasks to finish, and then shuts down the
// pool.
func (p *Pool) StopWait() {
	p.workers.StopWait()
}
