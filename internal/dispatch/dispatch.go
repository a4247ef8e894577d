// Package dispatch delivers reply messages to Bitrix24 asynchronously.
// Webhook handlers enqueue replies and return immediately; delivery
// failures are logged and counted but never surface to the portal.
package dispatch

import (
	"context"
	"time"

	"github.com/cultiv-ai/b24bridge/internal/domain"
	"github.com/cultiv-ai/b24bridge/internal/logger"
	"github.com/cultiv-ai/b24bridge/internal/metrics"
	"github.com/cultiv-ai/b24bridge/internal/worker"
)

// Sender delivers a single reply to the portal.
type Sender interface {
	SendMessage(ctx context.Context, reply *domain.ReplyMessage) error
}

// Dispatcher accepts replies for asynchronous delivery.
type Dispatcher interface {
	Dispatch(ctx context.Context, reply *domain.ReplyMessage) bool
}

// Async dispatches replies through a worker pool. Enqueueing never
// blocks: when the queue is full the reply is dropped and counted.
type Async struct {
	sender  Sender
	pool    *worker.Pool
	timeout time.Duration
}

// NewAsync creates an asynchronous dispatcher using the given pool.
func NewAsync(sender Sender, pool *worker.Pool, timeout time.Duration) *Async {
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}
	return &Async{sender: sender, pool: pool, timeout: timeout}
}

// Dispatch enqueues the reply for delivery. Returns false when the queue
// is full and the reply was dropped.
func (a *Async) Dispatch(ctx context.Context, reply *domain.ReplyMessage) bool {
	log := logger.FromContext(ctx)

	job := &replyJob{sender: a.sender, reply: reply, timeout: a.timeout}
	if !a.pool.TryEnqueue(job) {
		metrics.DispatchQueueDrops.Inc()
		log.Warn(LogMsgQueueFull, "dialog_id", reply.DialogID, "queue_depth", a.pool.QueueDepth())
		return false
	}

	log.Debug(LogMsgReplyEnqueued, "dialog_id", reply.DialogID)
	return true
}

// replyJob is a single reply delivery executed on the worker pool.
type replyJob struct {
	sender  Sender
	reply   *domain.ReplyMessage
	timeout time.Duration
}

func (j *replyJob) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	if err := j.sender.SendMessage(ctx, j.reply); err != nil {
		metrics.DispatchesTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
		return err
	}

	metrics.DispatchesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return nil
}
