package mailer

import (
	"context"
	"log"
	"sync"
)

// Queue delivers confirmation emails on a background worker so a slow
// or failing provider never delays or fails the payment response.
// Failures are logged and not retried.
type Queue struct {
	mailer Mailer
	jobs   chan Confirmation
	wg     sync.WaitGroup
	once   sync.Once
}

func NewQueue(m Mailer, size int) *Queue {
	if size <= 0 {
		size = 64
	}
	return &Queue{mailer: m, jobs: make(chan Confirmation, size)}
}

// Start launches the worker. It runs until Close is called or ctx is
// cancelled.
func (q *Queue) Start(ctx context.Context) {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case job, ok := <-q.jobs:
				if !ok {
					return
				}
				if err := q.mailer.SendConfirmation(ctx, job); err != nil {
					log.Printf("Confirmation email for transaction %s failed: %v", job.TransactionID, err)
					continue
				}
				log.Printf("Confirmation email sent for transaction %s", job.TransactionID)
			}
		}
	}()
}

// Enqueue hands off a confirmation without blocking the caller. When
// the buffer is full the job is dropped and logged.
func (q *Queue) Enqueue(c Confirmation) {
	select {
	case q.jobs <- c:
	default:
		log.Printf("Mail queue full, dropping confirmation for transaction %s", c.TransactionID)
	}
}

// Close stops accepting jobs, lets the worker drain the buffer, and
// waits for it to finish. Call after the HTTP server has stopped.
func (q *Queue) Close() {
	q.once.Do(func() { close(q.jobs) })
	q.wg.Wait()
}
