package support

import (
	"time"

	"github.com/kilianp07/plugkit/core/logger"
	"github.com/kilianp07/plugkit/core/metrics"
	"github.com/kilianp07/plugkit/core/strategy"
)

// CustomerSupport queues tickets and processes them in the order decided by
// the currently selected ordering strategy.
type CustomerSupport struct {
	log     logger.Logger
	sink    metrics.Sink
	ctx     *strategy.Context[[]Ticket, []Ticket]
	tickets []Ticket
}

// NewCustomerSupport returns an app with no ordering selected. A nil logger
// or sink falls back to the no-op implementation.
func NewCustomerSupport(log logger.Logger, sink metrics.Sink) *CustomerSupport {
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &CustomerSupport{
		log:  log,
		sink: sink,
		ctx:  strategy.NewContext[[]Ticket, []Ticket](),
	}
}

// UseOrdering selects the ordering applied by the next ProcessTickets call.
func (cs *CustomerSupport) UseOrdering(o Ordering) {
	cs.ctx.Use(o)
}

// CreateTicket queues a new ticket and returns it.
func (cs *CustomerSupport) CreateTicket(customer, issue string) Ticket {
	t := NewTicket(customer, issue)
	cs.tickets = append(cs.tickets, t)
	return t
}

// Pending returns the number of queued tickets.
func (cs *CustomerSupport) Pending() int { return len(cs.tickets) }

// ProcessTickets orders the queue with the selected strategy, handles each
// ticket and clears the queue. It returns the tickets in the order they were
// processed. Without a selected ordering it fails with
// strategy.ErrNoStrategy and leaves the queue untouched.
func (cs *CustomerSupport) ProcessTickets() ([]Ticket, error) {
	start := time.Now()
	ordered, err := cs.ctx.Execute(cs.tickets)
	cs.sink.RecordExecution(metrics.ExecutionEvent{
		Component: "support",
		OK:        err == nil,
		Duration:  time.Since(start),
	})
	if err != nil {
		return nil, err
	}
	if len(ordered) == 0 {
		cs.log.Infof("no tickets to process")
		return nil, nil
	}
	for _, t := range ordered {
		cs.processTicket(t)
	}
	cs.tickets = nil
	return ordered, nil
}

func (cs *CustomerSupport) processTicket(t Ticket) {
	cs.log.Infof("processing ticket %s", t.ID)
	cs.log.Debugw("ticket", map[string]any{
		"id":       t.ID,
		"customer": t.Customer,
		"issue":    t.Issue,
	})
}
