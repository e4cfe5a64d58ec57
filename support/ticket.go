// Package support implements a ticket queue whose processing order is decided
// by an interchangeable ordering strategy.
package support

import "github.com/google/uuid"

// Ticket is one customer issue waiting to be handled.
type Ticket struct {
	ID       string
	Customer string
	Issue    string
}

// NewTicket returns a Ticket with a fresh random ID.
func NewTicket(customer, issue string) Ticket {
	return Ticket{ID: uuid.NewString(), Customer: customer, Issue: issue}
}
