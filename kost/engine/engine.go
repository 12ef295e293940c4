// Package engine enforces the rules that keep tenants, rooms and
// payments mutually consistent. It is the only writer of the entity
// store: the paired tenant/room link is established and cleared here
// and nowhere else, so the relationship can never be observed
// one-directional.
package engine

import (
	"time"

	"kostmanager/kost"
	"kostmanager/kost/store"
)

// Engine validates and applies mutation intents against one store.
// Every operation validates completely before the first write, so a
// failed call leaves the store untouched.
type Engine struct {
	store *store.Store
	now   func() time.Time
}

func New(s *store.Store) *Engine {
	return &Engine{store: s, now: time.Now}
}

// NewWithClock injects the evaluation clock used for due-date checks
// and defaulted dates.
func NewWithClock(s *store.Store, now func() time.Time) *Engine {
	return &Engine{store: s, now: now}
}

func (e *Engine) Store() *store.Store {
	return e.store
}

// DerivePaymentStatus computes the display status of a payment at the
// given evaluation time: overdue when the payment is not paid and its
// due date has passed, otherwise the stored status unchanged. It is
// advisory and never persisted; recomputing per read keeps the stored
// state free of clock drift.
func DerivePaymentStatus(p kost.Payment, now time.Time) kost.PaymentStatus {
	if p.Status != kost.PaymentPaid && p.DueDate.Before(now) {
		return kost.PaymentOverdue
	}
	return p.Status
}
