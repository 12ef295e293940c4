// Package store holds the current collections of tenants, rooms,
// payments and maintenance requests. It is pure storage: no validation
// happens here, and every write is immediately visible to readers. The
// engine package is the only writer.
package store

import (
	"github.com/google/uuid"

	"kostmanager/kost"
)

// Store keeps each collection keyed by id alongside the insertion
// order, so listings stay deterministic without an implicit resort.
type Store struct {
	tenants     map[string]kost.Tenant
	tenantOrder []string

	rooms     map[string]kost.Room
	roomOrder []string

	payments     map[string]kost.Payment
	paymentOrder []string

	requests     map[string]kost.MaintenanceRequest
	requestOrder []string
}

func New() *Store {
	return &Store{
		tenants:  make(map[string]kost.Tenant),
		rooms:    make(map[string]kost.Room),
		payments: make(map[string]kost.Payment),
		requests: make(map[string]kost.MaintenanceRequest),
	}
}

// NewID mints an opaque unique identifier. The store is the only id
// source so call sites cannot collide.
func (s *Store) NewID() string {
	return uuid.NewString()
}

func (s *Store) GetTenant(id string) (kost.Tenant, bool) {
	t, ok := s.tenants[id]
	return t, ok
}

func (s *Store) GetRoom(id string) (kost.Room, bool) {
	r, ok := s.rooms[id]
	return r, ok
}

func (s *Store) GetPayment(id string) (kost.Payment, bool) {
	p, ok := s.payments[id]
	return p, ok
}

func (s *Store) GetRequest(id string) (kost.MaintenanceRequest, bool) {
	r, ok := s.requests[id]
	return r, ok
}

// PutTenant upserts a tenant. First insertion fixes its listing
// position; later writes keep it.
func (s *Store) PutTenant(t kost.Tenant) {
	if _, ok := s.tenants[t.ID]; !ok {
		s.tenantOrder = append(s.tenantOrder, t.ID)
	}
	s.tenants[t.ID] = t
}

func (s *Store) PutRoom(r kost.Room) {
	if _, ok := s.rooms[r.ID]; !ok {
		s.roomOrder = append(s.roomOrder, r.ID)
	}
	s.rooms[r.ID] = r
}

func (s *Store) PutPayment(p kost.Payment) {
	if _, ok := s.payments[p.ID]; !ok {
		s.paymentOrder = append(s.paymentOrder, p.ID)
	}
	s.payments[p.ID] = p
}

func (s *Store) PutRequest(r kost.MaintenanceRequest) {
	if _, ok := s.requests[r.ID]; !ok {
		s.requestOrder = append(s.requestOrder, r.ID)
	}
	s.requests[r.ID] = r
}

func (s *Store) Tenants() []kost.Tenant {
	out := make([]kost.Tenant, 0, len(s.tenantOrder))
	for _, id := range s.tenantOrder {
		out = append(out, s.tenants[id])
	}
	return out
}

func (s *Store) Rooms() []kost.Room {
	out := make([]kost.Room, 0, len(s.roomOrder))
	for _, id := range s.roomOrder {
		out = append(out, s.rooms[id])
	}
	return out
}

func (s *Store) Payments() []kost.Payment {
	out := make([]kost.Payment, 0, len(s.paymentOrder))
	for _, id := range s.paymentOrder {
		out = append(out, s.payments[id])
	}
	return out
}

func (s *Store) Requests() []kost.MaintenanceRequest {
	out := make([]kost.MaintenanceRequest, 0, len(s.requestOrder))
	for _, id := range s.requestOrder {
		out = append(out, s.requests[id])
	}
	return out
}

// ReplaceTenants swaps the whole collection, keeping the given order.
func (s *Store) ReplaceTenants(tenants []kost.Tenant) {
	s.tenants = make(map[string]kost.Tenant, len(tenants))
	s.tenantOrder = s.tenantOrder[:0]
	for _, t := range tenants {
		s.PutTenant(t)
	}
}

func (s *Store) ReplaceRooms(rooms []kost.Room) {
	s.rooms = make(map[string]kost.Room, len(rooms))
	s.roomOrder = s.roomOrder[:0]
	for _, r := range rooms {
		s.PutRoom(r)
	}
}

func (s *Store) ReplacePayments(payments []kost.Payment) {
	s.payments = make(map[string]kost.Payment, len(payments))
	s.paymentOrder = s.paymentOrder[:0]
	for _, p := range payments {
		s.PutPayment(p)
	}
}

func (s *Store) ReplaceRequests(requests []kost.MaintenanceRequest) {
	s.requests = make(map[string]kost.MaintenanceRequest, len(requests))
	s.requestOrder = s.requestOrder[:0]
	for _, r := range requests {
		s.PutRequest(r)
	}
}

// Restore replaces every collection from a snapshot.
func (s *Store) Restore(snap kost.Snapshot) {
	s.ReplaceTenants(snap.Tenants)
	s.ReplaceRooms(snap.Rooms)
	s.ReplacePayments(snap.Payments)
	s.ReplaceRequests(snap.MaintenanceRequests)
}

// Snapshot captures every collection in listing order.
func (s *Store) Snapshot() kost.Snapshot {
	return kost.Snapshot{
		Tenants:             s.Tenants(),
		Rooms:               s.Rooms(),
		Payments:            s.Payments(),
		MaintenanceRequests: s.Requests(),
	}
}
