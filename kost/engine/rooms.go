package engine

import (
	"fmt"
	"strings"

	"kostmanager/kost"
)

// RoomInput carries the fields accepted when creating a room. TenantID
// may be set to establish the tenant link in the same call.
type RoomInput struct {
	Number     string
	Floor      string
	Type       kost.RoomType
	Price      float64
	Facilities []string
	TenantID   string
}

// RoomPatch is a partial room update; nil fields are left unchanged.
type RoomPatch struct {
	Number     *string
	Floor      *string
	Type       *kost.RoomType
	Price      *float64
	Status     *kost.RoomStatus
	Facilities *[]string
}

// CreateRoom inserts a new room. The room starts vacant unless
// in.TenantID is given, in which case the tenant link is established
// atomically and the room starts occupied.
func (e *Engine) CreateRoom(in RoomInput) (kost.Room, error) {
	if strings.TrimSpace(in.Number) == "" {
		return kost.Room{}, fmt.Errorf("%w: room number is required", kost.ErrValidation)
	}
	if in.Price <= 0 {
		return kost.Room{}, fmt.Errorf("%w: room price must be positive", kost.ErrValidation)
	}
	for _, r := range e.store.Rooms() {
		if r.Number == in.Number && r.Floor == in.Floor {
			return kost.Room{}, fmt.Errorf("%w: room number %s already in use on floor %s", kost.ErrValidation, in.Number, in.Floor)
		}
	}

	var tenant kost.Tenant
	if in.TenantID != "" {
		var ok bool
		tenant, ok = e.store.GetTenant(in.TenantID)
		if !ok {
			return kost.Room{}, fmt.Errorf("%w: tenant %s", kost.ErrNotFound, in.TenantID)
		}
		if tenant.Status != kost.TenantActive {
			return kost.Room{}, fmt.Errorf("%w: tenant %s is not active", kost.ErrValidation, in.TenantID)
		}
		if tenant.RoomID != "" {
			return kost.Room{}, fmt.Errorf("%w: tenant %s already holds room %s", kost.ErrConflict, in.TenantID, tenant.RoomID)
		}
	}

	room := kost.Room{
		ID:         e.store.NewID(),
		Number:     in.Number,
		Floor:      in.Floor,
		Type:       in.Type,
		Price:      in.Price,
		Status:     kost.RoomVacant,
		Facilities: in.Facilities,
		TenantID:   in.TenantID,
	}
	if in.TenantID != "" {
		room.Status = kost.RoomOccupied
		tenant.RoomID = room.ID
		e.store.PutTenant(tenant)
	}
	e.store.PutRoom(room)
	return room, nil
}

// UpdateRoom merges a patch into an existing room. Occupancy is managed
// through AssignTenant/VacateRoom, so a status patch may only move a
// room between vacant and maintenance: transitioning an occupied room
// into maintenance is rejected rather than silently evicting the
// tenant, and a room cannot be declared occupied without an assignment.
func (e *Engine) UpdateRoom(id string, patch RoomPatch) (kost.Room, error) {
	room, ok := e.store.GetRoom(id)
	if !ok {
		return kost.Room{}, fmt.Errorf("%w: room %s", kost.ErrNotFound, id)
	}

	if patch.Price != nil && *patch.Price <= 0 {
		return kost.Room{}, fmt.Errorf("%w: room price must be positive", kost.ErrValidation)
	}
	number, floor := room.Number, room.Floor
	if patch.Number != nil {
		number = *patch.Number
		if strings.TrimSpace(number) == "" {
			return kost.Room{}, fmt.Errorf("%w: room number is required", kost.ErrValidation)
		}
	}
	if patch.Floor != nil {
		floor = *patch.Floor
	}
	if number != room.Number || floor != room.Floor {
		for _, r := range e.store.Rooms() {
			if r.ID != room.ID && r.Number == number && r.Floor == floor {
				return kost.Room{}, fmt.Errorf("%w: room number %s already in use on floor %s", kost.ErrValidation, number, floor)
			}
		}
	}
	if patch.Status != nil && *patch.Status != room.Status {
		switch *patch.Status {
		case kost.RoomOccupied:
			return kost.Room{}, fmt.Errorf("%w: occupancy is set by tenant assignment, not a status edit", kost.ErrValidation)
		case kost.RoomMaintenance, kost.RoomVacant:
			if room.TenantID != "" {
				return kost.Room{}, fmt.Errorf("%w: room %s is occupied by tenant %s; vacate it first", kost.ErrConflict, id, room.TenantID)
			}
		default:
			return kost.Room{}, fmt.Errorf("%w: unknown room status %q", kost.ErrValidation, *patch.Status)
		}
	}

	room.Number = number
	room.Floor = floor
	if patch.Type != nil {
		room.Type = *patch.Type
	}
	if patch.Price != nil {
		room.Price = *patch.Price
	}
	if patch.Status != nil {
		room.Status = *patch.Status
	}
	if patch.Facilities != nil {
		room.Facilities = *patch.Facilities
	}
	e.store.PutRoom(room)
	return room, nil
}

// AssignTenant links an active, unhoused tenant to a tenantless room.
// Both sides of the relationship are written within this one call; a
// precondition failure writes nothing.
func (e *Engine) AssignTenant(roomID, tenantID string) error {
	room, ok := e.store.GetRoom(roomID)
	if !ok {
		return fmt.Errorf("%w: room %s", kost.ErrNotFound, roomID)
	}
	tenant, ok := e.store.GetTenant(tenantID)
	if !ok {
		return fmt.Errorf("%w: tenant %s", kost.ErrNotFound, tenantID)
	}
	if room.TenantID != "" {
		return fmt.Errorf("%w: room %s already occupied by tenant %s", kost.ErrConflict, roomID, room.TenantID)
	}
	if tenant.RoomID != "" {
		return fmt.Errorf("%w: tenant %s already holds room %s", kost.ErrConflict, tenantID, tenant.RoomID)
	}
	if tenant.Status != kost.TenantActive {
		return fmt.Errorf("%w: tenant %s is not active", kost.ErrValidation, tenantID)
	}

	room.TenantID = tenantID
	room.Status = kost.RoomOccupied
	tenant.RoomID = roomID
	e.store.PutRoom(room)
	e.store.PutTenant(tenant)
	return nil
}

// VacateRoom clears both sides of the tenant link and marks the room
// vacant.
func (e *Engine) VacateRoom(roomID string) error {
	room, ok := e.store.GetRoom(roomID)
	if !ok {
		return fmt.Errorf("%w: room %s", kost.ErrNotFound, roomID)
	}
	if room.TenantID == "" {
		return fmt.Errorf("%w: room %s has no tenant", kost.ErrConflict, roomID)
	}

	if tenant, ok := e.store.GetTenant(room.TenantID); ok {
		tenant.RoomID = ""
		e.store.PutTenant(tenant)
	}
	room.TenantID = ""
	room.Status = kost.RoomVacant
	e.store.PutRoom(room)
	return nil
}
