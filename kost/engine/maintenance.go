package engine

import (
	"fmt"
	"strings"
	"time"

	"kostmanager/kost"
)

type RequestInput struct {
	RoomID      string
	TenantID    string
	Title       string
	Description string
	Priority    kost.Priority
	Date        *time.Time
}

// CreateMaintenanceRequest opens a repair ticket against an existing
// room. The reporting tenant is optional but must exist when given.
func (e *Engine) CreateMaintenanceRequest(in RequestInput) (kost.MaintenanceRequest, error) {
	if strings.TrimSpace(in.Title) == "" {
		return kost.MaintenanceRequest{}, fmt.Errorf("%w: request title is required", kost.ErrValidation)
	}
	if _, ok := e.store.GetRoom(in.RoomID); !ok {
		return kost.MaintenanceRequest{}, fmt.Errorf("%w: room %s", kost.ErrNotFound, in.RoomID)
	}
	if in.TenantID != "" {
		if _, ok := e.store.GetTenant(in.TenantID); !ok {
			return kost.MaintenanceRequest{}, fmt.Errorf("%w: tenant %s", kost.ErrNotFound, in.TenantID)
		}
	}

	priority := in.Priority
	if priority == "" {
		priority = kost.PriorityMedium
	}
	date := e.now()
	if in.Date != nil {
		date = *in.Date
	}

	req := kost.MaintenanceRequest{
		ID:          e.store.NewID(),
		RoomID:      in.RoomID,
		TenantID:    in.TenantID,
		Title:       in.Title,
		Description: in.Description,
		Date:        date,
		Status:      kost.RequestPending,
		Priority:    priority,
	}
	e.store.PutRequest(req)
	return req, nil
}

// UpdateRequestStatus moves a ticket along pending → in-progress →
// completed. completed is terminal.
func (e *Engine) UpdateRequestStatus(id string, status kost.RequestStatus) (kost.MaintenanceRequest, error) {
	switch status {
	case kost.RequestPending, kost.RequestInProgress, kost.RequestCompleted:
	default:
		return kost.MaintenanceRequest{}, fmt.Errorf("%w: unknown request status %q", kost.ErrValidation, status)
	}

	req, ok := e.store.GetRequest(id)
	if !ok {
		return kost.MaintenanceRequest{}, fmt.Errorf("%w: maintenance request %s", kost.ErrNotFound, id)
	}
	if req.Status == kost.RequestCompleted && status != kost.RequestCompleted {
		return kost.MaintenanceRequest{}, fmt.Errorf("%w: request %s is already completed", kost.ErrConflict, id)
	}

	req.Status = status
	e.store.PutRequest(req)
	return req, nil
}
