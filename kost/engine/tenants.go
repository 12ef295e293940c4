package engine

import (
	"fmt"
	"strings"
	"time"

	"kostmanager/kost"
)

type TenantInput struct {
	Name      string
	Phone     string
	Email     string
	StartDate time.Time
	EndDate   time.Time
}

// TenantPatch is a partial tenant update; nil fields are left
// unchanged. Room membership is not patchable here.
type TenantPatch struct {
	Name      *string
	Phone     *string
	Email     *string
	StartDate *time.Time
	EndDate   *time.Time
	Status    *kost.TenantStatus
}

// CreateTenant inserts a new tenant, active with a pending payment
// badge until a payment is recorded.
func (e *Engine) CreateTenant(in TenantInput) (kost.Tenant, error) {
	if strings.TrimSpace(in.Name) == "" {
		return kost.Tenant{}, fmt.Errorf("%w: tenant name is required", kost.ErrValidation)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return kost.Tenant{}, fmt.Errorf("%w: tenant phone is required", kost.ErrValidation)
	}

	tenant := kost.Tenant{
		ID:            e.store.NewID(),
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Status:        kost.TenantActive,
		PaymentStatus: kost.PaymentPending,
	}
	e.store.PutTenant(tenant)
	return tenant, nil
}

// UpdateTenant merges a patch into an existing tenant. A tenant who
// still holds a room cannot be deactivated; the room must be vacated
// first so the occupancy invariants never point at an inactive tenant.
func (e *Engine) UpdateTenant(id string, patch TenantPatch) (kost.Tenant, error) {
	tenant, ok := e.store.GetTenant(id)
	if !ok {
		return kost.Tenant{}, fmt.Errorf("%w: tenant %s", kost.ErrNotFound, id)
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return kost.Tenant{}, fmt.Errorf("%w: tenant name is required", kost.ErrValidation)
	}
	if patch.Status != nil {
		switch *patch.Status {
		case kost.TenantActive:
		case kost.TenantInactive:
			if tenant.RoomID != "" {
				return kost.Tenant{}, fmt.Errorf("%w: tenant %s still holds room %s; vacate it first", kost.ErrConflict, id, tenant.RoomID)
			}
		default:
			return kost.Tenant{}, fmt.Errorf("%w: unknown tenant status %q", kost.ErrValidation, *patch.Status)
		}
	}

	if patch.Name != nil {
		tenant.Name = *patch.Name
	}
	if patch.Phone != nil {
		tenant.Phone = *patch.Phone
	}
	if patch.Email != nil {
		tenant.Email = *patch.Email
	}
	if patch.StartDate != nil {
		tenant.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		tenant.EndDate = *patch.EndDate
	}
	if patch.Status != nil {
		tenant.Status = *patch.Status
	}
	e.store.PutTenant(tenant)
	return tenant, nil
}
