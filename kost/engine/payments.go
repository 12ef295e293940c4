package engine

import (
	"fmt"
	"time"

	"kostmanager/kost"
)

// PaymentInput carries the fields accepted when recording a payment.
// On a merge (existing payment id) zero-valued fields leave the stored
// record untouched.
type PaymentInput struct {
	TenantID      string
	RoomID        string
	Amount        float64
	Date          *time.Time
	DueDate       time.Time
	Status        kost.PaymentStatus
	PaymentMethod string
	Notes         string
}

// RecordPayment records a payment. With a paymentID matching an
// existing record, the record is merged with the input and forced to
// paid; the paying tenant's badge and last payment date follow.
// Otherwise a new payment is minted from the input. paid is terminal:
// a merged payment never returns to pending or overdue.
func (e *Engine) RecordPayment(paymentID string, in PaymentInput) (kost.Payment, error) {
	if p, ok := e.store.GetPayment(paymentID); paymentID != "" && ok {
		return e.settlePayment(p, in)
	}
	return e.createPayment(in)
}

func (e *Engine) settlePayment(p kost.Payment, in PaymentInput) (kost.Payment, error) {
	if in.Amount != 0 {
		if in.Amount < 0 {
			return kost.Payment{}, fmt.Errorf("%w: payment amount must be positive", kost.ErrValidation)
		}
		p.Amount = in.Amount
	}
	if in.TenantID != "" && in.TenantID != p.TenantID {
		if _, err := e.resolveActiveTenant(in.TenantID); err != nil {
			return kost.Payment{}, err
		}
		p.TenantID = in.TenantID
	}
	if in.RoomID != "" {
		if _, ok := e.store.GetRoom(in.RoomID); !ok {
			return kost.Payment{}, fmt.Errorf("%w: room %s", kost.ErrNotFound, in.RoomID)
		}
		p.RoomID = in.RoomID
	}
	if !in.DueDate.IsZero() {
		p.DueDate = in.DueDate
	}
	if in.Date != nil {
		p.Date = in.Date
	}
	if p.Date == nil {
		now := e.now()
		p.Date = &now
	}
	if in.PaymentMethod != "" {
		p.PaymentMethod = in.PaymentMethod
	}
	if in.Notes != "" {
		p.Notes = in.Notes
	}
	p.Status = kost.PaymentPaid

	e.store.PutPayment(p)
	e.refreshTenantPayment(p)
	return p, nil
}

func (e *Engine) createPayment(in PaymentInput) (kost.Payment, error) {
	if in.Amount <= 0 {
		return kost.Payment{}, fmt.Errorf("%w: payment amount must be positive", kost.ErrValidation)
	}
	if in.DueDate.IsZero() {
		return kost.Payment{}, fmt.Errorf("%w: payment due date is required", kost.ErrValidation)
	}
	tenant, err := e.resolveActiveTenant(in.TenantID)
	if err != nil {
		return kost.Payment{}, err
	}

	roomID := in.RoomID
	if roomID == "" {
		roomID = tenant.RoomID
	}
	if roomID != "" {
		if _, ok := e.store.GetRoom(roomID); !ok {
			return kost.Payment{}, fmt.Errorf("%w: room %s", kost.ErrNotFound, roomID)
		}
	}

	status := in.Status
	if status == "" {
		status = kost.PaymentPending
		if in.Date != nil {
			status = kost.PaymentPaid
		}
	}
	if status == kost.PaymentPaid && in.Date == nil {
		now := e.now()
		in.Date = &now
	}

	p := kost.Payment{
		ID:            e.store.NewID(),
		TenantID:      tenant.ID,
		RoomID:        roomID,
		Amount:        in.Amount,
		Date:          in.Date,
		DueDate:       in.DueDate,
		Status:        status,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	}
	e.store.PutPayment(p)
	if p.Status == kost.PaymentPaid {
		e.refreshTenantPayment(p)
	}
	return p, nil
}

// resolveActiveTenant enforces the record-payment precondition that the
// tenant reference resolves to an active tenant.
func (e *Engine) resolveActiveTenant(id string) (kost.Tenant, error) {
	tenant, ok := e.store.GetTenant(id)
	if !ok {
		return kost.Tenant{}, fmt.Errorf("%w: payment tenant %s does not resolve to an active tenant", kost.ErrValidation, id)
	}
	if tenant.Status != kost.TenantActive {
		return kost.Tenant{}, fmt.Errorf("%w: payment tenant %s does not resolve to an active tenant", kost.ErrValidation, id)
	}
	return tenant, nil
}

// refreshTenantPayment keeps the tenant's payment badge in step with
// the payment just settled.
func (e *Engine) refreshTenantPayment(p kost.Payment) {
	tenant, ok := e.store.GetTenant(p.TenantID)
	if !ok {
		return
	}
	tenant.PaymentStatus = kost.PaymentPaid
	tenant.LastPaymentDate = p.Date
	e.store.PutTenant(tenant)
}
