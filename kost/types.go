package kost

import "time"

// TenantStatus tells whether a tenant currently rents with us.
type TenantStatus string

const (
	TenantActive   TenantStatus = "active"
	TenantInactive TenantStatus = "inactive"
)

// PaymentStatus is the lifecycle state of a billing record.
//
// paid is terminal: once a payment is recorded as paid it never returns
// to pending or overdue. overdue is also produced transiently at read
// time by the engine's status derivation without being persisted.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

type RoomStatus string

const (
	RoomOccupied    RoomStatus = "occupied"
	RoomVacant      RoomStatus = "vacant"
	RoomMaintenance RoomStatus = "maintenance"
)

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomDeluxe RoomType = "deluxe"
)

type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "in-progress"
	RequestCompleted  RequestStatus = "completed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Tenant is a person renting a room. RoomID is empty while the tenant
// is unhoused; it mirrors Room.TenantID and the pair is only ever
// written together by the engine's assign/vacate operations.
type Tenant struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email"`
	RoomID          string        `json:"roomId,omitempty"`
	StartDate       time.Time     `json:"startDate"`
	EndDate         time.Time     `json:"endDate"`
	Status          TenantStatus  `json:"status"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	LastPaymentDate *time.Time    `json:"lastPaymentDate,omitempty"`
}

// Room is a rentable unit. TenantID is empty unless Status is occupied.
type Room struct {
	ID         string     `json:"id"`
	Number     string     `json:"number"`
	Floor      string     `json:"floor"`
	Type       RoomType   `json:"type"`
	Price      float64    `json:"price"`
	Status     RoomStatus `json:"status"`
	Facilities []string   `json:"facilities"`
	TenantID   string     `json:"tenantId,omitempty"`
}

// Payment is a billing record tied to a tenant and room. Date stays nil
// until the payment is actually received.
type Payment struct {
	ID            string        `json:"id"`
	TenantID      string        `json:"tenantId"`
	RoomID        string        `json:"roomId"`
	Amount        float64       `json:"amount"`
	Date          *time.Time    `json:"date,omitempty"`
	DueDate       time.Time     `json:"dueDate"`
	Status        PaymentStatus `json:"status"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// MaintenanceRequest is a repair ticket against a room, optionally
// reported by a tenant.
type MaintenanceRequest struct {
	ID          string        `json:"id"`
	RoomID      string        `json:"roomId"`
	TenantID    string        `json:"tenantId,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date"`
	Status      RequestStatus `json:"status"`
	Priority    Priority      `json:"priority"`
}

// FinancialSummary groups payment amounts by status. MonthlyIncome is
// the paid total whose payment date falls in the evaluation month.
type FinancialSummary struct {
	Paid          float64 `json:"paid"`
	Pending       float64 `json:"pending"`
	Overdue       float64 `json:"overdue"`
	MonthlyIncome float64 `json:"monthlyIncome"`
}

// OccupancySummary counts rooms by status. OccupancyRate is
// occupied/total and 0 when there are no rooms.
type OccupancySummary struct {
	Total         int     `json:"total"`
	Occupied      int     `json:"occupied"`
	Vacant        int     `json:"vacant"`
	Maintenance   int     `json:"maintenance"`
	OccupancyRate float64 `json:"occupancyRate"`
}
