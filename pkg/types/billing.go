package types

import "time"

// PaymentStatus represents invoice payment status values
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Invoice represents a billing record. Balance and PaymentStatus are
// recomputed by the store on every mutation; caller-supplied values for
// either are discarded. PatientName is a creation-time snapshot.
type Invoice struct {
	ID            string        `json:"id"`
	ReceiptID     string        `json:"receipt_id"`
	PatientID     string        `json:"patient_id"`
	PatientName   string        `json:"patient_name"`
	InvoiceType   string        `json:"invoice_type"`
	Amount        float64       `json:"amount"`
	AmountPaid    float64       `json:"amount_paid"`
	Balance       float64       `json:"balance"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	DateCreated   time.Time     `json:"date_created"`
	PaymentDate   time.Time     `json:"payment_date,omitempty"`
}

// InvoiceInput carries caller-supplied fields for invoice creation.
// Callers may only set amounts; balance and status are derived.
type InvoiceInput struct {
	PatientID     string  `json:"patient_id"`
	InvoiceType   string  `json:"invoice_type"`
	Amount        float64 `json:"amount"`
	AmountPaid    float64 `json:"amount_paid,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}

// InvoiceUpdates represents a partial update to an invoice
type InvoiceUpdates struct {
	InvoiceType   *string    `json:"invoice_type,omitempty"`
	Amount        *float64   `json:"amount,omitempty"`
	AmountPaid    *float64   `json:"amount_paid,omitempty"`
	PaymentMethod *string    `json:"payment_method,omitempty"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
}
