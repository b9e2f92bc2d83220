package records

import (
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/internal/identity"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/monitoring"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
	"github.com/google/uuid"
)

// AddInvoice creates a billing record for an existing patient. Balance
// and payment status are always recomputed here from the amounts;
// whatever the caller supplied for either is discarded. The patient
// name is snapshotted at creation.
func (s *Store) AddInvoice(input *types.InvoiceInput) (*types.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.PatientID == "" {
		monitoring.RecordStoreMutation("invoice", "add", "error")
		return nil, types.NewValidationError(types.ErrCodeInvalidInput,
			"patient_id is required", nil)
	}

	patient, ok := s.patients[input.PatientID]
	if !ok {
		monitoring.RecordStoreMutation("invoice", "add", "error")
		return nil, types.NewReferentialError(types.ErrCodeUnknownPatient,
			"no patient with id "+input.PatientID,
			map[string]interface{}{"patient_id": input.PatientID})
	}

	balance, err := identity.ComputeBalance(input.Amount, input.AmountPaid)
	if err != nil {
		monitoring.RecordStoreMutation("invoice", "add", "error")
		return nil, err
	}

	now := s.now()
	inv := &types.Invoice{
		ID:            uuid.New().String(),
		ReceiptID:     s.gen.NextReceiptID(),
		PatientID:     input.PatientID,
		PatientName:   identity.FullName(patient.FirstName, patient.LastName),
		InvoiceType:   input.InvoiceType,
		Amount:        input.Amount,
		AmountPaid:    input.AmountPaid,
		Balance:       balance,
		PaymentStatus: identity.DerivePaymentStatus(balance, input.AmountPaid),
		PaymentMethod: input.PaymentMethod,
		DateCreated:   now,
	}
	if inv.PaymentStatus == types.PaymentStatusPaid {
		inv.PaymentDate = now
	}

	s.invoices[inv.ID] = inv
	s.invoiceOrder = append(s.invoiceOrder, inv.ID)

	s.logger.WithFields(map[string]interface{}{
		"invoice_id": inv.ID,
		"receipt_id": inv.ReceiptID,
		"patient_id": inv.PatientID,
	}).Info("Invoice created")
	monitoring.RecordStoreMutation("invoice", "add", "ok")
	return copyInvoice(inv), nil
}

// UpdateInvoice merges a partial update over an existing invoice and
// recomputes balance and payment status from the resulting amounts.
// The amounts are validated before anything is written.
func (s *Store) UpdateInvoice(id string, updates *types.InvoiceUpdates) (*types.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[id]
	if !ok {
		monitoring.RecordStoreMutation("invoice", "update", "error")
		return nil, types.NewNotFoundError(types.ErrCodeNotFound, "invoice not found: "+id)
	}

	amount := inv.Amount
	if updates.Amount != nil {
		amount = *updates.Amount
	}
	amountPaid := inv.AmountPaid
	if updates.AmountPaid != nil {
		amountPaid = *updates.AmountPaid
	}

	balance, err := identity.ComputeBalance(amount, amountPaid)
	if err != nil {
		monitoring.RecordStoreMutation("invoice", "update", "error")
		return nil, err
	}

	wasPaid := inv.PaymentStatus == types.PaymentStatusPaid

	inv.Amount = amount
	inv.AmountPaid = amountPaid
	inv.Balance = balance
	inv.PaymentStatus = identity.DerivePaymentStatus(balance, amountPaid)
	if updates.InvoiceType != nil {
		inv.InvoiceType = *updates.InvoiceType
	}
	if updates.PaymentMethod != nil {
		inv.PaymentMethod = *updates.PaymentMethod
	}
	if updates.PaymentDate != nil {
		inv.PaymentDate = *updates.PaymentDate
	} else if !wasPaid && inv.PaymentStatus == types.PaymentStatusPaid {
		inv.PaymentDate = s.now()
	}

	monitoring.RecordStoreMutation("invoice", "update", "ok")
	return copyInvoice(inv), nil
}
