package records

import (
	"testing"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/internal/identity"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createInvoice(t *testing.T, s *Store, patientID string, amount, amountPaid float64) *types.Invoice {
	t.Helper()

	inv, err := s.AddInvoice(&types.InvoiceInput{
		PatientID:   patientID,
		InvoiceType: "consultation",
		Amount:      amount,
		AmountPaid:  amountPaid,
	})
	require.NoError(t, err)
	return inv
}

func TestAddInvoice_FullyPaid(t *testing.T) {
	s := newTestStore()
	patient := registerPatient(t, s, types.FileTypeIndividual, "")

	inv := createInvoice(t, s, patient.ID, 10000, 10000)

	assert.Equal(t, 0.0, inv.Balance)
	assert.Equal(t, types.PaymentStatusPaid, inv.PaymentStatus)
	assert.Equal(t, testClock, inv.PaymentDate)
	assert.Equal(t, "GH-RCT-00001", inv.ReceiptID)
}

func TestAddInvoice_PartiallyPaid(t *testing.T) {
	s := newTestStore()
	patient := registerPatient(t, s, types.FileTypeIndividual, "")

	inv := createInvoice(t, s, patient.ID, 10000, 4000)

	assert.Equal(t, 6000.0, inv.Balance)
	assert.Equal(t, types.PaymentStatusPartial, inv.PaymentStatus)
	assert.True(t, inv.PaymentDate.IsZero())
}

func TestAddInvoice_Unpaid(t *testing.T) {
	s := newTestStore()
	patient := registerPatient(t, s, types.FileTypeIndividual, "")

	inv := createInvoice(t, s, patient.ID, 2500, 0)

	assert.Equal(t, 2500.0, inv.Balance)
	assert.Equal(t, types.PaymentStatusUnpaid, inv.PaymentStatus)
}

func TestAddInvoice_UnknownPatient(t *testing.T) {
	s := newTestStore()

	_, err := s.AddInvoice(&types.InvoiceInput{
		PatientID: "GH-PT-99999",
		Amount:    100,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), types.ErrCodeUnknownPatient)
	assert.Empty(t, s.ListInvoices())
}

func TestAddInvoice_Overpayment(t *testing.T) {
	s := newTestStore()
	patient := registerPatient(t, s, types.FileTypeIndividual, "")

	_, err := s.AddInvoice(&types.InvoiceInput{
		PatientID:  patient.ID,
		Amount:     100,
		AmountPaid: 200,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), types.ErrCodeInvalidAmount)
	assert.Empty(t, s.ListInvoices())
}

func TestUpdateInvoice_RecomputesStatus(t *testing.T) {
	s := newTestStore()
	patient := registerPatient(t, s, types.FileTypeIndividual, "")
	inv := createInvoice(t, s, patient.ID, 10000, 4000)

	paid := 10000.0
	got, err := s.UpdateInvoice(inv.ID, &types.InvoiceUpdates{AmountPaid: &paid})
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.Balance)
	assert.Equal(t, types.PaymentStatusPaid, got.PaymentStatus)
	assert.Equal(t, testClock, got.PaymentDate)
}

func TestUpdateInvoice_InvalidAmountLeavesStateUnchanged(t *testing.T) {
	s := newTestStore()
	patient := registerPatient(t, s, types.FileTypeIndividual, "")
	inv := createInvoice(t, s, patient.ID, 10000, 4000)

	overpaid := 20000.0
	_, err := s.UpdateInvoice(inv.ID, &types.InvoiceUpdates{AmountPaid: &overpaid})
	require.Error(t, err)

	got, err := s.GetInvoice(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, got.AmountPaid)
	assert.Equal(t, types.PaymentStatusPartial, got.PaymentStatus)
}

func TestInvoiceStatusInvariantAfterMutations(t *testing.T) {
	s := newTestStore()
	patient := registerPatient(t, s, types.FileTypeIndividual, "")

	createInvoice(t, s, patient.ID, 10000, 10000)
	inv := createInvoice(t, s, patient.ID, 8000, 1000)

	amount := 9000.0
	_, err := s.UpdateInvoice(inv.ID, &types.InvoiceUpdates{Amount: &amount})
	require.NoError(t, err)

	for _, got := range s.ListInvoices() {
		assert.Equal(t, got.Amount-got.AmountPaid, got.Balance)
		assert.Equal(t, identity.DerivePaymentStatus(got.Balance, got.AmountPaid), got.PaymentStatus)
	}
}
