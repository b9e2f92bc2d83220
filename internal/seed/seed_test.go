package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/internal/records"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/config"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/logger"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedStore() *records.Store {
	cfg := &config.IdentityConfig{
		PatientPrefix: "GH-PT-",
		PatientStart:  1,
		ReceiptPrefix: "GH-RCT-",
		ReceiptStart:  1,
	}
	return records.New(cfg, logger.New("error"))
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const fixtureJSON = `{
  "patients": [
    {
      "ref": "mohammed-family",
      "file_type": "family",
      "first_name": "Ibrahim",
      "last_name": "Mohammed",
      "gender": "Male",
      "date_of_birth": "1968-07-01"
    },
    {
      "ref": "aisha",
      "parent_ref": "mohammed-family",
      "file_type": "individual",
      "first_name": "Aisha",
      "last_name": "Mohammed",
      "gender": "Female",
      "date_of_birth": "1995-03-15",
      "is_nhis": true,
      "nhis_number": "NH-29381",
      "vitals": {"height_cm": 170, "weight_kg": 65, "recorded_by": "Nurse Adjoa"}
    }
  ],
  "appointments": [
    {
      "patient_ref": "aisha",
      "doctor_id": "doc-1",
      "doctor_name": "Dr. Danquah",
      "department": "General Medicine",
      "date": "2025-06-02",
      "time": "09:30"
    }
  ],
  "invoices": [
    {"patient_ref": "aisha", "invoice_type": "consultation", "amount": 10000, "amount_paid": 4000}
  ]
}`

func TestLoad(t *testing.T) {
	store := newSeedStore()
	path := writeFixture(t, fixtureJSON)

	summary, err := Load(path, store, logger.New("error"))
	require.NoError(t, err)
	assert.Equal(t, Summary{Patients: 2, Appointments: 1, Invoices: 1}, summary)

	// Fixture refs resolved into store-assigned identifiers, family
	// file first
	patients := store.ListPatients()
	require.Len(t, patients, 2)
	family, member := patients[0], patients[1]
	assert.Equal(t, types.FileTypeFamily, family.FileType)
	assert.Equal(t, family.ID, member.ParentFileID)
	require.NotNil(t, member.Vitals)
	assert.Equal(t, "normal", member.Vitals.BMIClass)

	// Seeded records went through the store's usual derivation
	invoices := store.ListInvoices()
	require.Len(t, invoices, 1)
	assert.Equal(t, types.PaymentStatusPartial, invoices[0].PaymentStatus)
	assert.Equal(t, 6000.0, invoices[0].Balance)

	appointments := store.ListAppointments()
	require.Len(t, appointments, 1)
	assert.Equal(t, member.ID, appointments[0].PatientID)
	assert.Equal(t, "Aisha Mohammed", appointments[0].PatientName)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	store := newSeedStore()

	summary, err := Load(filepath.Join(t.TempDir(), "absent.json"), store, logger.New("error"))
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
	assert.Empty(t, store.ListPatients())
}

func TestLoad_MalformedFile(t *testing.T) {
	store := newSeedStore()
	path := writeFixture(t, "{not json")

	_, err := Load(path, store, logger.New("error"))
	require.Error(t, err)
}

func TestLoad_UnknownParentRef(t *testing.T) {
	store := newSeedStore()
	path := writeFixture(t, `{
  "patients": [
    {"ref": "orphan", "parent_ref": "nobody", "file_type": "individual",
     "first_name": "A", "last_name": "B", "gender": "Female", "date_of_birth": "2000-01-01"}
  ]
}`)

	_, err := Load(path, store, logger.New("error"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parent_ref")
}

func TestLoad_UnknownAppointmentRef(t *testing.T) {
	store := newSeedStore()
	path := writeFixture(t, `{
  "appointments": [
    {"patient_ref": "ghost", "doctor_id": "doc-1", "date": "2025-06-02", "time": "09:30"}
  ]
}`)

	_, err := Load(path, store, logger.New("error"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown patient")
}
