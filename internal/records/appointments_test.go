package records

import (
	"testing"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleAppointment(t *testing.T, s *Store, patientID string) *types.Appointment {
	t.Helper()

	apt, err := s.AddAppointment(&types.AppointmentInput{
		PatientID:  patientID,
		DoctorID:   "doc-1",
		DoctorName: "Dr. Danquah",
		Department: "General Medicine",
		Date:       "2025-06-02",
		Time:       "09:30",
	})
	require.NoError(t, err)
	return apt
}

func TestAddAppointment(t *testing.T) {
	s := newTestStore()
	patient := registerPatient(t, s, types.FileTypeIndividual, "")

	apt := scheduleAppointment(t, s, patient.ID)

	assert.NotEmpty(t, apt.ID)
	assert.Equal(t, types.StatusScheduled, apt.Status)
	assert.Equal(t, types.PriorityNormal, apt.Priority)
	assert.Equal(t, "Aisha Mohammed", apt.PatientName)
}

func TestAddAppointment_UnknownPatientAtomicity(t *testing.T) {
	s := newTestStore()

	_, err := s.AddAppointment(&types.AppointmentInput{
		PatientID: "GH-PT-99999",
		DoctorID:  "doc-1",
		Date:      "2025-06-02",
		Time:      "09:30",
	})
	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeReferential, types.ErrorTypeOf(err))
	assert.Contains(t, err.Error(), types.ErrCodeUnknownPatient)

	// Failed add leaves the collection unchanged
	assert.Empty(t, s.ListAppointments())
}

func TestAddAppointment_MissingFields(t *testing.T) {
	s := newTestStore()
	patient := registerPatient(t, s, types.FileTypeIndividual, "")

	_, err := s.AddAppointment(&types.AppointmentInput{PatientID: patient.ID})
	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeValidation, types.ErrorTypeOf(err))
}

func TestUpdateAppointment_CompletionSticks(t *testing.T) {
	s := newTestStore()
	patient := registerPatient(t, s, types.FileTypeIndividual, "")
	apt := scheduleAppointment(t, s, patient.ID)

	completed := types.StatusCompleted
	_, err := s.UpdateAppointment(apt.ID, &types.AppointmentUpdates{Status: &completed})
	require.NoError(t, err)

	got, err := s.GetAppointment(apt.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, got.Status)

	// An unrelated patient edit does not revert the status
	phone := "024-555-0199"
	_, err = s.UpdatePatient(patient.ID, &types.PatientUpdates{PhoneNumber: &phone})
	require.NoError(t, err)

	got, err = s.GetAppointment(apt.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, got.Status)
}

func TestUpdateAppointment_TerminalStatusLocked(t *testing.T) {
	s := newTestStore()
	patient := registerPatient(t, s, types.FileTypeIndividual, "")
	apt := scheduleAppointment(t, s, patient.ID)

	completed := types.StatusCompleted
	_, err := s.UpdateAppointment(apt.ID, &types.AppointmentUpdates{Status: &completed})
	require.NoError(t, err)

	scheduled := types.StatusScheduled
	_, err = s.UpdateAppointment(apt.ID, &types.AppointmentUpdates{Status: &scheduled})
	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeInvariant, types.ErrorTypeOf(err))

	// Non-status fields can still be amended after completion
	notes := "follow-up in two weeks"
	got, err := s.UpdateAppointment(apt.ID, &types.AppointmentUpdates{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, got.Notes)
	assert.Equal(t, types.StatusCompleted, got.Status)
}

func TestUpdateAppointment_StatusOnlyAdvances(t *testing.T) {
	s := newTestStore()
	patient := registerPatient(t, s, types.FileTypeIndividual, "")
	apt := scheduleAppointment(t, s, patient.ID)

	inProgress := types.StatusInProgress
	_, err := s.UpdateAppointment(apt.ID, &types.AppointmentUpdates{Status: &inProgress})
	require.NoError(t, err)

	// Moving backwards to scheduled is rejected
	scheduled := types.StatusScheduled
	_, err = s.UpdateAppointment(apt.ID, &types.AppointmentUpdates{Status: &scheduled})
	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeInvariant, types.ErrorTypeOf(err))

	got, err := s.GetAppointment(apt.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusInProgress, got.Status)

	// Forward to completed still works
	completed := types.StatusCompleted
	_, err = s.UpdateAppointment(apt.ID, &types.AppointmentUpdates{Status: &completed})
	require.NoError(t, err)
}

func TestUpdateAppointment_CancelFromInProgress(t *testing.T) {
	s := newTestStore()
	patient := registerPatient(t, s, types.FileTypeIndividual, "")
	apt := scheduleAppointment(t, s, patient.ID)

	inProgress := types.StatusInProgress
	_, err := s.UpdateAppointment(apt.ID, &types.AppointmentUpdates{Status: &inProgress})
	require.NoError(t, err)

	cancelled := types.StatusCancelled
	got, err := s.UpdateAppointment(apt.ID, &types.AppointmentUpdates{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, types.StatusCancelled, got.Status)
}

func TestUpdateAppointment_UnknownStatusRejected(t *testing.T) {
	s := newTestStore()
	patient := registerPatient(t, s, types.FileTypeIndividual, "")
	apt := scheduleAppointment(t, s, patient.ID)

	bogus := types.AppointmentStatus("rescheduled")
	_, err := s.UpdateAppointment(apt.ID, &types.AppointmentUpdates{Status: &bogus})
	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeValidation, types.ErrorTypeOf(err))
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	s := newTestStore()

	notes := "x"
	_, err := s.UpdateAppointment("missing", &types.AppointmentUpdates{Notes: &notes})
	require.Error(t, err)
	assert.Equal(t, types.ErrorTypeNotFound, types.ErrorTypeOf(err))
}
