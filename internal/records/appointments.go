package records

import (
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/internal/identity"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/monitoring"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
	"github.com/google/uuid"
)

// AddAppointment schedules an appointment for an existing patient. The
// patient name is copied onto the appointment as a point-in-time
// snapshot and is never retroactively updated.
func (s *Store) AddAppointment(input *types.AppointmentInput) (*types.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateAppointmentInput(input); err != nil {
		monitoring.RecordStoreMutation("appointment", "add", "error")
		return nil, err
	}

	patient, ok := s.patients[input.PatientID]
	if !ok {
		monitoring.RecordStoreMutation("appointment", "add", "error")
		return nil, types.NewReferentialError(types.ErrCodeUnknownPatient,
			"no patient with id "+input.PatientID,
			map[string]interface{}{"patient_id": input.PatientID})
	}

	priority := input.Priority
	if priority == "" {
		priority = types.PriorityNormal
	}

	now := s.now()
	apt := &types.Appointment{
		ID:          uuid.New().String(),
		PatientID:   input.PatientID,
		PatientName: identity.FullName(patient.FirstName, patient.LastName),
		DoctorID:    input.DoctorID,
		DoctorName:  input.DoctorName,
		Department:  input.Department,
		Date:        input.Date,
		Time:        input.Time,
		Status:      types.StatusScheduled,
		Priority:    priority,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.appointments[apt.ID] = apt
	s.appointmentOrder = append(s.appointmentOrder, apt.ID)

	s.logger.WithFields(map[string]interface{}{
		"appointment_id": apt.ID,
		"patient_id":     apt.PatientID,
	}).Info("Appointment scheduled")
	monitoring.RecordStoreMutation("appointment", "add", "ok")
	return copyAppointment(apt), nil
}

// appointmentStatusRank orders the forward-only lifecycle
// scheduled -> in_progress -> completed.
var appointmentStatusRank = map[types.AppointmentStatus]int{
	types.StatusScheduled:  0,
	types.StatusInProgress: 1,
	types.StatusCompleted:  2,
}

// checkStatusTransition enforces status monotonicity: status only
// advances along scheduled -> in_progress -> completed, cancellation
// is allowed from either non-terminal state, and completed and
// cancelled are terminal.
func checkStatusTransition(from, to types.AppointmentStatus) error {
	if to == from {
		return nil
	}
	if from == types.StatusCompleted || from == types.StatusCancelled {
		return types.NewInvariantError(types.ErrCodeInvalidInput,
			"appointment status is terminal and cannot change",
			map[string]interface{}{"status": string(from)})
	}
	if to == types.StatusCancelled {
		return nil
	}
	toRank, ok := appointmentStatusRank[to]
	if !ok {
		return types.NewValidationError(types.ErrCodeInvalidInput,
			"unknown appointment status", map[string]interface{}{
				"status": string(to),
			})
	}
	if toRank < appointmentStatusRank[from] {
		return types.NewInvariantError(types.ErrCodeInvalidInput,
			"appointment status can only advance",
			map[string]interface{}{
				"from": string(from),
				"to":   string(to),
			})
	}
	return nil
}

// UpdateAppointment merges a partial update over an existing
// appointment. Status changes must advance the lifecycle; see
// checkStatusTransition.
func (s *Store) UpdateAppointment(id string, updates *types.AppointmentUpdates) (*types.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apt, ok := s.appointments[id]
	if !ok {
		monitoring.RecordStoreMutation("appointment", "update", "error")
		return nil, types.NewNotFoundError(types.ErrCodeNotFound, "appointment not found: "+id)
	}

	if updates.Status != nil {
		if err := checkStatusTransition(apt.Status, *updates.Status); err != nil {
			monitoring.RecordStoreMutation("appointment", "update", "error")
			return nil, err
		}
	}

	if updates.DoctorID != nil {
		apt.DoctorID = *updates.DoctorID
	}
	if updates.DoctorName != nil {
		apt.DoctorName = *updates.DoctorName
	}
	if updates.Department != nil {
		apt.Department = *updates.Department
	}
	if updates.Date != nil {
		apt.Date = *updates.Date
	}
	if updates.Time != nil {
		apt.Time = *updates.Time
	}
	if updates.Status != nil {
		apt.Status = *updates.Status
	}
	if updates.Priority != nil {
		apt.Priority = *updates.Priority
	}
	if updates.Notes != nil {
		apt.Notes = *updates.Notes
	}
	apt.UpdatedAt = s.now()

	monitoring.RecordStoreMutation("appointment", "update", "ok")
	return copyAppointment(apt), nil
}

func validateAppointmentInput(input *types.AppointmentInput) error {
	missing := map[string]interface{}{}
	if input.PatientID == "" {
		missing["patient_id"] = "required"
	}
	if input.DoctorID == "" {
		missing["doctor_id"] = "required"
	}
	if input.Date == "" {
		missing["date"] = "required"
	}
	if input.Time == "" {
		missing["time"] = "required"
	}
	if len(missing) > 0 {
		return types.NewValidationError(types.ErrCodeInvalidInput,
			"missing required appointment fields", missing)
	}

	switch input.Priority {
	case "", types.PriorityNormal, types.PriorityUrgent, types.PriorityCritical:
	default:
		return types.NewValidationError(types.ErrCodeInvalidInput,
			"unknown appointment priority", map[string]interface{}{
				"priority": string(input.Priority),
			})
	}

	return nil
}
