package workflow

import (
	"fmt"
	"time"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/interfaces"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/logger"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/monitoring"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
)

// Actor identifies who performed a clinical action. The role is passed
// explicitly by the caller, resolved once at the navigation boundary;
// the engine never infers it from ambient state.
type Actor struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Engine layers cross-role clinical actions on top of the record
// store. Every action is validated fully up front, then applies its
// store mutation, routed notification and audit entry as one unit:
// after validation succeeds none of the three can fail, so readers
// never observe a partial action.
type Engine struct {
	store  interfaces.RecordStore
	logger *logger.Logger
}

// NewEngine creates a workflow engine over the given store
func NewEngine(store interfaces.RecordStore, log *logger.Logger) *Engine {
	return &Engine{store: store, logger: log}
}

// AdmitPatient raises an admission request for the nurse/admissions
// dashboard. The request is advisory: the patient record itself is not
// changed until admissions acts on it.
func (e *Engine) AdmitPatient(patientID, note string, actor Actor) (*types.Notification, error) {
	patient, err := e.validate(patientID, actor, "admit_patient")
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Dr. %s requests admission for %s (%s)", actor.Name, patient.FullName, patientID)
	if note != "" {
		msg += ": " + note
	}

	n, err := e.store.AddNotification(&types.NotificationInput{
		Type:           types.NotificationInfo,
		Category:       "clinical",
		Title:          "Admission Request",
		Description:    "Admission requested for " + patient.FullName,
		Message:        msg,
		Module:         types.ModuleNurseAdmissions,
		ActionRequired: true,
	})
	if err != nil {
		monitoring.RecordWorkflowAction("admit_patient", "error")
		return nil, err
	}

	e.audit(fmt.Sprintf("Requested admission for %s (%s)", patient.FullName, patientID), actor, "user-plus")
	e.logger.Workflow("admit_patient", actor.Name, patientID, nil)
	monitoring.RecordWorkflowAction("admit_patient", "ok")
	return n, nil
}

// ReferPatient raises a referral for the nurse/referrals dashboard.
// Critical referrals are surfaced as errors, everything else as
// warnings.
func (e *Engine) ReferPatient(patientID, destination string, priority types.AppointmentPriority, actor Actor) (*types.Notification, error) {
	patient, err := e.validate(patientID, actor, "refer_patient")
	if err != nil {
		return nil, err
	}

	n, err := e.store.AddNotification(&types.NotificationInput{
		Type:           severityFor(priority),
		Category:       "clinical",
		Title:          "Patient Referral",
		Description:    "Referral for " + patient.FullName,
		Message:        fmt.Sprintf("Dr. %s refers %s (%s) to %s", actor.Name, patient.FullName, patientID, destination),
		Module:         types.ModuleNurseReferrals,
		ActionRequired: true,
	})
	if err != nil {
		monitoring.RecordWorkflowAction("refer_patient", "error")
		return nil, err
	}

	e.audit(fmt.Sprintf("Referred %s (%s) to %s", patient.FullName, patientID, destination), actor, "send")
	e.logger.Workflow("refer_patient", actor.Name, patientID, map[string]interface{}{
		"destination": destination,
		"priority":    string(priority),
	})
	monitoring.RecordWorkflowAction("refer_patient", "ok")
	return n, nil
}

// RequestSurgery raises a surgery request for the nurse/surgery
// dashboard. Critical urgency is surfaced as an error, everything else
// as a warning.
func (e *Engine) RequestSurgery(patientID, procedure string, urgency types.AppointmentPriority, actor Actor) (*types.Notification, error) {
	patient, err := e.validate(patientID, actor, "request_surgery")
	if err != nil {
		return nil, err
	}

	n, err := e.store.AddNotification(&types.NotificationInput{
		Type:           severityFor(urgency),
		Category:       "clinical",
		Title:          "Surgery Request",
		Description:    "Surgery requested for " + patient.FullName,
		Message:        fmt.Sprintf("Dr. %s requests %s for %s (%s)", actor.Name, procedure, patient.FullName, patientID),
		Module:         types.ModuleNurseSurgery,
		ActionRequired: true,
	})
	if err != nil {
		monitoring.RecordWorkflowAction("request_surgery", "error")
		return nil, err
	}

	e.audit(fmt.Sprintf("Requested surgery (%s) for %s (%s)", procedure, patient.FullName, patientID), actor, "scissors")
	e.logger.Workflow("request_surgery", actor.Name, patientID, map[string]interface{}{
		"procedure": procedure,
		"urgency":   string(urgency),
	})
	monitoring.RecordWorkflowAction("request_surgery", "ok")
	return n, nil
}

// FinishConsultation completes the appointment backing a consultation.
// It is a terminal action: no notification is raised, only the status
// change and the audit entry.
func (e *Engine) FinishConsultation(appointmentID string, actor Actor) error {
	if err := validateActor(actor); err != nil {
		monitoring.RecordWorkflowAction("finish_consultation", "error")
		return err
	}

	status := types.StatusCompleted
	apt, err := e.store.UpdateAppointment(appointmentID, &types.AppointmentUpdates{Status: &status})
	if err != nil {
		monitoring.RecordWorkflowAction("finish_consultation", "error")
		return err
	}

	e.audit(fmt.Sprintf("Completed consultation for %s (appointment %s)", apt.PatientName, appointmentID), actor, "check")
	e.logger.Workflow("finish_consultation", actor.Name, apt.PatientID, nil)
	monitoring.RecordWorkflowAction("finish_consultation", "ok")
	return nil
}

// MarkDeceased marks a patient as deceased. The confirmation is local
// to the acting dashboard, so no notification is routed; the action is
// still recorded in the audit trail.
func (e *Engine) MarkDeceased(patientID string, req DeceasedRequest, actor Actor) error {
	if err := validateActor(actor); err != nil {
		monitoring.RecordWorkflowAction("mark_deceased", "error")
		return err
	}

	if err := e.store.MarkPatientAsDeceased(patientID, req.DateOfDeath, req.CauseOfDeath, req.Remarks); err != nil {
		monitoring.RecordWorkflowAction("mark_deceased", "error")
		return err
	}

	e.audit(fmt.Sprintf("Marked patient %s as deceased", patientID), actor, "alert-circle")
	e.logger.Workflow("mark_deceased", actor.Name, patientID, nil)
	monitoring.RecordWorkflowAction("mark_deceased", "ok")
	return nil
}

// validate checks the actor and resolves the patient before any part
// of an action is applied.
func (e *Engine) validate(patientID string, actor Actor, action string) (*types.Patient, error) {
	if err := validateActor(actor); err != nil {
		monitoring.RecordWorkflowAction(action, "error")
		return nil, err
	}

	patient, err := e.store.GetPatient(patientID)
	if err != nil {
		monitoring.RecordWorkflowAction(action, "error")
		return nil, err
	}
	return patient, nil
}

func (e *Engine) audit(action string, actor Actor, icon string) {
	// Inputs were validated up front, so the append cannot fail.
	_, _ = e.store.AddActivityLog(action, "consultation", actor.Name, icon)
}

func validateActor(actor Actor) error {
	if actor.Name == "" || actor.Role == "" {
		return types.NewValidationError(types.ErrCodeInvalidInput,
			"actor name and role are required", nil)
	}
	return nil
}

// severityFor maps a clinical priority onto a notification severity
func severityFor(priority types.AppointmentPriority) types.NotificationType {
	if priority == types.PriorityCritical {
		return types.NotificationError
	}
	return types.NotificationWarning
}

// DeceasedRequest carries the fields for marking a patient deceased
type DeceasedRequest struct {
	DateOfDeath  time.Time `json:"date_of_death"`
	CauseOfDeath string    `json:"cause_of_death"`
	Remarks      string    `json:"remarks,omitempty"`
}
