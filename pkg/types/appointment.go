package types

import "time"

// AppointmentStatus represents appointment status values
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// AppointmentPriority represents appointment priority values
type AppointmentPriority string

const (
	PriorityNormal   AppointmentPriority = "normal"
	PriorityUrgent   AppointmentPriority = "urgent"
	PriorityCritical AppointmentPriority = "critical"
)

// Appointment represents a scheduled appointment. PatientName is a
// point-in-time snapshot taken at creation and is intentionally not
// kept in sync with later edits to the patient file.
type Appointment struct {
	ID          string              `json:"id"`
	PatientID   string              `json:"patient_id"`
	PatientName string              `json:"patient_name"`
	DoctorID    string              `json:"doctor_id"`
	DoctorName  string              `json:"doctor_name"`
	Department  string              `json:"department"`
	Date        string              `json:"date"`
	Time        string              `json:"time"`
	Status      AppointmentStatus   `json:"status"`
	Priority    AppointmentPriority `json:"priority"`
	Notes       string              `json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// AppointmentInput carries caller-supplied fields for scheduling an
// appointment. The ID and the patient-name snapshot are assigned by
// the store.
type AppointmentInput struct {
	PatientID  string              `json:"patient_id"`
	DoctorID   string              `json:"doctor_id"`
	DoctorName string              `json:"doctor_name"`
	Department string              `json:"department"`
	Date       string              `json:"date"`
	Time       string              `json:"time"`
	Priority   AppointmentPriority `json:"priority,omitempty"`
	Notes      string              `json:"notes,omitempty"`
}

// AppointmentUpdates represents a partial update to an appointment
type AppointmentUpdates struct {
	DoctorID   *string              `json:"doctor_id,omitempty"`
	DoctorName *string              `json:"doctor_name,omitempty"`
	Department *string              `json:"department,omitempty"`
	Date       *string              `json:"date,omitempty"`
	Time       *string              `json:"time,omitempty"`
	Status     *AppointmentStatus   `json:"status,omitempty"`
	Priority   *AppointmentPriority `json:"priority,omitempty"`
	Notes      *string              `json:"notes,omitempty"`
}
