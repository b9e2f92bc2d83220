package interfaces

import (
	"time"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
)

// RecordStore defines the interface for the shared clinical record
// store. The workflow engine and the seed loader depend on this
// contract rather than on the concrete store.
type RecordStore interface {
	// Patient registry
	AddPatient(input *types.PatientInput) (*types.Patient, error)
	GetPatient(id string) (*types.Patient, error)
	ListPatients() []*types.Patient
	UpdatePatient(id string, updates *types.PatientUpdates) (*types.Patient, error)
	DeletePatient(id, reason, user string) error
	MarkPatientAsDeceased(id string, dateOfDeath time.Time, causeOfDeath, remarks string) error
	RecordVitals(id string, vitals types.Vitals) (*types.Patient, error)

	// Appointments
	AddAppointment(input *types.AppointmentInput) (*types.Appointment, error)
	GetAppointment(id string) (*types.Appointment, error)
	ListAppointments() []*types.Appointment
	UpdateAppointment(id string, updates *types.AppointmentUpdates) (*types.Appointment, error)

	// Billing
	AddInvoice(input *types.InvoiceInput) (*types.Invoice, error)
	GetInvoice(id string) (*types.Invoice, error)
	ListInvoices() []*types.Invoice
	UpdateInvoice(id string, updates *types.InvoiceUpdates) (*types.Invoice, error)

	// Notifications and audit trail
	AddNotification(input *types.NotificationInput) (*types.Notification, error)
	MarkNotificationRead(id string) error
	ListNotifications() []*types.Notification
	AddActivityLog(action, module, user, icon string) (*types.ActivityLogEntry, error)
	ListActivityLog() []*types.ActivityLogEntry

	// Settings
	Settings() types.Settings
	UpdateSettings(updates *types.SettingsUpdates) types.Settings
	SettingsSnapshot() types.Settings
}
