package records

import (
	"sync"
	"time"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/internal/identity"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/config"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/logger"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
)

// Store is the canonical in-memory holder of all clinical record
// collections. Every dashboard reads and writes through it; no other
// component mutates the collections directly. A single mutex guarantees
// that each mutation runs to completion before any other access
// observes state, and every mutation validates fully before touching
// state so a failed call leaves nothing half-applied.
//
// Stores are constructed explicitly and passed to their consumers, so
// tests can run against isolated instances.
type Store struct {
	mu sync.Mutex

	gen    *identity.Generator
	logger *logger.Logger
	now    func() time.Time

	patients     map[string]*types.Patient
	patientOrder []string

	appointments     map[string]*types.Appointment
	appointmentOrder []string

	invoices     map[string]*types.Invoice
	invoiceOrder []string

	notifications []*types.Notification
	activityLog   []*types.ActivityLogEntry

	settings types.Settings
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the store's clock. Tests use this to pin derived
// fields such as age to a known date.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty record store
func New(cfg *config.IdentityConfig, log *logger.Logger, opts ...Option) *Store {
	s := &Store{
		gen:          identity.NewGenerator(cfg),
		logger:       log,
		now:          time.Now,
		patients:     make(map[string]*types.Patient),
		appointments: make(map[string]*types.Appointment),
		invoices:     make(map[string]*types.Invoice),
		settings:     types.DefaultSettings(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ListPatients returns the full patient collection in registration
// order. Derived fields are recomputed against the current clock.
func (s *Store) ListPatients() []*types.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.Patient, 0, len(s.patientOrder))
	for _, id := range s.patientOrder {
		out = append(out, s.patientView(s.patients[id]))
	}
	return out
}

// GetPatient returns a single patient file by ID
func (s *Store) GetPatient(id string) (*types.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[id]
	if !ok {
		return nil, types.NewNotFoundError(types.ErrCodeNotFound, "patient not found: "+id)
	}
	return s.patientView(p), nil
}

// ListAppointments returns the full appointment collection in creation order
func (s *Store) ListAppointments() []*types.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.Appointment, 0, len(s.appointmentOrder))
	for _, id := range s.appointmentOrder {
		out = append(out, copyAppointment(s.appointments[id]))
	}
	return out
}

// GetAppointment returns a single appointment by ID
func (s *Store) GetAppointment(id string) (*types.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apt, ok := s.appointments[id]
	if !ok {
		return nil, types.NewNotFoundError(types.ErrCodeNotFound, "appointment not found: "+id)
	}
	return copyAppointment(apt), nil
}

// ListInvoices returns the full invoice collection in creation order
func (s *Store) ListInvoices() []*types.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.Invoice, 0, len(s.invoiceOrder))
	for _, id := range s.invoiceOrder {
		out = append(out, copyInvoice(s.invoices[id]))
	}
	return out
}

// GetInvoice returns a single invoice by ID
func (s *Store) GetInvoice(id string) (*types.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[id]
	if !ok {
		return nil, types.NewNotFoundError(types.ErrCodeNotFound, "invoice not found: "+id)
	}
	return copyInvoice(inv), nil
}

// ListNotifications returns all notifications, newest last
func (s *Store) ListNotifications() []*types.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		c := *n
		out = append(out, &c)
	}
	return out
}

// ListActivityLog returns the append-only audit trail, oldest first
func (s *Store) ListActivityLog() []*types.ActivityLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.ActivityLogEntry, 0, len(s.activityLog))
	for _, e := range s.activityLog {
		c := *e
		out = append(out, &c)
	}
	return out
}

// patientView returns a copy of p with derived fields recomputed.
// Callers must hold the store lock.
func (s *Store) patientView(p *types.Patient) *types.Patient {
	c := *p
	c.FullName = identity.FullName(p.FirstName, p.LastName)
	c.Age = identity.ComputeAge(p.DateOfBirth, s.now())
	if p.Vitals != nil {
		v := *p.Vitals
		v.BMI = identity.ComputeBMI(v.HeightCm, v.WeightKg)
		v.BMIClass = identity.ClassifyBMI(v.BMI)
		c.Vitals = &v
	}
	return &c
}

func copyAppointment(apt *types.Appointment) *types.Appointment {
	c := *apt
	return &c
}

func copyInvoice(inv *types.Invoice) *types.Invoice {
	c := *inv
	return &c
}
