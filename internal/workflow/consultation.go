package workflow

import (
	"sync"
	"time"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/monitoring"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
)

// SessionState represents the consultation session lifecycle
type SessionState string

const (
	SessionDraft     SessionState = "draft"
	SessionSaved     SessionState = "saved"
	SessionCompleted SessionState = "completed"
)

// ConsultationDraft holds the doctor-authored consultation fields
type ConsultationDraft struct {
	Complaints   string `json:"complaints"`
	Examination  string `json:"examination"`
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
}

func (d ConsultationDraft) empty() bool {
	return d.Complaints == "" && d.Examination == "" && d.Diagnosis == "" && d.Prescription == ""
}

// ConsultationSession is the editing session for a single visit. Edits
// accumulate as a draft; a debounced autosave timer moves the session
// to Saved once the examination fields are non-empty and the autosave
// delay has elapsed since the last edit. Each edit resets the pending
// timer so only the most recent one fires, and Close cancels it so an
// abandoned session writes nothing.
//
// Completing the session finishes the underlying appointment. Editing
// afterwards re-opens the draft as an amendment but never reverts the
// appointment's completed status. Vitals come from nursing and are
// read-only here.
type ConsultationSession struct {
	mu sync.Mutex

	engine        *Engine
	appointmentID string
	patientID     string
	actor         Actor
	autosaveDelay time.Duration

	state    SessionState
	draft    ConsultationDraft
	saved    ConsultationDraft
	vitals   *types.Vitals
	finished bool
	closed   bool
	timer    *time.Timer
}

// NewConsultationSession opens a session for the given appointment.
// The appointment and its patient must exist.
func (e *Engine) NewConsultationSession(appointmentID string, actor Actor, autosaveDelay time.Duration) (*ConsultationSession, error) {
	if err := validateActor(actor); err != nil {
		return nil, err
	}

	apt, err := e.store.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}

	patient, err := e.store.GetPatient(apt.PatientID)
	if err != nil {
		return nil, err
	}

	return &ConsultationSession{
		engine:        e,
		appointmentID: appointmentID,
		patientID:     patient.ID,
		actor:         actor,
		autosaveDelay: autosaveDelay,
		state:         SessionDraft,
		vitals:        patient.Vitals,
	}, nil
}

// State returns the current session state
func (s *ConsultationSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Draft returns the current draft contents
func (s *ConsultationSession) Draft() ConsultationDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Vitals returns the nursing vitals captured for the patient. The
// session never writes vitals; capture belongs to nursing.
func (s *ConsultationSession) Vitals() *types.Vitals {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vitals == nil {
		return nil
	}
	v := *s.vitals
	return &v
}

// Edit replaces the draft contents. The session drops back to Draft
// (post-completion edits are amendments) and the autosave timer is
// re-armed from scratch.
func (s *ConsultationSession) Edit(draft ConsultationDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.draft = draft
	s.state = SessionDraft
	s.rearmAutosaveLocked()
}

// Save persists the draft immediately and cancels any pending autosave
func (s *ConsultationSession) Save() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.stopTimerLocked()
	s.saveLocked()
}

// Complete saves the draft and finishes the consultation. The first
// completion marks the backing appointment Completed; completing again
// after an amendment only re-saves, the appointment status is already
// terminal.
func (s *ConsultationSession) Complete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.NewValidationError(types.ErrCodeInvalidInput,
			"consultation session is closed", nil)
	}

	s.stopTimerLocked()
	s.saveLocked()

	if !s.finished {
		if err := s.engine.FinishConsultation(s.appointmentID, s.actor); err != nil {
			return err
		}
		s.finished = true
	}

	s.state = SessionCompleted
	return nil
}

// Close abandons the session. Any pending autosave is cancelled so no
// write lands after the consuming view is gone.
func (s *ConsultationSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.closed = true
}

// rearmAutosaveLocked resets the debounced autosave timer. Callers
// must hold the session lock.
func (s *ConsultationSession) rearmAutosaveLocked() {
	s.stopTimerLocked()

	if s.draft.empty() {
		return
	}

	s.timer = time.AfterFunc(s.autosaveDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.closed || s.state != SessionDraft {
			return
		}
		s.saveLocked()
		monitoring.RecordConsultationAutosave()
	})
}

func (s *ConsultationSession) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// saveLocked marks the current draft as saved. Callers must hold the
// session lock.
func (s *ConsultationSession) saveLocked() {
	s.saved = s.draft
	if s.state != SessionCompleted {
		s.state = SessionSaved
	}
}

// LastSaved returns the most recently saved draft contents
func (s *ConsultationSession) LastSaved() ConsultationDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved
}
