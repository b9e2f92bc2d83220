package identity

import (
	"fmt"
	"sync"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/config"
)

// Sequence issues human-readable, monotonically increasing identifiers
// such as GH-PT-00001. Issued numbers are never reused, even after the
// record they were assigned to is deleted.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int64
}

// NewSequence creates a sequence starting at start with the given prefix
func NewSequence(prefix string, start int64) *Sequence {
	if start < 1 {
		start = 1
	}
	return &Sequence{prefix: prefix, next: start}
}

// Next returns the next identifier in the sequence
func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("%s%05d", s.prefix, s.next)
	s.next++
	return id
}

// Generator bundles the patient-file and receipt sequences
type Generator struct {
	patients *Sequence
	receipts *Sequence
}

// NewGenerator creates a generator from identity configuration
func NewGenerator(cfg *config.IdentityConfig) *Generator {
	return &Generator{
		patients: NewSequence(cfg.PatientPrefix, cfg.PatientStart),
		receipts: NewSequence(cfg.ReceiptPrefix, cfg.ReceiptStart),
	}
}

// NextPatientID returns a new unique patient file number
func (g *Generator) NextPatientID() string {
	return g.patients.Next()
}

// NextReceiptID returns a new unique invoice receipt number
func (g *Generator) NextReceiptID() string {
	return g.receipts.Next()
}
