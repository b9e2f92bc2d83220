package identity

import (
	"testing"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestSequence_Monotonic(t *testing.T) {
	seq := NewSequence("GH-PT-", 1)

	assert.Equal(t, "GH-PT-00001", seq.Next())
	assert.Equal(t, "GH-PT-00002", seq.Next())
	assert.Equal(t, "GH-PT-00003", seq.Next())
}

func TestSequence_StartBelowOne(t *testing.T) {
	seq := NewSequence("GH-PT-", -5)
	assert.Equal(t, "GH-PT-00001", seq.Next())
}

func TestSequence_NumbersNeverReused(t *testing.T) {
	seq := NewSequence("GH-PT-", 1)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := seq.Next()
		assert.False(t, seen[id], "sequence issued %s twice", id)
		seen[id] = true
	}
}

func TestGenerator_IndependentSequences(t *testing.T) {
	gen := NewGenerator(&config.IdentityConfig{
		PatientPrefix: "GH-PT-",
		PatientStart:  1,
		ReceiptPrefix: "GH-RCT-",
		ReceiptStart:  1,
	})

	assert.Equal(t, "GH-PT-00001", gen.NextPatientID())
	assert.Equal(t, "GH-PT-00002", gen.NextPatientID())

	// Receipt sequence is unaffected by patient issuance
	assert.Equal(t, "GH-RCT-00001", gen.NextReceiptID())
}
