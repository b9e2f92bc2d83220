package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/interfaces"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/logger"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
)

// Fixture is the on-disk seed format. Records reference each other
// through local ref keys rather than file numbers, because the store
// assigns real identifiers during replay.
type Fixture struct {
	Patients     []PatientFixture     `json:"patients"`
	Appointments []AppointmentFixture `json:"appointments"`
	Invoices     []InvoiceFixture     `json:"invoices"`
}

// PatientFixture is one seeded patient file
type PatientFixture struct {
	Ref         string        `json:"ref"`
	ParentRef   string        `json:"parent_ref,omitempty"`
	FileType    string        `json:"file_type"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	Gender      string        `json:"gender"`
	DateOfBirth string        `json:"date_of_birth"`
	PhoneNumber string        `json:"phone_number,omitempty"`
	Address     string        `json:"address,omitempty"`
	PatientType string        `json:"patient_type,omitempty"`
	IsNHIS      bool          `json:"is_nhis,omitempty"`
	NHISNumber  string        `json:"nhis_number,omitempty"`
	Vitals      *types.Vitals `json:"vitals,omitempty"`
}

// AppointmentFixture is one seeded appointment
type AppointmentFixture struct {
	PatientRef string `json:"patient_ref"`
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
	Department string `json:"department"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Priority   string `json:"priority,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// InvoiceFixture is one seeded invoice
type InvoiceFixture struct {
	PatientRef    string  `json:"patient_ref"`
	InvoiceType   string  `json:"invoice_type"`
	Amount        float64 `json:"amount"`
	AmountPaid    float64 `json:"amount_paid,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}

// Summary reports what a seed run loaded
type Summary struct {
	Patients     int
	Appointments int
	Invoices     int
}

// Load populates the store from the fixture file at path. Every record
// is replayed through the store's public operations so the usual
// validation and invariants apply to seeded data. A missing file is
// not an error: the store simply starts empty.
func Load(path string, store interfaces.RecordStore, log *logger.Logger) (Summary, error) {
	var summary Summary

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", path).Info("No seed file, starting with empty store")
			return summary, nil
		}
		return summary, fmt.Errorf("failed to read seed file: %w", err)
	}

	var fixture Fixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return summary, fmt.Errorf("failed to parse seed file: %w", err)
	}

	// Seeded family files must exist before the individuals that link
	// to them, so replay patients in two passes.
	refs := make(map[string]string, len(fixture.Patients))
	for _, pass := range []bool{true, false} {
		for _, pf := range fixture.Patients {
			isFamily := pf.FileType == string(types.FileTypeFamily)
			if isFamily != pass {
				continue
			}

			patient, err := seedPatient(store, pf, refs)
			if err != nil {
				return summary, fmt.Errorf("seed patient %q: %w", pf.Ref, err)
			}
			refs[pf.Ref] = patient.ID
			summary.Patients++

			if pf.Vitals != nil {
				if _, err := store.RecordVitals(patient.ID, *pf.Vitals); err != nil {
					return summary, fmt.Errorf("seed vitals for %q: %w", pf.Ref, err)
				}
			}
		}
	}

	for _, af := range fixture.Appointments {
		patientID, ok := refs[af.PatientRef]
		if !ok {
			return summary, fmt.Errorf("seed appointment references unknown patient %q", af.PatientRef)
		}
		_, err := store.AddAppointment(&types.AppointmentInput{
			PatientID:  patientID,
			DoctorID:   af.DoctorID,
			DoctorName: af.DoctorName,
			Department: af.Department,
			Date:       af.Date,
			Time:       af.Time,
			Priority:   types.AppointmentPriority(af.Priority),
			Notes:      af.Notes,
		})
		if err != nil {
			return summary, fmt.Errorf("seed appointment for %q: %w", af.PatientRef, err)
		}
		summary.Appointments++
	}

	for _, inf := range fixture.Invoices {
		patientID, ok := refs[inf.PatientRef]
		if !ok {
			return summary, fmt.Errorf("seed invoice references unknown patient %q", inf.PatientRef)
		}
		_, err := store.AddInvoice(&types.InvoiceInput{
			PatientID:     patientID,
			InvoiceType:   inf.InvoiceType,
			Amount:        inf.Amount,
			AmountPaid:    inf.AmountPaid,
			PaymentMethod: inf.PaymentMethod,
		})
		if err != nil {
			return summary, fmt.Errorf("seed invoice for %q: %w", inf.PatientRef, err)
		}
		summary.Invoices++
	}

	log.WithFields(map[string]interface{}{
		"patients":     summary.Patients,
		"appointments": summary.Appointments,
		"invoices":     summary.Invoices,
	}).Info("Seed data loaded")
	return summary, nil
}

func seedPatient(store interfaces.RecordStore, pf PatientFixture, refs map[string]string) (*types.Patient, error) {
	dob, err := time.Parse("2006-01-02", pf.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("invalid date_of_birth %q: %w", pf.DateOfBirth, err)
	}

	parentFileID := ""
	if pf.ParentRef != "" {
		id, ok := refs[pf.ParentRef]
		if !ok {
			return nil, fmt.Errorf("unknown parent_ref %q", pf.ParentRef)
		}
		parentFileID = id
	}

	return store.AddPatient(&types.PatientInput{
		FileType:     types.FileType(pf.FileType),
		ParentFileID: parentFileID,
		FirstName:    pf.FirstName,
		LastName:     pf.LastName,
		Gender:       pf.Gender,
		DateOfBirth:  dob,
		PhoneNumber:  pf.PhoneNumber,
		Address:      pf.Address,
		PatientType:  types.PatientType(pf.PatientType),
		IsNHIS:       pf.IsNHIS,
		NHISNumber:   pf.NHISNumber,
	})
}
