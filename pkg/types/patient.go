package types

import "time"

// FileType distinguishes household accounts from single-person records
type FileType string

const (
	FileTypeIndividual FileType = "individual"
	FileTypeFamily     FileType = "family"
)

// PatientType represents the admission class of a patient
type PatientType string

const (
	PatientTypeInpatient  PatientType = "inpatient"
	PatientTypeOutpatient PatientType = "outpatient"
)

// PatientStatus represents patient status values
type PatientStatus string

const (
	PatientStatusActive     PatientStatus = "active"
	PatientStatusAdmitted   PatientStatus = "admitted"
	PatientStatusICU        PatientStatus = "icu"
	PatientStatusDischarged PatientStatus = "discharged"
)

// Patient represents a patient file held by the record store.
// FullName, Age, BMI and BMIClass are derived on read and never stored
// as authoritative values.
type Patient struct {
	ID           string   `json:"id"`
	FileType     FileType `json:"file_type"`
	ParentFileID string   `json:"parent_file_id,omitempty"`

	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	Gender      string    `json:"gender"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Age         int       `json:"age"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`

	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`

	PatientType PatientType   `json:"patient_type"`
	Status      PatientStatus `json:"status"`

	IsDead       bool      `json:"is_dead"`
	DateOfDeath  time.Time `json:"date_of_death,omitempty"`
	CauseOfDeath string    `json:"cause_of_death,omitempty"`
	DeathRemarks string    `json:"death_remarks,omitempty"`

	IsNHIS       bool   `json:"is_nhis"`
	NHISNumber   string `json:"nhis_number,omitempty"`
	NHISProvider string `json:"nhis_provider,omitempty"`

	Vitals *Vitals `json:"vitals,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Vitals represents the most recent nursing vitals capture for a patient.
// Vitals are written by nursing only; the consultation flow reads them.
type Vitals struct {
	HeightCm      float64   `json:"height_cm"`
	WeightKg      float64   `json:"weight_kg"`
	BloodPressure string    `json:"blood_pressure"`
	TemperatureC  float64   `json:"temperature_c"`
	Pulse         int       `json:"pulse"`
	BMI           float64   `json:"bmi"`
	BMIClass      string    `json:"bmi_class"`
	RecordedBy    string    `json:"recorded_by"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// PatientInput carries caller-supplied fields for patient registration.
// Identity, derived fields and timestamps are assigned by the store.
type PatientInput struct {
	FileType     FileType `json:"file_type"`
	ParentFileID string   `json:"parent_file_id,omitempty"`

	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Gender      string    `json:"gender"`
	DateOfBirth time.Time `json:"date_of_birth"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Address     string    `json:"address,omitempty"`

	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`

	PatientType PatientType `json:"patient_type,omitempty"`

	IsNHIS       bool   `json:"is_nhis,omitempty"`
	NHISNumber   string `json:"nhis_number,omitempty"`
	NHISProvider string `json:"nhis_provider,omitempty"`
}

// PatientUpdates represents a partial update to a patient file. Nil
// fields are left untouched.
type PatientUpdates struct {
	FileType     *FileType `json:"file_type,omitempty"`
	ParentFileID *string   `json:"parent_file_id,omitempty"`

	FirstName   *string    `json:"first_name,omitempty"`
	LastName    *string    `json:"last_name,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	Address     *string    `json:"address,omitempty"`

	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`

	PatientType *PatientType   `json:"patient_type,omitempty"`
	Status      *PatientStatus `json:"status,omitempty"`

	IsNHIS       *bool   `json:"is_nhis,omitempty"`
	NHISNumber   *string `json:"nhis_number,omitempty"`
	NHISProvider *string `json:"nhis_provider,omitempty"`
}
