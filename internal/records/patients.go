package records

import (
	"fmt"
	"time"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/internal/identity"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/monitoring"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
)

// AddPatient registers a new patient file. Required demographic fields
// are validated, the file number is assigned from the monotonic
// sequence, and the family-hierarchy invariant is checked before
// anything is written. The returned record carries the derived fields.
func (s *Store) AddPatient(input *types.PatientInput) (*types.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validatePatientInput(input); err != nil {
		monitoring.RecordStoreMutation("patient", "add", "error")
		return nil, err
	}

	if input.FileType == types.FileTypeIndividual && input.ParentFileID != "" {
		if err := s.checkFamilyFile(input.ParentFileID); err != nil {
			monitoring.RecordStoreMutation("patient", "add", "error")
			return nil, err
		}
	}

	now := s.now()
	patientType := input.PatientType
	if patientType == "" {
		patientType = types.PatientTypeOutpatient
	}

	p := &types.Patient{
		ID:                    s.gen.NextPatientID(),
		FileType:              input.FileType,
		ParentFileID:          input.ParentFileID,
		FirstName:             input.FirstName,
		LastName:              input.LastName,
		Gender:                input.Gender,
		DateOfBirth:           input.DateOfBirth,
		PhoneNumber:           input.PhoneNumber,
		Address:               input.Address,
		EmergencyContactName:  input.EmergencyContactName,
		EmergencyContactPhone: input.EmergencyContactPhone,
		PatientType:           patientType,
		Status:                types.PatientStatusActive,
		IsNHIS:                input.IsNHIS,
		NHISNumber:            input.NHISNumber,
		NHISProvider:          input.NHISProvider,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	s.patients[p.ID] = p
	s.patientOrder = append(s.patientOrder, p.ID)

	s.logger.WithPatientID(p.ID).Info("Patient registered")
	monitoring.RecordStoreMutation("patient", "add", "ok")
	return s.patientView(p), nil
}

// UpdatePatient merges a partial update over an existing patient file.
// The family-hierarchy invariant is re-validated whenever the file type
// or the parent file link changes. Denormalized name snapshots on
// appointments and invoices are left as they were recorded.
func (s *Store) UpdatePatient(id string, updates *types.PatientUpdates) (*types.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[id]
	if !ok {
		monitoring.RecordStoreMutation("patient", "update", "error")
		return nil, types.NewNotFoundError(types.ErrCodeNotFound, "patient not found: "+id)
	}

	// Resolve the hierarchy fields the update would produce and check
	// them before applying anything.
	fileType := p.FileType
	if updates.FileType != nil {
		fileType = *updates.FileType
	}
	parentFileID := p.ParentFileID
	if updates.ParentFileID != nil {
		parentFileID = *updates.ParentFileID
	}

	if fileType != p.FileType || parentFileID != p.ParentFileID {
		if err := s.checkHierarchyChange(p, fileType, parentFileID); err != nil {
			monitoring.RecordStoreMutation("patient", "update", "error")
			return nil, err
		}
	}

	p.FileType = fileType
	p.ParentFileID = parentFileID
	if updates.FirstName != nil {
		p.FirstName = *updates.FirstName
	}
	if updates.LastName != nil {
		p.LastName = *updates.LastName
	}
	if updates.Gender != nil {
		p.Gender = *updates.Gender
	}
	if updates.DateOfBirth != nil {
		p.DateOfBirth = *updates.DateOfBirth
	}
	if updates.PhoneNumber != nil {
		p.PhoneNumber = *updates.PhoneNumber
	}
	if updates.Address != nil {
		p.Address = *updates.Address
	}
	if updates.EmergencyContactName != nil {
		p.EmergencyContactName = *updates.EmergencyContactName
	}
	if updates.EmergencyContactPhone != nil {
		p.EmergencyContactPhone = *updates.EmergencyContactPhone
	}
	if updates.PatientType != nil {
		p.PatientType = *updates.PatientType
	}
	if updates.Status != nil {
		p.Status = *updates.Status
	}
	if updates.IsNHIS != nil {
		p.IsNHIS = *updates.IsNHIS
	}
	if updates.NHISNumber != nil {
		p.NHISNumber = *updates.NHISNumber
	}
	if updates.NHISProvider != nil {
		p.NHISProvider = *updates.NHISProvider
	}
	p.UpdatedAt = s.now()

	monitoring.RecordStoreMutation("patient", "update", "ok")
	return s.patientView(p), nil
}

// DeletePatient removes a patient file and cascades over everything
// that references it: the patient's appointments and invoices, and for
// a family file all individual files linked to it (one level; family
// files cannot nest). Each cascade removal is recorded in the activity
// log alongside the primary action, all carrying the caller's reason.
func (s *Store) DeletePatient(id, reason, user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[id]
	if !ok {
		monitoring.RecordStoreMutation("patient", "delete", "error")
		return types.NewNotFoundError(types.ErrCodeNotFound, "patient not found: "+id)
	}

	removed := []string{id}
	if p.FileType == types.FileTypeFamily {
		for _, depID := range s.patientOrder {
			dep := s.patients[depID]
			if dep.ParentFileID == id {
				removed = append(removed, depID)
			}
		}
	}

	for _, pid := range removed[1:] {
		dep := s.patients[pid]
		s.removePatientRecord(pid, reason, user)
		s.appendActivityLocked(
			fmt.Sprintf("Removed dependent file %s (%s) in cascade: %s", pid, identity.FullName(dep.FirstName, dep.LastName), reason),
			"records", user, "trash")
	}

	name := identity.FullName(p.FirstName, p.LastName)
	s.removePatientRecord(id, reason, user)
	s.appendActivityLocked(
		fmt.Sprintf("Deleted patient file %s (%s): %s", id, name, reason),
		"records", user, "trash")

	s.logger.Audit(user, "delete_patient", id, true, map[string]interface{}{
		"reason":  reason,
		"removed": len(removed),
	})
	monitoring.RecordStoreMutation("patient", "delete", "ok")
	return nil
}

// removePatientRecord removes one patient plus its appointments and
// invoices, logging one activity entry per removed dependent record,
// all carrying the caller's reason. Callers must hold the store lock.
func (s *Store) removePatientRecord(id, reason, user string) {
	for _, aptID := range s.appointmentOrder {
		apt, ok := s.appointments[aptID]
		if ok && apt.PatientID == id {
			delete(s.appointments, aptID)
			s.appendActivityLocked(
				fmt.Sprintf("Removed appointment on %s %s with %s for %s in cascade: %s",
					apt.Date, apt.Time, apt.DoctorName, id, reason),
				"records", user, "trash")
		}
	}
	s.appointmentOrder = filterOrder(s.appointmentOrder, s.appointmentExists)

	for _, invID := range s.invoiceOrder {
		inv, ok := s.invoices[invID]
		if ok && inv.PatientID == id {
			delete(s.invoices, invID)
			s.appendActivityLocked(
				fmt.Sprintf("Removed invoice %s (%s, GHS %.2f) for %s in cascade: %s",
					inv.ReceiptID, inv.InvoiceType, inv.Amount, id, reason),
				"records", user, "trash")
		}
	}
	s.invoiceOrder = filterOrder(s.invoiceOrder, s.invoiceExists)

	delete(s.patients, id)
	s.patientOrder = filterOrder(s.patientOrder, s.patientExists)
}

// MarkPatientAsDeceased flags a patient as deceased. The call is
// guarded rather than idempotent: marking an already deceased patient
// fails with ALREADY_DECEASED, and a date of death in the future fails
// with INVALID_DATE. Only the death fields change.
func (s *Store) MarkPatientAsDeceased(id string, dateOfDeath time.Time, causeOfDeath, remarks string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[id]
	if !ok {
		monitoring.RecordStoreMutation("patient", "mark_deceased", "error")
		return types.NewNotFoundError(types.ErrCodeNotFound, "patient not found: "+id)
	}

	if p.IsDead {
		monitoring.RecordStoreMutation("patient", "mark_deceased", "error")
		return types.NewInvariantError(types.ErrCodeAlreadyDeceased,
			"patient is already marked as deceased: "+id, nil)
	}

	if dateOfDeath.After(s.now()) {
		monitoring.RecordStoreMutation("patient", "mark_deceased", "error")
		return types.NewInvariantError(types.ErrCodeInvalidDate,
			"date of death cannot be in the future", map[string]interface{}{
				"date_of_death": dateOfDeath,
			})
	}

	p.IsDead = true
	p.DateOfDeath = dateOfDeath
	p.CauseOfDeath = causeOfDeath
	p.DeathRemarks = remarks

	s.logger.WithPatientID(id).Info("Patient marked as deceased")
	monitoring.RecordStoreMutation("patient", "mark_deceased", "ok")
	return nil
}

// RecordVitals stores a nursing vitals capture on the patient file.
// BMI fields are derived on read, not stored.
func (s *Store) RecordVitals(id string, vitals types.Vitals) (*types.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[id]
	if !ok {
		monitoring.RecordStoreMutation("patient", "record_vitals", "error")
		return nil, types.NewNotFoundError(types.ErrCodeNotFound, "patient not found: "+id)
	}

	if vitals.RecordedBy == "" {
		monitoring.RecordStoreMutation("patient", "record_vitals", "error")
		return nil, types.NewValidationError(types.ErrCodeInvalidInput,
			"recorded_by is required for vitals", nil)
	}

	if vitals.RecordedAt.IsZero() {
		vitals.RecordedAt = s.now()
	}
	p.Vitals = &vitals
	p.UpdatedAt = s.now()

	monitoring.RecordStoreMutation("patient", "record_vitals", "ok")
	return s.patientView(p), nil
}

// checkFamilyFile verifies that id names an existing family-type file.
// Callers must hold the store lock.
func (s *Store) checkFamilyFile(id string) error {
	parent, ok := s.patients[id]
	if !ok || parent.FileType != types.FileTypeFamily {
		return types.NewReferentialError(types.ErrCodeUnknownFamilyFile,
			"no family file with id "+id, map[string]interface{}{"parent_file_id": id})
	}
	return nil
}

// checkHierarchyChange validates a prospective file-type/parent change
// against the family hierarchy invariant. Callers must hold the store lock.
func (s *Store) checkHierarchyChange(p *types.Patient, fileType types.FileType, parentFileID string) error {
	if fileType == types.FileTypeFamily && parentFileID != "" {
		return types.NewValidationError(types.ErrCodeInvalidInput,
			"a family file cannot belong to another family file", nil)
	}

	if fileType == types.FileTypeIndividual && parentFileID != "" {
		if err := s.checkFamilyFile(parentFileID); err != nil {
			return err
		}
	}

	// A family file with linked dependents cannot be demoted while the
	// links exist.
	if p.FileType == types.FileTypeFamily && fileType == types.FileTypeIndividual {
		for _, depID := range s.patientOrder {
			if s.patients[depID].ParentFileID == p.ID {
				return types.NewReferentialError(types.ErrCodeUnknownFamilyFile,
					"file has linked dependents and cannot become an individual file",
					map[string]interface{}{"dependent": depID})
			}
		}
	}

	return nil
}

func validatePatientInput(input *types.PatientInput) error {
	missing := map[string]interface{}{}
	if input.FirstName == "" {
		missing["first_name"] = "required"
	}
	if input.LastName == "" {
		missing["last_name"] = "required"
	}
	if input.Gender == "" {
		missing["gender"] = "required"
	}
	if input.DateOfBirth.IsZero() {
		missing["date_of_birth"] = "required"
	}
	if len(missing) > 0 {
		return types.NewValidationError(types.ErrCodeInvalidInput,
			"missing required demographic fields", missing)
	}

	switch input.FileType {
	case types.FileTypeIndividual, types.FileTypeFamily:
	default:
		return types.NewValidationError(types.ErrCodeInvalidInput,
			"file type must be individual or family", map[string]interface{}{
				"file_type": string(input.FileType),
			})
	}

	if input.FileType == types.FileTypeFamily && input.ParentFileID != "" {
		return types.NewValidationError(types.ErrCodeInvalidInput,
			"a family file cannot belong to another family file", nil)
	}

	return nil
}

func (s *Store) patientExists(id string) bool     { _, ok := s.patients[id]; return ok }
func (s *Store) appointmentExists(id string) bool { _, ok := s.appointments[id]; return ok }
func (s *Store) invoiceExists(id string) bool     { _, ok := s.invoices[id]; return ok }

func filterOrder(order []string, keep func(string) bool) []string {
	out := order[:0]
	for _, id := range order {
		if keep(id) {
			out = append(out, id)
		}
	}
	return out
}
