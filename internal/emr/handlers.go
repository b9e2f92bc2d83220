package emr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/internal/workflow"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/monitoring"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
	"github.com/gorilla/mux"
)

// setupRoutes configures HTTP routes for the EMR service
func (s *Service) setupRoutes(router *mux.Router) {
	api := router.PathPrefix("/api/v1").Subrouter()

	// Patient routes
	api.HandleFunc("/patients", s.listPatientsHandler).Methods("GET")
	api.HandleFunc("/patients", s.addPatientHandler).Methods("POST")
	api.HandleFunc("/patients/{id}", s.getPatientHandler).Methods("GET")
	api.HandleFunc("/patients/{id}", s.updatePatientHandler).Methods("PUT")
	api.HandleFunc("/patients/{id}", s.deletePatientHandler).Methods("DELETE")
	api.HandleFunc("/patients/{id}/deceased", s.markDeceasedHandler).Methods("POST")
	api.HandleFunc("/patients/{id}/vitals", s.recordVitalsHandler).Methods("POST")

	// Appointment routes
	api.HandleFunc("/appointments", s.listAppointmentsHandler).Methods("GET")
	api.HandleFunc("/appointments", s.addAppointmentHandler).Methods("POST")
	api.HandleFunc("/appointments/{id}", s.getAppointmentHandler).Methods("GET")
	api.HandleFunc("/appointments/{id}", s.updateAppointmentHandler).Methods("PUT")
	api.HandleFunc("/appointments/{id}/complete", s.completeConsultationHandler).Methods("POST")

	// Billing routes
	api.HandleFunc("/invoices", s.listInvoicesHandler).Methods("GET")
	api.HandleFunc("/invoices", s.addInvoiceHandler).Methods("POST")
	api.HandleFunc("/invoices/{id}", s.getInvoiceHandler).Methods("GET")
	api.HandleFunc("/invoices/{id}", s.updateInvoiceHandler).Methods("PUT")

	// Notification and audit routes
	api.HandleFunc("/notifications", s.listNotificationsHandler).Methods("GET")
	api.HandleFunc("/notifications/{id}/read", s.markNotificationReadHandler).Methods("POST")
	api.HandleFunc("/activity-log", s.listActivityLogHandler).Methods("GET")

	// Settings routes
	api.HandleFunc("/settings", s.getSettingsHandler).Methods("GET")
	api.HandleFunc("/settings", s.updateSettingsHandler).Methods("PUT")
	api.HandleFunc("/settings/export", s.exportSettingsHandler).Methods("GET")

	// Clinical workflow routes
	api.HandleFunc("/workflow/admit", s.admitPatientHandler).Methods("POST")
	api.HandleFunc("/workflow/refer", s.referPatientHandler).Methods("POST")
	api.HandleFunc("/workflow/surgery", s.requestSurgeryHandler).Methods("POST")

	// Operational routes
	router.HandleFunc(s.config.Monitoring.HealthPath, monitoring.HealthHandler("emr-service", func() map[string]interface{} {
		return map[string]interface{}{
			"patients":     len(s.store.ListPatients()),
			"appointments": len(s.store.ListAppointments()),
		}
	})).Methods("GET")
	if s.config.Monitoring.Enabled {
		router.Handle(s.config.Monitoring.MetricsPath, monitoring.MetricsHandler()).Methods("GET")
	}

	s.logger.Info("EMR service routes configured")
}

func (s *Service) listPatientsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSONResponse(w, http.StatusOK, s.store.ListPatients())
}

func (s *Service) addPatientHandler(w http.ResponseWriter, r *http.Request) {
	var input types.PatientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	patient, err := s.store.AddPatient(&input)
	if err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusCreated, patient)
}

func (s *Service) getPatientHandler(w http.ResponseWriter, r *http.Request) {
	patient, err := s.store.GetPatient(mux.Vars(r)["id"])
	if err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusOK, patient)
}

func (s *Service) updatePatientHandler(w http.ResponseWriter, r *http.Request) {
	var updates types.PatientUpdates
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	patient, err := s.store.UpdatePatient(mux.Vars(r)["id"], &updates)
	if err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusOK, patient)
}

func (s *Service) deletePatientHandler(w http.ResponseWriter, r *http.Request) {
	reason := r.URL.Query().Get("reason")
	user := r.URL.Query().Get("user")
	if reason == "" || user == "" {
		s.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput,
			"reason and user query parameters are required", nil))
		return
	}

	if err := s.store.DeletePatient(mux.Vars(r)["id"], reason, user); err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// markDeceasedRequest carries the deceased-marking payload
type markDeceasedRequest struct {
	workflow.DeceasedRequest
	Actor workflow.Actor `json:"actor"`
}

func (s *Service) markDeceasedHandler(w http.ResponseWriter, r *http.Request) {
	var req markDeceasedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	if err := s.engine.MarkDeceased(mux.Vars(r)["id"], req.DeceasedRequest, req.Actor); err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) recordVitalsHandler(w http.ResponseWriter, r *http.Request) {
	var vitals types.Vitals
	if err := json.NewDecoder(r.Body).Decode(&vitals); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	patient, err := s.store.RecordVitals(mux.Vars(r)["id"], vitals)
	if err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusOK, patient)
}

func (s *Service) listAppointmentsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSONResponse(w, http.StatusOK, s.store.ListAppointments())
}

func (s *Service) addAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	var input types.AppointmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	apt, err := s.store.AddAppointment(&input)
	if err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusCreated, apt)
}

func (s *Service) getAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	apt, err := s.store.GetAppointment(mux.Vars(r)["id"])
	if err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusOK, apt)
}

func (s *Service) updateAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	var updates types.AppointmentUpdates
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	apt, err := s.store.UpdateAppointment(mux.Vars(r)["id"], &updates)
	if err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusOK, apt)
}

// actorRequest carries just an actor payload
type actorRequest struct {
	Actor workflow.Actor `json:"actor"`
}

func (s *Service) completeConsultationHandler(w http.ResponseWriter, r *http.Request) {
	var req actorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	if err := s.engine.FinishConsultation(mux.Vars(r)["id"], req.Actor); err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) listInvoicesHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSONResponse(w, http.StatusOK, s.store.ListInvoices())
}

func (s *Service) addInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	var input types.InvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	inv, err := s.store.AddInvoice(&input)
	if err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusCreated, inv)
}

func (s *Service) getInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	inv, err := s.store.GetInvoice(mux.Vars(r)["id"])
	if err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusOK, inv)
}

func (s *Service) updateInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	var updates types.InvoiceUpdates
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	inv, err := s.store.UpdateInvoice(mux.Vars(r)["id"], &updates)
	if err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusOK, inv)
}

func (s *Service) listNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSONResponse(w, http.StatusOK, s.store.ListNotifications())
}

func (s *Service) markNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.MarkNotificationRead(mux.Vars(r)["id"]); err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) listActivityLogHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSONResponse(w, http.StatusOK, s.store.ListActivityLog())
}

func (s *Service) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSONResponse(w, http.StatusOK, s.store.Settings())
}

func (s *Service) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var updates types.SettingsUpdates
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		s.writeDecodeError(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusOK, s.store.UpdateSettings(&updates))
}

func (s *Service) exportSettingsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="settings-export.json"`)
	s.writeJSONResponse(w, http.StatusOK, s.store.SettingsSnapshot())
}

// admitRequest carries the admission-request payload
type admitRequest struct {
	PatientID string         `json:"patient_id"`
	Note      string         `json:"note,omitempty"`
	Actor     workflow.Actor `json:"actor"`
}

func (s *Service) admitPatientHandler(w http.ResponseWriter, r *http.Request) {
	var req admitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	n, err := s.engine.AdmitPatient(req.PatientID, req.Note, req.Actor)
	if err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusCreated, n)
}

// referRequest carries the referral payload
type referRequest struct {
	PatientID   string                    `json:"patient_id"`
	Destination string                    `json:"destination"`
	Priority    types.AppointmentPriority `json:"priority"`
	Actor       workflow.Actor            `json:"actor"`
}

func (s *Service) referPatientHandler(w http.ResponseWriter, r *http.Request) {
	var req referRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	n, err := s.engine.ReferPatient(req.PatientID, req.Destination, req.Priority, req.Actor)
	if err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusCreated, n)
}

// surgeryRequest carries the surgery-request payload
type surgeryRequest struct {
	PatientID string                    `json:"patient_id"`
	Procedure string                    `json:"procedure"`
	Urgency   types.AppointmentPriority `json:"urgency"`
	Actor     workflow.Actor            `json:"actor"`
}

func (s *Service) requestSurgeryHandler(w http.ResponseWriter, r *http.Request) {
	var req surgeryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	n, err := s.engine.RequestSurgery(req.PatientID, req.Procedure, req.Urgency, req.Actor)
	if err != nil {
		s.writeErrorResponse(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusCreated, n)
}

// errorResponse is the error body returned to the dashboards
type errorResponse struct {
	Type    types.ErrorType        `json:"type"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// writeErrorResponse maps the core's error taxonomy onto HTTP status
// codes: validation 400, not found 404, referential 422, invariant
// 409, anything else 500.
func (s *Service) writeErrorResponse(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := errorResponse{
		Type:    types.ErrorTypeInternal,
		Code:    types.ErrCodeInternalError,
		Message: err.Error(),
	}

	var emrErr *types.EMRError
	if errors.As(err, &emrErr) {
		body = errorResponse{
			Type:    emrErr.Type,
			Code:    emrErr.Code,
			Message: emrErr.Message,
			Details: emrErr.Details,
		}
		switch emrErr.Type {
		case types.ErrorTypeValidation:
			status = http.StatusBadRequest
		case types.ErrorTypeNotFound:
			status = http.StatusNotFound
		case types.ErrorTypeReferential:
			status = http.StatusUnprocessableEntity
		case types.ErrorTypeInvariant:
			status = http.StatusConflict
		}
	}

	if status == http.StatusInternalServerError {
		s.logger.WithError(err).Error("Unexpected error handling request")
	}
	s.writeJSONResponse(w, status, body)
}

func (s *Service) writeDecodeError(w http.ResponseWriter, err error) {
	s.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput,
		"invalid request body: "+err.Error(), nil))
}

func (s *Service) writeJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("Failed to encode response")
	}
}
