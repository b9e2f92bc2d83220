package emr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/internal/workflow"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/config"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/logger"
	"github.com/MubarakAliyu/Godiyahospitalwebappnew-sub001/pkg/types"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Identity: config.IdentityConfig{
			PatientPrefix: "GH-PT-",
			PatientStart:  1,
			ReceiptPrefix: "GH-RCT-",
			ReceiptStart:  1,
		},
		Monitoring: config.MonitoringConfig{
			Enabled:     false,
			HealthPath:  "/health",
			MetricsPath: "/metrics",
		},
	}
}

func workflowActor() workflow.Actor {
	return workflow.Actor{Name: "Dr. Yaa Asantewaa", Role: "doctor"}
}

func dob(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) (*Service, *mux.Router) {
	t.Helper()
	svc, err := New(testConfig(), logger.New("error"))
	require.NoError(t, err)

	router := mux.NewRouter()
	svc.setupRoutes(router)
	return svc, router
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rr.Body).Decode(out))
}

func TestPatientLifecycleOverHTTP(t *testing.T) {
	_, router := newTestService(t)

	rr := doJSON(t, router, "POST", "/api/v1/patients", types.PatientInput{
		FirstName:   "Aisha",
		LastName:    "Mohammed",
		DateOfBirth: dob(1995, 3, 14),
		Gender:      "female",
		FileType:    types.FileTypeIndividual,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created types.Patient
	decodeBody(t, rr, &created)
	assert.Regexp(t, `^GH-PT-\d{5}$`, created.ID)
	assert.Equal(t, "Aisha Mohammed", created.FullName)

	rr = doJSON(t, router, "GET", "/api/v1/patients/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	newPhone := "0244000000"
	rr = doJSON(t, router, "PUT", "/api/v1/patients/"+created.ID, types.PatientUpdates{PhoneNumber: &newPhone})
	require.Equal(t, http.StatusOK, rr.Code)
	var updated types.Patient
	decodeBody(t, rr, &updated)
	assert.Equal(t, newPhone, updated.PhoneNumber)

	rr = doJSON(t, router, "DELETE",
		fmt.Sprintf("/api/v1/patients/%s?reason=duplicate+record&user=frontdesk", created.ID), nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, router, "GET", "/api/v1/patients/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestErrorTaxonomyStatusCodes(t *testing.T) {
	svc, router := newTestService(t)

	// validation -> 400
	rr := doJSON(t, router, "POST", "/api/v1/patients", types.PatientInput{FirstName: "NoLastName"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var body struct {
		Type types.ErrorType `json:"type"`
		Code string          `json:"code"`
	}
	decodeBody(t, rr, &body)
	assert.Equal(t, types.ErrorTypeValidation, body.Type)

	// not found -> 404
	rr = doJSON(t, router, "GET", "/api/v1/patients/GH-PT-99999", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// referential -> 422
	rr = doJSON(t, router, "POST", "/api/v1/appointments", types.AppointmentInput{
		PatientID:  "GH-PT-99999",
		DoctorID:   "DOC-001",
		DoctorName: "Dr. Owusu",
		Department: "General Medicine",
		Date:       "2025-07-01",
		Time:       "10:00",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	decodeBody(t, rr, &body)
	assert.Equal(t, types.ErrCodeUnknownPatient, body.Code)

	// invariant -> 409
	p, err := svc.Store().AddPatient(&types.PatientInput{
		FirstName:   "Kwame",
		LastName:    "Mensah",
		DateOfBirth: dob(1980, 1, 1),
		Gender:      "male",
		FileType:    types.FileTypeIndividual,
	})
	require.NoError(t, err)
	rr = doJSON(t, router, "POST", "/api/v1/invoices", types.InvoiceInput{
		PatientID:   p.ID,
		InvoiceType: "Lab work",
		Amount:      100,
		AmountPaid:  250,
	})
	assert.Equal(t, http.StatusConflict, rr.Code)

	// malformed JSON -> 400
	req := httptest.NewRequest("POST", "/api/v1/patients", bytes.NewBufferString("{not json"))
	raw := httptest.NewRecorder()
	router.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)
}

func TestWorkflowRoutes(t *testing.T) {
	svc, router := newTestService(t)

	p, err := svc.Store().AddPatient(&types.PatientInput{
		FirstName:   "Abena",
		LastName:    "Sarpong",
		DateOfBirth: dob(1990, 5, 2),
		Gender:      "female",
		FileType:    types.FileTypeIndividual,
	})
	require.NoError(t, err)

	rr := doJSON(t, router, "POST", "/api/v1/workflow/refer", referRequest{
		PatientID:   p.ID,
		Destination: "Korle Bu Teaching Hospital",
		Priority:    types.PriorityCritical,
		Actor:       workflowActor(),
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var n types.Notification
	decodeBody(t, rr, &n)
	assert.Equal(t, types.ModuleNurseReferrals, n.Module)
	assert.Equal(t, types.NotificationError, n.Type)
	assert.True(t, n.Unread)

	rr = doJSON(t, router, "POST", "/api/v1/notifications/"+n.ID+"/read", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// missing actor -> 400
	rr = doJSON(t, router, "POST", "/api/v1/workflow/admit", admitRequest{PatientID: p.ID})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSettingsRoutes(t *testing.T) {
	_, router := newTestService(t)

	rr := doJSON(t, router, "GET", "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var settings types.Settings
	decodeBody(t, rr, &settings)
	assert.Equal(t, "Godiya Hospital", settings.General.HospitalName)

	settings.General.HospitalName = "Godiya Specialist Hospital"
	rr = doJSON(t, router, "PUT", "/api/v1/settings", types.SettingsUpdates{General: &settings.General})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, "GET", "/api/v1/settings/export", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "settings-export.json")
	decodeBody(t, rr, &settings)
	assert.Equal(t, "Godiya Specialist Hospital", settings.General.HospitalName)
}

func TestHealthEndpoint(t *testing.T) {
	_, router := newTestService(t)

	rr := doJSON(t, router, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var report map[string]interface{}
	decodeBody(t, rr, &report)
	assert.Equal(t, "healthy", report["status"])
	assert.Equal(t, "emr-service", report["service"])
}
