package service

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/model"
)

var trackingIDPattern = regexp.MustCompile(`^APP-\d{8}-[A-F0-9]{6}$`)

func newApplicationApp(t *testing.T) (*fiber.App, *fakeApplicationRepo, *fakeTrackingRepo) {
	t.Helper()

	apps := newFakeApplicationRepo()
	trackings := &fakeTrackingRepo{}
	svc := NewApplicationService(apps, trackings)

	app := fiber.New()
	app.Post("/application", svc.Create)
	app.Get("/application", svc.List)
	app.Get("/application/:id", svc.Get)
	app.Patch("/application/feedback/:id", svc.UpdateFeedback)
	app.Patch("/application/:id", svc.Patch)
	app.Delete("/application/:id", svc.Delete)
	app.Patch("/rolemoderator/:id", svc.Moderate)
	return app, apps, trackings
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestCreateApplication(t *testing.T) {
	app, apps, trackings := newApplicationApp(t)

	resp, raw := doJSON(t, app, "POST", "/application", map[string]interface{}{
		"scholarshipId":  "s1",
		"userId":         "u1",
		"userName":       "A",
		"userEmail":      "a@x.com",
		"universityName": "MIT",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.ApplicationCreatedResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	require.True(t, created.Success)
	require.Regexp(t, trackingIDPattern, created.TrackingID)

	require.True(t, trackings.has(created.TrackingID, "apply_created"))

	require.Len(t, apps.apps, 1)
	for _, stored := range apps.apps {
		require.Equal(t, model.ApplicationPending, stored.ApplicationStatus)
		require.Equal(t, model.PaymentUnpaid, stored.PaymentStatus)
		require.Equal(t, created.TrackingID, stored.TrackingID)
	}
}

func TestCreateApplicationMissingFields(t *testing.T) {
	app, apps, _ := newApplicationApp(t)

	resp, _ := doJSON(t, app, "POST", "/application", map[string]interface{}{
		"scholarshipId": "s1",
		"userName":      "A",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Empty(t, apps.apps)
}

func TestListApplicationsFilteredByEmail(t *testing.T) {
	app, apps, _ := newApplicationApp(t)

	base := time.Now()
	seed := []model.Application{
		{UserEmail: "a@x.com", ApplicationStatus: model.ApplicationPending, ApplicationDate: base.Add(-2 * time.Hour), TrackingID: "APP-20260901-AAAAAA"},
		{UserEmail: "b@x.com", ApplicationStatus: model.ApplicationPending, ApplicationDate: base.Add(-1 * time.Hour), TrackingID: "APP-20260901-BBBBBB"},
		{UserEmail: "a@x.com", ApplicationStatus: model.ApplicationApproved, ApplicationDate: base, TrackingID: "APP-20260901-CCCCCC"},
	}
	for i := range seed {
		_, err := apps.Insert(nil, &seed[i])
		require.NoError(t, err)
	}

	resp, raw := doJSON(t, app, "GET", "/application?email=a@x.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed model.SuccessResponse[[]model.Application]
	require.NoError(t, json.Unmarshal(raw, &listed))
	require.Len(t, listed.Data, 2)
	for _, application := range listed.Data {
		require.Equal(t, "a@x.com", application.UserEmail)
	}
	require.True(t, listed.Data[0].ApplicationDate.After(listed.Data[1].ApplicationDate))
}

func TestModerateApproval(t *testing.T) {
	app, apps, trackings := newApplicationApp(t)

	pending := model.Application{
		UserEmail:         "a@x.com",
		ApplicationStatus: model.ApplicationPending,
		ApplicationDate:   time.Now(),
		TrackingID:        "APP-20260901-ABC123",
	}
	id, err := apps.Insert(nil, &pending)
	require.NoError(t, err)

	resp, _ := doJSON(t, app, "PATCH", "/rolemoderator/"+id, map[string]interface{}{
		"action":     "approved",
		"feedback":   "ok",
		"trackingId": pending.TrackingID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stored := apps.apps[pending.ID]
	require.Equal(t, model.ApplicationApproved, stored.ApplicationStatus)
	require.Equal(t, "ok", stored.Feedback)
	require.True(t, trackings.has(pending.TrackingID, "apply-approved"))
}

func TestModerateCancel(t *testing.T) {
	app, apps, trackings := newApplicationApp(t)

	pending := model.Application{
		ApplicationStatus: model.ApplicationPending,
		ApplicationDate:   time.Now(),
		TrackingID:        "APP-20260901-DEF456",
	}
	id, err := apps.Insert(nil, &pending)
	require.NoError(t, err)

	resp, _ := doJSON(t, app, "PATCH", "/rolemoderator/"+id, map[string]interface{}{
		"action":   "cancel",
		"feedback": "incomplete documents",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, model.ApplicationRejected, apps.apps[pending.ID].ApplicationStatus)
	require.True(t, trackings.has(pending.TrackingID, "apply-canceled"))
}

func TestModerateUnknownActionRejected(t *testing.T) {
	app, apps, _ := newApplicationApp(t)

	pending := model.Application{ApplicationStatus: model.ApplicationPending, ApplicationDate: time.Now()}
	id, err := apps.Insert(nil, &pending)
	require.NoError(t, err)

	resp, _ := doJSON(t, app, "PATCH", "/rolemoderator/"+id, map[string]interface{}{"action": "promote"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, model.ApplicationPending, apps.apps[pending.ID].ApplicationStatus)
}

func TestModerateDecidedApplicationConflicts(t *testing.T) {
	app, apps, _ := newApplicationApp(t)

	approved := model.Application{ApplicationStatus: model.ApplicationApproved, ApplicationDate: time.Now()}
	id, err := apps.Insert(nil, &approved)
	require.NoError(t, err)

	resp, _ := doJSON(t, app, "PATCH", "/rolemoderator/"+id, map[string]interface{}{"action": "cancel"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, model.ApplicationApproved, apps.apps[approved.ID].ApplicationStatus)
}

func TestPatchAllowList(t *testing.T) {
	app, apps, _ := newApplicationApp(t)

	pending := model.Application{
		ApplicationStatus: model.ApplicationPending,
		PaymentStatus:     model.PaymentUnpaid,
		ApplicationDate:   time.Now(),
		TrackingID:        "APP-20260901-0A0A0A",
	}
	id, err := apps.Insert(nil, &pending)
	require.NoError(t, err)

	// Protected fields are rejected outright.
	resp, _ := doJSON(t, app, "PATCH", "/application/"+id, map[string]interface{}{"paymentStatus": "paid"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, model.PaymentUnpaid, apps.apps[pending.ID].PaymentStatus)

	resp, _ = doJSON(t, app, "PATCH", "/application/"+id, map[string]interface{}{"trackingId": "APP-20260901-FFFFFF"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "APP-20260901-0A0A0A", apps.apps[pending.ID].TrackingID)

	// Allow-listed fields go through; empty strings are stripped.
	resp, _ = doJSON(t, app, "PATCH", "/application/"+id, map[string]interface{}{
		"degree":          "Masters",
		"universityName":  "",
		"applicationFees": 75,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Masters", apps.apps[pending.ID].Degree)
	require.Equal(t, 75.0, apps.apps[pending.ID].ApplicationFees)

	// A patch that strips down to nothing is a bad request.
	resp, _ = doJSON(t, app, "PATCH", "/application/"+id, map[string]interface{}{"degree": ""})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateFeedback(t *testing.T) {
	app, apps, _ := newApplicationApp(t)

	pending := model.Application{ApplicationStatus: model.ApplicationPending, ApplicationDate: time.Now()}
	id, err := apps.Insert(nil, &pending)
	require.NoError(t, err)

	resp, _ := doJSON(t, app, "PATCH", "/application/feedback/"+id, map[string]interface{}{"feedback": ""})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "PATCH", "/application/feedback/"+id, map[string]interface{}{"feedback": "please attach transcript"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "please attach transcript", apps.apps[pending.ID].Feedback)

	resp, _ = doJSON(t, app, "PATCH", "/application/feedback/658aa0000000000000000000", map[string]interface{}{"feedback": "x"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteApplication(t *testing.T) {
	app, apps, _ := newApplicationApp(t)

	pending := model.Application{ApplicationStatus: model.ApplicationPending, ApplicationDate: time.Now()}
	id, err := apps.Insert(nil, &pending)
	require.NoError(t, err)

	resp, _ := doJSON(t, app, "DELETE", "/application/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, apps.apps)

	resp, _ = doJSON(t, app, "DELETE", "/application/"+id, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/application/not-an-id", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
