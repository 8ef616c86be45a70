package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"petcare-companion/internal/adapters/storage/memory"
	"petcare-companion/internal/domain/dashboard"
	"petcare-companion/internal/domain/stats"
	"petcare-companion/internal/router"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, router.Options) {
	t.Helper()

	opts := router.Options{
		Pets:       memory.NewPetRepo(),
		Activities: memory.NewActivityRepo(),
		Health:     memory.NewHealthRepo(),
		Stats:      memory.NewStatsRepo(),
		Dashboard: dashboard.Placeholders{
			DailySteps:       12847,
			StepGoalProgress: 75,
		},
	}

	ts := httptest.NewServer(router.NewRouter(opts))
	t.Cleanup(ts.Close)
	return ts, opts
}

func TestHTTP_PetLifecycle(t *testing.T) {
	ts, _ := newTestServer(t)

	// Create with the minimum required fields.
	st, body := doReq(t, ts.URL, "POST", "/pets", map[string]any{
		"name":    "Bella",
		"species": "dog",
		"breed":   "Border Collie",
		"age":     3,
		"weight":  23,
	})
	require.Equal(t, http.StatusCreated, st, "body=%s", body)

	var created petBody
	require.NoError(t, json.Unmarshal(body, &created))
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, "Bella", created.Name)
	require.Equal(t, "healthy", created.HealthStatus, "healthStatus defaults to healthy")
	require.Nil(t, created.PhotoURL)
	require.Nil(t, created.NextCheckup)
	require.False(t, created.CreatedAt.IsZero())

	// Fetch it back.
	st, body = doReq(t, ts.URL, "GET", fmt.Sprintf("/pets/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, st, "body=%s", body)

	var fetched petBody
	require.NoError(t, json.Unmarshal(body, &fetched))
	require.Equal(t, created.ID, fetched.ID)

	// List includes it.
	st, body = doReq(t, ts.URL, "GET", "/pets", nil)
	require.Equal(t, http.StatusOK, st)

	var list []petBody
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)

	// Partial update touches only the supplied fields.
	st, body = doReq(t, ts.URL, "PUT", fmt.Sprintf("/pets/%d", created.ID), map[string]any{
		"age":          4,
		"healthStatus": "needs_attention",
	})
	require.Equal(t, http.StatusOK, st, "body=%s", body)

	var updated petBody
	require.NoError(t, json.Unmarshal(body, &updated))
	require.Equal(t, 4, updated.Age)
	require.Equal(t, "needs_attention", updated.HealthStatus)
	require.Equal(t, "Bella", updated.Name, "unsupplied fields keep their value")
	require.Equal(t, 23, updated.Weight)

	// Delete, then the pet is gone.
	st, body = doReq(t, ts.URL, "DELETE", fmt.Sprintf("/pets/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, st)
	require.JSONEq(t, `{"message":"Pet deleted successfully"}`, string(body))

	st, _ = doReq(t, ts.URL, "GET", fmt.Sprintf("/pets/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, st)

	st, _ = doReq(t, ts.URL, "DELETE", fmt.Sprintf("/pets/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, st, "second delete is a 404")
}

func TestHTTP_CreatePet_Validation(t *testing.T) {
	ts, _ := newTestServer(t)

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"missing name", map[string]any{
			"species": "dog", "breed": "mixed", "age": 1, "weight": 5,
		}},
		{"negative age", map[string]any{
			"name": "Max", "species": "dog", "breed": "mixed", "age": -1, "weight": 5,
		}},
		{"unknown health status", map[string]any{
			"name": "Max", "species": "dog", "breed": "mixed", "age": 1, "weight": 5,
			"healthStatus": "excellent",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, body := doReq(t, ts.URL, "POST", "/pets", tc.payload)
			require.Equal(t, http.StatusBadRequest, st, "body=%s", body)

			var errBody struct {
				Message string `json:"message"`
				Err     string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(body, &errBody))
			require.Equal(t, "Invalid pet data", errBody.Message)
			require.NotEmpty(t, errBody.Err)
		})
	}

	// Malformed JSON is rejected the same way.
	st, body := doReqRaw(t, ts.URL, "POST", "/pets", "application/json", strings.NewReader("{not json"))
	require.Equal(t, http.StatusBadRequest, st, "body=%s", body)
}

func TestHTTP_UpdatePet_Errors(t *testing.T) {
	ts, _ := newTestServer(t)

	st, _ := doReq(t, ts.URL, "PUT", "/pets/999", map[string]any{"name": "Ghost"})
	require.Equal(t, http.StatusNotFound, st)

	st, _ = doReq(t, ts.URL, "PUT", "/pets/abc", map[string]any{"name": "Ghost"})
	require.Equal(t, http.StatusBadRequest, st, "non-numeric id")

	createPet(t, ts.URL, "Bella")

	st, body := doReq(t, ts.URL, "PUT", "/pets/1", map[string]any{})
	require.Equal(t, http.StatusBadRequest, st, "empty update body=%s", body)

	st, _ = doReq(t, ts.URL, "PUT", "/pets/1", map[string]any{"age": -2})
	require.Equal(t, http.StatusBadRequest, st)
}

func TestHTTP_CareActivities(t *testing.T) {
	ts, _ := newTestServer(t)

	petID := createPet(t, ts.URL, "Bella")
	otherID := createPet(t, ts.URL, "Rocky")

	scheduled := time.Date(2024, 12, 16, 8, 0, 0, 0, time.UTC)

	// completedDate is not part of the create schema; a client sending it
	// anyway gets it silently dropped.
	st, body := doReq(t, ts.URL, "POST", "/care-activities", map[string]any{
		"petId":         petID,
		"type":          "exercise",
		"title":         "Morning Walk",
		"description":   "30 minutes in the park",
		"scheduledDate": scheduled.Format(time.RFC3339),
		"completedDate": scheduled.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, st, "body=%s", body)

	var act activityBody
	require.NoError(t, json.Unmarshal(body, &act))
	require.Equal(t, petID, act.PetID)
	require.False(t, act.Completed)
	require.Nil(t, act.CompletedDate)
	require.True(t, act.ScheduledDate.Equal(scheduled))

	// One for the other pet, for filter coverage.
	st, _ = doReq(t, ts.URL, "POST", "/care-activities", map[string]any{
		"petId":         otherID,
		"type":          "feeding",
		"title":         "Breakfast",
		"scheduledDate": scheduled.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, st)

	st, body = doReq(t, ts.URL, "GET", "/care-activities", nil)
	require.Equal(t, http.StatusOK, st)
	var all []activityBody
	require.NoError(t, json.Unmarshal(body, &all))
	require.Len(t, all, 2)

	st, body = doReq(t, ts.URL, "GET", fmt.Sprintf("/care-activities?petId=%d", petID), nil)
	require.Equal(t, http.StatusOK, st)
	var filtered []activityBody
	require.NoError(t, json.Unmarshal(body, &filtered))
	require.Len(t, filtered, 1)
	require.Equal(t, act.ID, filtered[0].ID)

	// Unknown pet filters to an empty array, not an error.
	st, body = doReq(t, ts.URL, "GET", "/care-activities?petId=999", nil)
	require.Equal(t, http.StatusOK, st)
	require.JSONEq(t, `[]`, string(body))

	st, _ = doReq(t, ts.URL, "GET", "/care-activities?petId=abc", nil)
	require.Equal(t, http.StatusBadRequest, st)

	// Marking completed without a date stamps the server time.
	before := time.Now().Add(-time.Second)
	st, body = doReq(t, ts.URL, "PUT", fmt.Sprintf("/care-activities/%d", act.ID), map[string]any{
		"completed": true,
	})
	after := time.Now().Add(time.Second)
	require.Equal(t, http.StatusOK, st, "body=%s", body)

	var done activityBody
	require.NoError(t, json.Unmarshal(body, &done))
	require.True(t, done.Completed)
	require.NotNil(t, done.CompletedDate)
	require.True(t, done.CompletedDate.After(before) && done.CompletedDate.Before(after),
		"completedDate %v outside [%v, %v]", done.CompletedDate, before, after)

	st, _ = doReq(t, ts.URL, "PUT", "/care-activities/999", map[string]any{"completed": true})
	require.Equal(t, http.StatusNotFound, st)
}

func TestHTTP_CreateActivity_Validation(t *testing.T) {
	ts, _ := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/care-activities", map[string]any{
		"petId": 1,
		"type":  "exercise",
	})
	require.Equal(t, http.StatusBadRequest, st, "missing title and scheduledDate, body=%s", body)

	var errBody struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &errBody))
	require.Equal(t, "Invalid care activity data", errBody.Message)
}

func TestHTTP_HealthRecords(t *testing.T) {
	ts, _ := newTestServer(t)

	petID := createPet(t, ts.URL, "Whiskers")

	st, body := doReq(t, ts.URL, "POST", "/health-records", map[string]any{
		"petId":        petID,
		"type":         "vaccination",
		"title":        "Annual Vaccines",
		"veterinarian": "Dr. Mike Chen",
		"notes":        "No adverse reactions",
		"date":         "2024-10-20T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, st, "body=%s", body)

	var rec recordBody
	require.NoError(t, json.Unmarshal(body, &rec))
	require.Equal(t, petID, rec.PetID)
	require.Equal(t, "Annual Vaccines", rec.Title)
	require.NotNil(t, rec.Veterinarian)

	st, body = doReq(t, ts.URL, "GET", fmt.Sprintf("/pets/%d/health-records", petID), nil)
	require.Equal(t, http.StatusOK, st)
	var recs []recordBody
	require.NoError(t, json.Unmarshal(body, &recs))
	require.Len(t, recs, 1)

	// A pet without records gets an empty array.
	st, body = doReq(t, ts.URL, "GET", "/pets/999/health-records", nil)
	require.Equal(t, http.StatusOK, st)
	require.JSONEq(t, `[]`, string(body))

	st, body = doReq(t, ts.URL, "POST", "/health-records", map[string]any{
		"petId": petID,
		"type":  "checkup",
	})
	require.Equal(t, http.StatusBadRequest, st, "body=%s", body)
}

func TestHTTP_DailyStats(t *testing.T) {
	ts, opts := newTestServer(t)

	day1 := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 12, 16, 0, 0, 0, 0, time.UTC)

	seedStats(t, opts.Stats, 1, day1, 8500)
	seedStats(t, opts.Stats, 1, day2, 9100)
	seedStats(t, opts.Stats, 2, day1, 2100)

	st, body := doReq(t, ts.URL, "GET", "/pets/1/stats", nil)
	require.Equal(t, http.StatusOK, st)
	var all []statsBody
	require.NoError(t, json.Unmarshal(body, &all))
	require.Len(t, all, 2)

	// Date filter accepts the bare YYYY-MM-DD form.
	st, body = doReq(t, ts.URL, "GET", "/pets/1/stats?date=2024-12-15", nil)
	require.Equal(t, http.StatusOK, st)
	var filtered []statsBody
	require.NoError(t, json.Unmarshal(body, &filtered))
	require.Len(t, filtered, 1)
	require.Equal(t, 8500, filtered[0].Steps)

	// And the full RFC3339 form.
	st, body = doReq(t, ts.URL, "GET", "/pets/1/stats?date=2024-12-16T00:00:00Z", nil)
	require.Equal(t, http.StatusOK, st)
	require.NoError(t, json.Unmarshal(body, &filtered))
	require.Len(t, filtered, 1)
	require.Equal(t, 9100, filtered[0].Steps)

	st, _ = doReq(t, ts.URL, "GET", "/pets/1/stats?date=yesterday", nil)
	require.Equal(t, http.StatusBadRequest, st)

	st, body = doReq(t, ts.URL, "GET", "/pets/3/stats", nil)
	require.Equal(t, http.StatusOK, st)
	require.JSONEq(t, `[]`, string(body))
}

func TestHTTP_DashboardStats(t *testing.T) {
	ts, _ := newTestServer(t)

	// Empty store: healthScore is defined as 0, not a division error.
	st, body := doReq(t, ts.URL, "GET", "/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, st)
	require.JSONEq(t, `{
		"totalPets": 0,
		"healthyPets": 0,
		"pendingTasks": 0,
		"dailySteps": 12847,
		"healthScore": 0,
		"stepGoalProgress": 75
	}`, string(body))

	// Two healthy pets out of three, one pending task out of two.
	createPet(t, ts.URL, "Bella")
	createPet(t, ts.URL, "Whiskers")
	st, _ = doReq(t, ts.URL, "POST", "/pets", map[string]any{
		"name": "Rocky", "species": "dog", "breed": "German Shepherd",
		"age": 7, "weight": 35, "healthStatus": "needs_attention",
	})
	require.Equal(t, http.StatusCreated, st)

	scheduled := time.Now().UTC().Format(time.RFC3339)
	st, _ = doReq(t, ts.URL, "POST", "/care-activities", map[string]any{
		"petId": 1, "type": "exercise", "title": "Walk", "scheduledDate": scheduled,
	})
	require.Equal(t, http.StatusCreated, st)
	st, _ = doReq(t, ts.URL, "POST", "/care-activities", map[string]any{
		"petId": 1, "type": "feeding", "title": "Breakfast", "completed": true, "scheduledDate": scheduled,
	})
	require.Equal(t, http.StatusCreated, st)

	st, body = doReq(t, ts.URL, "GET", "/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, st)

	var dash struct {
		TotalPets    int `json:"totalPets"`
		HealthyPets  int `json:"healthyPets"`
		PendingTasks int `json:"pendingTasks"`
		HealthScore  int `json:"healthScore"`
	}
	require.NoError(t, json.Unmarshal(body, &dash))
	require.Equal(t, 3, dash.TotalPets)
	require.Equal(t, 2, dash.HealthyPets)
	require.Equal(t, 1, dash.PendingTasks)
	require.Equal(t, 67, dash.HealthScore, "2/3 rounded")
}

func TestHTTP_PhotoUpload(t *testing.T) {
	ts, _ := newTestServer(t)

	petID := createPet(t, ts.URL, "Bella")

	// Happy path: small png stored as a base64 data URL.
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	st, body := uploadPhoto(t, ts.URL, petID, "photo", "bella.png", "image/png", png)
	require.Equal(t, http.StatusOK, st, "body=%s", body)

	var p petBody
	require.NoError(t, json.Unmarshal(body, &p))
	require.NotNil(t, p.PhotoURL)
	require.True(t, strings.HasPrefix(*p.PhotoURL, "data:image/png;base64,"), "got %q", *p.PhotoURL)

	// Unknown pet.
	st, _ = uploadPhoto(t, ts.URL, 999, "photo", "x.png", "image/png", png)
	require.Equal(t, http.StatusNotFound, st)

	// Wrong form field name reads as no file.
	st, body = uploadPhoto(t, ts.URL, petID, "file", "x.png", "image/png", png)
	require.Equal(t, http.StatusBadRequest, st)
	require.Contains(t, string(body), "No photo uploaded")

	// Non-image content type.
	st, body = uploadPhoto(t, ts.URL, petID, "photo", "x.pdf", "application/pdf", png)
	require.Equal(t, http.StatusBadRequest, st)
	require.Contains(t, string(body), "Only image files are allowed")

	// Oversize file is rejected and the stored photo survives.
	st, _ = uploadPhoto(t, ts.URL, petID, "photo", "big.png", "image/png", make([]byte, 6<<20))
	require.Equal(t, http.StatusBadRequest, st)

	st, body = doReq(t, ts.URL, "GET", fmt.Sprintf("/pets/%d", petID), nil)
	require.Equal(t, http.StatusOK, st)
	require.NoError(t, json.Unmarshal(body, &p))
	require.NotNil(t, p.PhotoURL)
	require.True(t, strings.HasPrefix(*p.PhotoURL, "data:image/png;base64,"), "photo overwritten by failed upload")
}

func TestHTTP_HealthCheck(t *testing.T) {
	ts, _ := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, st)
	require.Equal(t, "ok", string(body))
}

// response shapes as the client sees them

type petBody struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Species      string     `json:"species"`
	Breed        string     `json:"breed"`
	Age          int        `json:"age"`
	Weight       int        `json:"weight"`
	PhotoURL     *string    `json:"photoUrl"`
	HealthStatus string     `json:"healthStatus"`
	NextCheckup  *time.Time `json:"nextCheckup"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type activityBody struct {
	ID            int64      `json:"id"`
	PetID         int64      `json:"petId"`
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Completed     bool       `json:"completed"`
	ScheduledDate time.Time  `json:"scheduledDate"`
	CompletedDate *time.Time `json:"completedDate"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type recordBody struct {
	ID           int64     `json:"id"`
	PetID        int64     `json:"petId"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Notes        *string   `json:"notes"`
	Veterinarian *string   `json:"veterinarian"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"createdAt"`
}

type statsBody struct {
	ID              int64     `json:"id"`
	PetID           int64     `json:"petId"`
	Date            time.Time `json:"date"`
	Steps           int       `json:"steps"`
	ExerciseMinutes int       `json:"exerciseMinutes"`
	SleepHours      int       `json:"sleepHours"`
	Meals           int       `json:"meals"`
	CreatedAt       time.Time `json:"createdAt"`
}

// helpers

func createPet(t *testing.T, baseURL, name string) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", map[string]any{
		"name":    name,
		"species": "dog",
		"breed":   "mixed",
		"age":     3,
		"weight":  20,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func seedStats(t *testing.T, repo stats.Repository, petID int64, date time.Time, steps int) {
	t.Helper()

	_, err := repo.Create(context.Background(), stats.InsertDailyStats{
		PetID:           petID,
		Date:            date,
		Steps:           steps,
		ExerciseMinutes: 45,
		SleepHours:      12,
		Meals:           2,
	})
	require.NoError(t, err)
}

func uploadPhoto(t *testing.T, baseURL string, petID int64, field, filename, mime string, data []byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	hdr.Set("Content-Type", mime)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return doReqRaw(t, baseURL, "POST", fmt.Sprintf("/pets/%d/photo", petID), mw.FormDataContentType(), &buf)
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	contentType := ""
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
		contentType = "application/json"
	}
	return doReqRaw(t, baseURL, method, path, contentType, rdr)
}

func doReqRaw(t *testing.T, baseURL, method, path, contentType string, body io.Reader) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
