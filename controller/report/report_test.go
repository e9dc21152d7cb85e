package report_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lostandfound/controller/auth"
	"lostandfound/controller/report"
	"lostandfound/model"
	"lostandfound/store"
	"lostandfound/store/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	gin.SetMode(gin.TestMode)
	router := gin.New()

	tx := testutil.Tx(t, testutil.DB(t))
	reports := store.NewReportStore(tx, testutil.Logger(t))
	report.ReportController(router, reports, nil, testutil.Logger(t))

	token, err := auth.CreateAccessToken("bot")
	require.NoError(t, err)
	return router, token
}

func do(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndGetReport(t *testing.T) {
	router, token := newServer(t)

	w := do(t, router, http.MethodPost, "/report/create", token, gin.H{
		"report_id":   "eq-1001",
		"report_type": "missing_person",
		"all_data":    "Jane Doe, age 34, last seen near Market Street",
		"location":    "Market Street",
		"user_id":     42,
		"username":    "jdoe",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var created struct {
		Report model.Report `json:"report"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	// the id is normalized to upper case on the way in
	assert.Equal(t, "EQ-1001", created.Report.ReportID)
	assert.NotZero(t, created.Report.ID)

	w = do(t, router, http.MethodGet, "/report/id/eq-1001", token, nil)
	require.Equal(t, 200, w.Code)

	var fetched struct {
		Report model.Report `json:"report"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.Report.ID, fetched.Report.ID)
	assert.Equal(t, "missing_person", fetched.Report.ReportType)
}

func TestCreateReportGeneratesIDAndUrgency(t *testing.T) {
	router, token := newServer(t)

	w := do(t, router, http.MethodPost, "/report/create", token, gin.H{
		"report_type": "rescue_request",
		"all_data":    "three people trapped in a collapsed stairwell",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var created struct {
		Report model.Report `json:"report"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Regexp(t, `^[0-9A-F]{8}$`, created.Report.ReportID)
	assert.Equal(t, model.UrgencyHigh, created.Report.Urgency)
}

func TestCreateReportDuplicate(t *testing.T) {
	router, token := newServer(t)

	body := gin.H{
		"report_id":   "DUP-7777",
		"report_type": "lost_item",
		"all_data":    "blue bicycle",
	}
	w := do(t, router, http.MethodPost, "/report/create", token, body)
	require.Equal(t, 201, w.Code)

	w = do(t, router, http.MethodPost, "/report/create", token, body)
	assert.Equal(t, 409, w.Code, w.Body.String())
}

func TestCreateReportMissingFields(t *testing.T) {
	router, token := newServer(t)

	w := do(t, router, http.MethodPost, "/report/create", token, gin.H{
		"report_type": "lost_item",
	})
	assert.Equal(t, 400, w.Code)

	w = do(t, router, http.MethodPost, "/report/create", token, gin.H{
		"all_data": "details with no type",
	})
	assert.Equal(t, 400, w.Code)
}

func TestGetReportNotFound(t *testing.T) {
	router, token := newServer(t)

	w := do(t, router, http.MethodGet, "/report/id/MISSING1", token, nil)
	assert.Equal(t, 404, w.Code)
}

func TestSearchReports(t *testing.T) {
	router, token := newServer(t)

	for i, all := range []string{
		"Jane Doe, last seen near Market Street",
		"found a set of keys at the shelter",
	} {
		w := do(t, router, http.MethodPost, "/report/create", token, gin.H{
			"report_id":   fmt.Sprintf("SRCH-%03d", i),
			"report_type": "missing_person",
			"all_data":    all,
		})
		require.Equal(t, 201, w.Code)
	}

	w := do(t, router, http.MethodGet, "/report/search?q=market", token, nil)
	require.Equal(t, 200, w.Code)

	var res struct {
		Count   int            `json:"count"`
		Reports []model.Report `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "SRCH-000", res.Reports[0].ReportID)

	w = do(t, router, http.MethodGet, "/report/search?q=zzzznothing", token, nil)
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Zero(t, res.Count)
}

func TestListUserReports(t *testing.T) {
	router, token := newServer(t)

	for i := 0; i < 2; i++ {
		w := do(t, router, http.MethodPost, "/report/create", token, gin.H{
			"report_id":   fmt.Sprintf("USR-%03d", i),
			"report_type": "offer_help",
			"all_data":    "can host a family",
			"user_id":     501,
		})
		require.Equal(t, 201, w.Code)
	}

	w := do(t, router, http.MethodGet, "/report/user/501", token, nil)
	require.Equal(t, 200, w.Code)

	var res struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Count)

	w = do(t, router, http.MethodGet, "/report/user/not-a-number", token, nil)
	assert.Equal(t, 400, w.Code)
}

func TestReportStats(t *testing.T) {
	router, token := newServer(t)

	w := do(t, router, http.MethodPost, "/report/create", token, gin.H{
		"report_id":   "STAT-001",
		"report_type": "missing_person",
		"all_data":    "stats seed",
	})
	require.Equal(t, 201, w.Code)

	w = do(t, router, http.MethodGet, "/report/stats", token, nil)
	require.Equal(t, 200, w.Code)

	var res struct {
		Counts map[string]int64 `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, int64(1), res.Counts["missing_person"])

	w = do(t, router, http.MethodGet, "/report/stats?hours=bogus", token, nil)
	assert.Equal(t, 400, w.Code)
}

func TestRoutesRequireToken(t *testing.T) {
	router, _ := newServer(t)

	w := do(t, router, http.MethodGet, "/report/search?q=x", "", nil)
	assert.Equal(t, 401, w.Code)

	w = do(t, router, http.MethodPost, "/report/create", "", gin.H{
		"report_type": "lost_item",
		"all_data":    "no token",
	})
	assert.Equal(t, 401, w.Code)
}
