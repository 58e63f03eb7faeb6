package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/ent/job"
	"github.com/legacyuse/orchestrator/pkg/database"
	"github.com/legacyuse/orchestrator/pkg/services"
	"github.com/legacyuse/orchestrator/pkg/tenancy"
	"github.com/legacyuse/orchestrator/test/util"
)

const testAPIKey = "test-key"

func init() {
	gin.SetMode(gin.TestMode)
}

// staticTenancy serves one tenant for its configured host and rejects every
// other host, standing in for tenancy.Registry.
type staticTenancy struct {
	host    string
	tenant  *ent.Tenant
	runtime *Runtime
}

func (s *staticTenancy) ResolveHost(_ context.Context, host string) (*ent.Tenant, error) {
	if tenancy.NormalizeHost(host) != s.host {
		return nil, tenancy.ErrUnknownTenant
	}
	return s.tenant, nil
}

func (s *staticTenancy) RuntimeFor(context.Context, *ent.Tenant) (*Runtime, error) {
	return s.runtime, nil
}

type apiFixture struct {
	router  *gin.Engine
	runtime *Runtime
	db      *database.Client
}

func newAPIFixture(t *testing.T) *apiFixture {
	db := util.SetupTestDatabase(t)
	logs := services.NewLogService(db)
	rt := &Runtime{
		Tenant:   &ent.Tenant{ID: "acme", Host: "acme.example.com", Schema: "tenant_acme", IsActive: true},
		Jobs:     services.NewJobService(db, logs),
		Targets:  services.NewTargetService(db),
		Sessions: services.NewSessionService(db),
		APIs:     services.NewAPIService(db),
		Logs:     logs,
		Settings: services.NewSettingsService(db),
	}
	st := &staticTenancy{host: "acme.example.com", tenant: rt.Tenant, runtime: rt}
	server := NewServer(testAPIKey, st, st, db)
	return &apiFixture{router: server.Router(), runtime: rt, db: db}
}

// do performs an authenticated request against the fixture tenant.
func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Host = "acme.example.com"
	req.Header.Set("X-API-Key", testAPIKey)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) createTarget(t *testing.T) string {
	rec := f.do(t, http.MethodPost, "/api/v1/targets/", map[string]any{
		"name":     "ledger",
		"type":     "rdp",
		"host":     "192.168.7.20",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var target struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &target))
	return target.ID
}

func TestRequireAPIKey(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/targets/", nil)
	req.Host = "acme.example.com"
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req.Header.Set("X-API-Key", "wrong")
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUnknownHostIsRejected(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/targets/", nil)
	req.Host = "stranger.example.com"
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobLifecycleOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	targetID := f.createTarget(t)

	rec := f.do(t, http.MethodPost, "/api/v1/targets/"+targetID+"/jobs/", map[string]any{
		"api_name":   "read_balance",
		"parameters": map[string]any{"account": "12345"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created JobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, job.StatusQueued, created.Status)
	assert.Equal(t, targetID, created.TargetID)
	assert.Nil(t, created.DurationSeconds)

	rec = f.do(t, http.MethodGet, "/api/v1/targets/"+targetID+"/jobs/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/targets/"+targetID+"/jobs/"+created.ID+"/interrupt", nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/targets/"+targetID+"/jobs/"+created.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var canceled JobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &canceled))
	assert.Equal(t, job.StatusCanceled, canceled.Status)

	// terminal jobs cannot be canceled again
	rec = f.do(t, http.MethodPost, "/api/v1/targets/"+targetID+"/jobs/"+created.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestJobNotFoundUnderOtherTarget(t *testing.T) {
	f := newAPIFixture(t)
	targetA := f.createTarget(t)

	rec := f.do(t, http.MethodPost, "/api/v1/targets/"+targetA+"/jobs/", map[string]any{
		"api_name": "read_balance",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created JobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = f.do(t, http.MethodGet, "/api/v1/targets/other-target/jobs/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResolveBlockedJob(t *testing.T) {
	f := newAPIFixture(t)
	targetID := f.createTarget(t)

	rec := f.do(t, http.MethodPost, "/api/v1/targets/"+targetID+"/jobs/", map[string]any{
		"api_name": "read_balance",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created JobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	_, err := f.runtime.Jobs.Enqueue(context.Background(), services.CreateJobRequest{
		TargetID: targetID, APIName: "read_balance",
	})
	require.NoError(t, err)

	// block the first job as an operator would find it
	require.NoError(t, f.db.Job.UpdateOneID(created.ID).
		SetStatus(job.StatusPaused).
		Exec(context.Background()))

	rec = f.do(t, http.MethodPost, "/api/v1/targets/"+targetID+"/jobs/"+created.ID+"/resolve",
		map[string]any{"balance": "42.50"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resolved JobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolved))
	assert.Equal(t, job.StatusSuccess, resolved.Status)
	assert.Equal(t, map[string]any{"balance": "42.50"}, resolved.Result)

	rec = f.do(t, http.MethodGet, "/api/v1/targets/"+targetID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var target TargetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &target))
	assert.False(t, target.QueuePaused)
}

func TestQueueDiagnostics(t *testing.T) {
	f := newAPIFixture(t)
	targetID := f.createTarget(t)

	rec := f.do(t, http.MethodPost, "/api/v1/targets/"+targetID+"/jobs/", map[string]any{
		"api_name": "read_balance",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/diagnostics/queue", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var snapshot services.QueueSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Len(t, snapshot.Queued, 1)
	assert.Empty(t, snapshot.Running)
	assert.Empty(t, snapshot.Blocked)
}

func TestAPIVersioningOverHTTP(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/apis/", map[string]any{
		"name": "read_balance", "description": "reads the account balance",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var def struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &def))

	rec = f.do(t, http.MethodPost, "/api/v1/apis/"+def.ID+"/versions/", map[string]any{
		"prompt":           "Read the balance for account {account}.",
		"response_example": map[string]any{"balance": "1.00"},
		"activate":         true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/v1/apis/"+def.ID+"/versions/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var versions []struct {
		VersionNumber int  `json:"version_number"`
		IsActive      bool `json:"is_active"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &versions))
	require.Len(t, versions, 1)
	assert.Equal(t, 1, versions[0].VersionNumber)
	assert.True(t, versions[0].IsActive)
}

func TestHealthIsUnauthenticated(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	require.NotNil(t, resp.Database)
}
