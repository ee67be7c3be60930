package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorales/jobhunter/internal/generation"
	"github.com/jmorales/jobhunter/internal/rendering"
	"github.com/jmorales/jobhunter/internal/store"
	"github.com/jmorales/jobhunter/internal/types"
)

// fakeGenerator returns a canned artifact or error.
type fakeGenerator struct {
	artifact *types.GeneratedArtifact
	err      error
}

func (g *fakeGenerator) Generate(_ context.Context, profileID, postingID string) (*types.GeneratedArtifact, error) {
	if g.err != nil {
		return nil, g.err
	}
	if g.artifact != nil {
		return g.artifact, nil
	}
	return &types.GeneratedArtifact{
		ID:        uuid.New(),
		Key:       types.GenerationKey{ProfileID: profileID, ProfileVersion: 1, PostingID: postingID},
		PDF:       []byte("%PDF-fake"),
		Filename:  "resume_acme_posting-1_20260829.pdf",
		CreatedAt: time.Now(),
	}, nil
}

func newTestServer(t *testing.T) (*Server, *fakeGenerator, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	mem.AddPosting(&types.JobPosting{ID: "posting-1", Title: "Engineer", Company: "Acme"})
	mem.AddPosting(&types.JobPosting{ID: "posting-2", Title: "Manager", Company: "Globex"})

	gen := &fakeGenerator{}
	srv := New(Config{Port: 0}, gen, mem, mem)
	return srv, gen, mem
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	srv, _, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestHandleGenerate(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/generate",
		GenerateRequest{ProfileID: "profile-1", PostingID: "posting-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ArtifactID)
	assert.Equal(t, "profile-1", resp.Key.ProfileID)
	assert.Equal(t, "posting-1", resp.Key.PostingID)
	assert.False(t, resp.Degraded)
}

func TestHandleGenerate_MissingFields(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/generate", GenerateRequest{ProfileID: "profile-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerate_InvalidBody(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown input", &generation.InputError{Message: "unknown profile: x"}, http.StatusNotFound},
		{"busy", generation.ErrBusy, http.StatusConflict},
		{"compile failure", &rendering.CompileError{Message: "no PDF"}, http.StatusBadGateway},
		{"template failure", &rendering.TemplateError{Message: "bad template"}, http.StatusBadGateway},
		{"other", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, gen, _ := newTestServer(t)
			gen.err = tt.err

			rec := doJSON(t, srv, http.MethodPost, "/generate",
				GenerateRequest{ProfileID: "p", PostingID: "j"})
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandleGetArtifact(t *testing.T) {
	srv, _, mem := newTestServer(t)

	artifact := &types.GeneratedArtifact{
		ID:        uuid.New(),
		Key:       types.GenerationKey{ProfileID: "profile-1", ProfileVersion: 1, PostingID: "posting-1"},
		PDF:       []byte("%PDF-content"),
		Filename:  "resume_acme_posting-1_20260829.pdf",
		CreatedAt: time.Now(),
	}
	require.NoError(t, mem.SaveArtifact(context.Background(), artifact))

	rec := doJSON(t, srv, http.MethodGet, "/artifacts/"+artifact.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), artifact.Filename)
	assert.Equal(t, "%PDF-content", rec.Body.String())
}

func TestHandleGetArtifactMeta(t *testing.T) {
	srv, _, mem := newTestServer(t)

	artifact := &types.GeneratedArtifact{
		ID:        uuid.New(),
		Key:       types.GenerationKey{ProfileID: "profile-1", ProfileVersion: 2, PostingID: "posting-1"},
		PDF:       []byte("%PDF-content"),
		Filename:  "resume_acme_posting-1_20260829.pdf",
		Degraded:  true,
		Warnings:  []string{"model selection failed, using original content"},
		CreatedAt: time.Now(),
	}
	require.NoError(t, mem.SaveArtifact(context.Background(), artifact))

	rec := doJSON(t, srv, http.MethodGet, "/artifacts/"+artifact.ID.String()+"/meta", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var meta ArtifactMeta
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meta))
	assert.Equal(t, artifact.ID.String(), meta.ArtifactID)
	assert.Equal(t, int64(2), meta.Key.ProfileVersion)
	assert.Equal(t, len(artifact.PDF), meta.SizeBytes)
	assert.True(t, meta.Degraded)
	assert.NotEmpty(t, meta.Warnings)
}

func TestHandleGetArtifact_NotFound(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/artifacts/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetArtifact_BadID(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/artifacts/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListPostings(t *testing.T) {
	srv, _, mem := newTestServer(t)
	require.NoError(t, mem.SetStatus(context.Background(), "posting-2", types.StatusApplied))

	rec := doJSON(t, srv, http.MethodGet, "/postings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Postings []store.PostingWithStatus `json:"postings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Postings, 2)

	rec = doJSON(t, srv, http.MethodGet, "/postings?status=applied", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Postings, 1)
	assert.Equal(t, "posting-2", resp.Postings[0].ID)
}

func TestHandleListPostings_BadFilter(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/postings?status=ghosted", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetPosting(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/postings/posting-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var posting store.PostingWithStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posting))
	assert.Equal(t, "Acme", posting.Company)
	assert.Equal(t, types.StatusNew, posting.Status)

	rec = doJSON(t, srv, http.MethodGet, "/postings/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleSetStatus(t *testing.T) {
	srv, _, mem := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPut, "/postings/posting-1/status",
		StatusRequest{Status: "interviewing"})
	require.Equal(t, http.StatusOK, rec.Code)

	status, err := mem.GetStatus(context.Background(), "posting-1")
	require.NoError(t, err)
	assert.Equal(t, types.StatusInterviewing, status)
}

func TestHandleSetStatus_Invalid(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPut, "/postings/posting-1/status",
		StatusRequest{Status: "ghosted"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPut, "/postings/missing/status",
		StatusRequest{Status: "applied"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, srv, http.MethodPut, "/postings/posting-1/status", StatusRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
