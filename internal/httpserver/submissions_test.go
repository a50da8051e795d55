package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/khatkhazana-hub/backend/internal/domain"
	"github.com/khatkhazana-hub/backend/internal/service/submission"
)

type stubSubmissions struct {
	created    *domain.Submission
	createErr  error
	approved   *domain.Submission
	lastCreate submission.CreateInput
	lastID     string
}

func (s *stubSubmissions) Create(_ context.Context, in submission.CreateInput) (*domain.Submission, error) {
	s.lastCreate = in
	return s.created, s.createErr
}

func (s *stubSubmissions) List(context.Context) ([]domain.Submission, error) { return nil, nil }

func (s *stubSubmissions) Get(context.Context, string) (*domain.Submission, error) {
	return nil, domain.ErrNotFound
}

func (s *stubSubmissions) Approve(_ context.Context, id string) (*domain.Submission, error) {
	s.lastID = id
	if s.approved == nil {
		return nil, domain.ErrNotFound
	}
	return s.approved, nil
}

func (s *stubSubmissions) Reject(_ context.Context, id string) (*domain.Submission, error) {
	s.lastID = id
	return nil, domain.ErrNotFound
}

func (s *stubSubmissions) Update(context.Context, string, submission.UpdateInput) (*domain.Submission, error) {
	return nil, domain.ErrNotFound
}

func (s *stubSubmissions) Delete(context.Context, string) error { return nil }

func submissionsRouter(svc SubmissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/submissions", createSubmissionHandler(svc))
	router.GET("/api/submissions/:id", getSubmissionHandler(svc))
	router.PATCH("/api/submissions/:id/approve", approveSubmissionHandler(svc))
	return router
}

func TestCreateSubmission_Success(t *testing.T) {
	svc := &stubSubmissions{
		created: &domain.Submission{ID: "sub1", FullName: "Amira Khan", Status: domain.SubmissionPending},
	}
	router := submissionsRouter(svc)

	body := `{
		"fullName": "Amira Khan",
		"email": "amira@example.com",
		"hasReadGuidelines": true,
		"agreedTermsSubmission": true,
		"uploadType": "Letter",
		"letter": {"title": "Letters from Lahore", "images": [{"path": "https://cdn.example.com/a.jpg"}]}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastCreate.UploadType != "Letter" || len(svc.lastCreate.Letter.Images) != 1 {
		t.Fatalf("input not forwarded: %+v", svc.lastCreate)
	}

	var resp struct {
		Message      string `json:"message"`
		SubmissionID string `json:"submissionId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Submission saved." || resp.SubmissionID != "sub1" {
		t.Fatalf("response = %+v", resp)
	}
}

func TestCreateSubmission_ValidationIs400(t *testing.T) {
	svc := &stubSubmissions{createErr: domain.Invalid("You must agree to the terms of submission.")}
	router := submissionsRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader(`{"fullName":"A","email":"a@b.c"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "You must agree to the terms of submission.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestApproveSubmission(t *testing.T) {
	svc := &stubSubmissions{approved: &domain.Submission{ID: "sub1", Status: domain.SubmissionApproved}}
	router := submissionsRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/submissions/sub1/approve", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if svc.lastID != "sub1" {
		t.Fatalf("id = %q", svc.lastID)
	}
	if !strings.Contains(rec.Body.String(), "Submission approved") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetSubmission_NotFound(t *testing.T) {
	router := submissionsRouter(&stubSubmissions{})

	req := httptest.NewRequest(http.MethodGet, "/api/submissions/missing", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Submission not found.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
