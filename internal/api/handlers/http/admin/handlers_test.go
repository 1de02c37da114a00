package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/rqc23shu/safevalley-map/internal/api/handlers/http/admin"
	mock_admin "github.com/rqc23shu/safevalley-map/internal/api/handlers/http/admin/mocks"
	"github.com/rqc23shu/safevalley-map/internal/domain"
	"github.com/rqc23shu/safevalley-map/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func sampleReport(status domain.ReportStatus) *domain.HazardReport {
	r := &domain.HazardReport{
		ID:           uuid.New(),
		Type:         domain.HazardCrime,
		Description:  "Muggings reported at the taxi rank after dark",
		Location:     domain.Location{Lat: -26.19, Lng: 28.07},
		RadiusM:      100,
		DurationDays: 7,
		Status:       status,
		CreatedAt:    time.Now().UTC().Add(-time.Hour),
	}
	if status == domain.StatusApproved {
		approvedAt := time.Now().UTC()
		r.ApprovedAt = &approvedAt
	}
	return r
}

func TestReportApprove_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockModeration(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	report := sampleReport(domain.StatusApproved)

	svc.EXPECT().
		Approve(gomock.Any(), gomock.Any(), report.ID).
		Return(report, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reports/"+report.ID.String()+"/approve", nil)
	req = addChiURLParam(req, "id", report.ID.String())
	rr := httptest.NewRecorder()

	h.ReportApprove(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["isApproved"] != true {
		t.Fatalf("expected derived isApproved=true, body=%s", rr.Body.String())
	}
	if got["status"] != string(domain.StatusApproved) {
		t.Fatalf("expected status approved, body=%s", rr.Body.String())
	}
}

func TestReportApprove_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockModeration(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reports/nope/approve", nil)
	req = addChiURLParam(req, "id", "nope")
	rr := httptest.NewRecorder()

	h.ReportApprove(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestReportGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockModeration(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	svc.EXPECT().
		Get(gomock.Any(), gomock.Any(), id).
		Return(nil, fmt.Errorf("get: %w", e.ErrNotFound)).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ReportGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}

func TestReportGet_Unauthorized_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockModeration(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	svc.EXPECT().
		Get(gomock.Any(), gomock.Any(), id).
		Return(nil, e.ErrUnauthorized).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ReportGet(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestReportDelete_PassesConfirmFlag(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockModeration(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	report := sampleReport(domain.StatusDeleted)

	svc.EXPECT().
		SoftDelete(gomock.Any(), gomock.Any(), report.ID, true).
		Return(report, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/reports/"+report.ID.String(), bytes.NewBufferString(`{"confirm":true}`))
	req = addChiURLParam(req, "id", report.ID.String())
	rr := httptest.NewRecorder()

	h.ReportDelete(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestReportDelete_MissingConfirmation_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockModeration(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	svc.EXPECT().
		SoftDelete(gomock.Any(), gomock.Any(), id, false).
		Return(nil, fmt.Errorf("soft delete requires confirmation: %w", e.ErrInvalidInput)).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/reports/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ReportDelete(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestReportPermanentDelete_WrongState_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockModeration(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	svc.EXPECT().
		PermanentDelete(gomock.Any(), gomock.Any(), id).
		Return(fmt.Errorf("permanent delete of approved report: %w", e.ErrPreconditionFailed)).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/reports/"+id.String()+"/permanent", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ReportPermanentDelete(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d", http.StatusConflict, rr.Code)
	}
}

func TestReportPermanentDelete_OK_204(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockModeration(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	svc.EXPECT().
		PermanentDelete(gomock.Any(), gomock.Any(), id).
		Return(nil).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/reports/"+id.String()+"/permanent", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ReportPermanentDelete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d", http.StatusNoContent, rr.Code)
	}
}

func TestReportList_InvalidBucket_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockModeration(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports?bucket=archived", nil)
	rr := httptest.NewRecorder()

	h.ReportList(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestReportList_OK_ForwardsCursor(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockModeration(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	report := sampleReport(domain.StatusPending)

	svc.EXPECT().
		ListBucket(gomock.Any(), gomock.Any(), domain.ListBucketRequest{
			Bucket: domain.BucketPending,
			Limit:  5,
			Cursor: "abc",
		}).
		Return(domain.ListBucketResponse{
			Reports:    []domain.HazardReport{*report},
			NextCursor: "next-cursor",
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports?bucket=pending&limit=5&cursor=abc", nil)
	rr := httptest.NewRecorder()

	h.ReportList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["next_cursor"] != "next-cursor" {
		t.Fatalf("expected next_cursor passthrough, body=%s", rr.Body.String())
	}
}

func TestReportEdit_ValidationErrors_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockModeration(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	svc.EXPECT().
		Edit(gomock.Any(), gomock.Any(), id, gomock.Any()).
		Return(nil, e.NewValidationError([]string{
			"Please select a valid hazard type",
			"Duration must be between 1 and 30 days",
		})).
		Times(1)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/reports/"+id.String(), bytes.NewBufferString(`{"type":"volcano","duration":99}`))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ReportEdit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}

	type errBody struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
	got := decodeJSON[errBody](t, rr)
	if len(got.Errors) != 2 {
		t.Fatalf("expected both violations in response, body=%s", rr.Body.String())
	}
}

func TestAdminStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockModeration(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	svc.EXPECT().
		Counts(gomock.Any(), gomock.Any()).
		Return(domain.BucketCounts{Pending: 3, Approved: 5, Rejected: 1, Deleted: 2}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()

	h.AdminStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}

	got := decodeJSON[map[string]any](t, rr)
	if got["total"] != float64(11) {
		t.Fatalf("expected total=11, body=%s", rr.Body.String())
	}
}

func TestReportRestore_InternalError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockModeration(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	svc.EXPECT().
		Restore(gomock.Any(), gomock.Any(), id).
		Return(nil, errors.New("pg down")).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reports/"+id.String()+"/restore", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ReportRestore(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d", http.StatusInternalServerError, rr.Code)
	}
}
