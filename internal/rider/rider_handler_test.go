package rider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ankitkumar028/rider-fleet/internal/rider"
	ridererrors "github.com/Ankitkumar028/rider-fleet/internal/rider/errors"
	"github.com/Ankitkumar028/rider-fleet/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRiderService struct {
	listFn      func(ctx context.Context) ([]rider.RiderResponse, error)
	createFn    func(ctx context.Context, req rider.CreateRiderRequest) (rider.RiderResponse, error)
	updateFn    func(ctx context.Context, id string, req rider.UpdateRiderRequest) (rider.RiderResponse, error)
	statsFn     func(ctx context.Context) (rider.FleetStatsResponse, error)
	exportCSVFn func(ctx context.Context) (string, error)
	meFn        func(ctx context.Context, riderID string) (rider.RiderResponse, error)
}

func (f *fakeRiderService) List(ctx context.Context) ([]rider.RiderResponse, error) {
	return f.listFn(ctx)
}
func (f *fakeRiderService) Create(ctx context.Context, req rider.CreateRiderRequest) (rider.RiderResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeRiderService) Update(ctx context.Context, id string, req rider.UpdateRiderRequest) (rider.RiderResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeRiderService) Stats(ctx context.Context) (rider.FleetStatsResponse, error) {
	return f.statsFn(ctx)
}
func (f *fakeRiderService) ExportCSV(ctx context.Context) (string, error) {
	return f.exportCSVFn(ctx)
}
func (f *fakeRiderService) Me(ctx context.Context, riderID string) (rider.RiderResponse, error) {
	return f.meFn(ctx, riderID)
}

func TestRiderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	t.Run("created", func(t *testing.T) {
		svc := &fakeRiderService{
			createFn: func(ctx context.Context, req rider.CreateRiderRequest) (rider.RiderResponse, error) {
				assert.Equal(t, "rider1", req.Username)
				return rider.RiderResponse{ID: "abc", FullName: req.FullName, Username: req.Username}, nil
			},
		}
		h := rider.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/admin/riders",
			strings.NewReader(`{"username":"rider1","fullName":"Asha Rao","phone":"9876543210","vehicleNumber":"DL-01-1234"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"fullName":"Asha Rao"`)
	})

	t.Run("missing required fields", func(t *testing.T) {
		h := rider.NewHandler(&fakeRiderService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/admin/riders", strings.NewReader(`{"username":"rider1"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})

	t.Run("conflict surfaces as 400", func(t *testing.T) {
		svc := &fakeRiderService{
			createFn: func(ctx context.Context, req rider.CreateRiderRequest) (rider.RiderResponse, error) {
				return rider.RiderResponse{}, ridererrors.ErrUsernameTaken
			},
		}
		h := rider.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/admin/riders",
			strings.NewReader(`{"username":"rider1","fullName":"A","phone":"1","vehicleNumber":"V"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeConflict)
	})
}

func TestRiderHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		svc := &fakeRiderService{
			updateFn: func(ctx context.Context, id string, req rider.UpdateRiderRequest) (rider.RiderResponse, error) {
				return rider.RiderResponse{}, ridererrors.ErrRiderNotFound
			},
		}
		h := rider.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "missing"}}
		c.Request = httptest.NewRequest(http.MethodPut, "/admin/riders/missing", strings.NewReader(`{"status":"Active"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRiderHandler_ExportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeRiderService{
		exportCSVFn: func(ctx context.Context) (string, error) {
			return "Full Name,Phone,Vehicle Number,Status,Company,Username", nil
		},
	}
	h := rider.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/riders/export", nil)
	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="riders.csv"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
}

func TestRiderHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeRiderService{
		meFn: func(ctx context.Context, riderID string) (rider.RiderResponse, error) {
			assert.Equal(t, "profile-from-token", riderID)
			return rider.RiderResponse{ID: riderID, Username: "rider1"}, nil
		},
	}
	h := rider.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("rider_id", "profile-from-token")
	c.Request = httptest.NewRequest(http.MethodGet, "/rider/me?id=someone-else", nil)
	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"rider1"`)
}
