package progress_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ankitkumar028/rider-fleet/internal/progress"
	"github.com/Ankitkumar028/rider-fleet/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeProgressService struct {
	recordFn   func(ctx context.Context, req progress.RecordProgressRequest) (progress.ProgressResponse, error)
	selfViewFn func(ctx context.Context, riderID string) (progress.SelfProgressResponse, error)
}

func (f *fakeProgressService) Record(ctx context.Context, req progress.RecordProgressRequest) (progress.ProgressResponse, error) {
	return f.recordFn(ctx, req)
}
func (f *fakeProgressService) SelfView(ctx context.Context, riderID string) (progress.SelfProgressResponse, error) {
	return f.selfViewFn(ctx, riderID)
}

func TestProgressHandler_Record(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	t.Run("created", func(t *testing.T) {
		svc := &fakeProgressService{
			recordFn: func(ctx context.Context, req progress.RecordProgressRequest) (progress.ProgressResponse, error) {
				assert.Equal(t, 12, req.DeliveriesCompleted)
				return progress.ProgressResponse{ID: "rec-1", RiderID: req.RiderID}, nil
			},
		}
		h := progress.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/admin/progress",
			strings.NewReader(`{"riderId":"0f3a0c9e-0000-0000-0000-000000000001","deliveriesCompleted":12}`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Record(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"rec-1"`)
	})

	t.Run("riderId required", func(t *testing.T) {
		h := progress.NewHandler(&fakeProgressService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/admin/progress", strings.NewReader(`{"earnings":100}`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Record(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})
}

func TestProgressHandler_SelfView(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeProgressService{
		selfViewFn: func(ctx context.Context, riderID string) (progress.SelfProgressResponse, error) {
			assert.Equal(t, "profile-from-token", riderID)
			return progress.SelfProgressResponse{
				Items:   []progress.ProgressResponse{},
				Summary: progress.ProgressSummary{TotalDeliveries: 5, TotalEarnings: 50},
			}, nil
		},
	}
	h := progress.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("rider_id", "profile-from-token")
	// A caller-supplied id must be ignored.
	c.Request = httptest.NewRequest(http.MethodGet, "/rider/progress?riderId=someone-else", nil)
	h.SelfView(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalEarnings":50`)
}
