package partnership_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ankitkumar028/rider-fleet/internal/partnership"
	partnershiperrors "github.com/Ankitkumar028/rider-fleet/internal/partnership/errors"
	"github.com/Ankitkumar028/rider-fleet/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakePartnershipService struct {
	listFn       func(ctx context.Context) ([]partnership.PartnershipResponse, error)
	publicListFn func(ctx context.Context) ([]partnership.PartnershipResponse, error)
	createFn     func(ctx context.Context, req partnership.CreatePartnershipRequest) (partnership.PartnershipResponse, error)
	updateFn     func(ctx context.Context, id string, req partnership.UpdatePartnershipRequest) (partnership.PartnershipResponse, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (f *fakePartnershipService) List(ctx context.Context) ([]partnership.PartnershipResponse, error) {
	return f.listFn(ctx)
}
func (f *fakePartnershipService) PublicList(ctx context.Context) ([]partnership.PartnershipResponse, error) {
	return f.publicListFn(ctx)
}
func (f *fakePartnershipService) Create(ctx context.Context, req partnership.CreatePartnershipRequest) (partnership.PartnershipResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakePartnershipService) Update(ctx context.Context, id string, req partnership.UpdatePartnershipRequest) (partnership.PartnershipResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakePartnershipService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestPartnershipHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	t.Run("string order is coerced", func(t *testing.T) {
		svc := &fakePartnershipService{
			createFn: func(ctx context.Context, req partnership.CreatePartnershipRequest) (partnership.PartnershipResponse, error) {
				assert.Equal(t, 7, int(req.Order))
				return partnership.PartnershipResponse{ID: "p1", Name: req.Name, Order: int(req.Order)}, nil
			},
		}
		h := partnership.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/admin/partnerships",
			strings.NewReader(`{"name":"Delhivery","order":"7"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"order":7`)
	})

	t.Run("name required", func(t *testing.T) {
		h := partnership.NewHandler(&fakePartnershipService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/admin/partnerships", strings.NewReader(`{"url":"https://x"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})
}

func TestPartnershipHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deleted", func(t *testing.T) {
		svc := &fakePartnershipService{
			deleteFn: func(ctx context.Context, id string) error {
				assert.Equal(t, "p1", id)
				return nil
			},
		}
		h := partnership.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "p1"}}
		c.Request = httptest.NewRequest(http.MethodDelete, "/admin/partnerships/p1", nil)
		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing row", func(t *testing.T) {
		svc := &fakePartnershipService{
			deleteFn: func(ctx context.Context, id string) error {
				return partnershiperrors.ErrPartnershipNotFound
			},
		}
		h := partnership.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "missing"}}
		c.Request = httptest.NewRequest(http.MethodDelete, "/admin/partnerships/missing", nil)
		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPartnershipHandler_PublicList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePartnershipService{
		publicListFn: func(ctx context.Context) ([]partnership.PartnershipResponse, error) {
			return []partnership.PartnershipResponse{{ID: "p1", Name: "Delhivery", Visible: true}}, nil
		},
	}
	h := partnership.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/public/partnerships", nil)
	h.PublicList(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Delhivery"`)
}
