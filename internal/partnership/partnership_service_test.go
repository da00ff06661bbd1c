package partnership_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Ankitkumar028/rider-fleet/internal/partnership"
	partnershiperrors "github.com/Ankitkumar028/rider-fleet/internal/partnership/errors"
	partnershipMock "github.com/Ankitkumar028/rider-fleet/internal/partnership/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestFlexInt_Coercion(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"number", `{"order":7}`, 7},
		{"numeric string", `{"order":"7"}`, 7},
		{"non-numeric string", `{"order":"low"}`, 0},
		{"null", `{"order":null}`, 0},
		{"absent", `{}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req partnership.CreatePartnershipRequest
			assert.NoError(t, json.Unmarshal([]byte(tc.in), &req))
			assert.Equal(t, tc.want, int(req.Order))
		})
	}
}

func TestPartnershipService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults visible true and order zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := partnershipMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := partnership.NewService(repo, rdb)

		var saved partnership.Partnership
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *partnership.Partnership) error {
				saved = *p
				return nil
			})
		redisMock.ExpectDel(partnership.PublicListCacheKey).SetVal(1)

		resp, err := svc.Create(ctx, partnership.CreatePartnershipRequest{Name: "Delhivery"})
		assert.NoError(t, err)
		assert.True(t, saved.Visible)
		assert.Zero(t, saved.SortOrder)
		assert.True(t, resp.Visible)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := partnershipMock.NewMockRepository(ctrl)
		svc := partnership.NewService(repo, nil)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_partnership_name"})

		_, err := svc.Create(ctx, partnership.CreatePartnershipRequest{Name: "Delhivery"})
		assert.ErrorIs(t, err, partnershiperrors.ErrPartnershipNameTaken)
	})
}

func TestPartnershipService_Update(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	repo := partnershipMock.NewMockRepository(ctrl)
	svc := partnership.NewService(repo, nil)

	existing := &partnership.Partnership{ID: uuid.New(), Name: "Delhivery", Visible: true}
	repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil)

	var saved partnership.Partnership
	repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *partnership.Partnership) error {
			saved = *p
			return nil
		})

	hidden := false
	order := partnership.FlexInt(3)
	resp, err := svc.Update(ctx, existing.ID.String(), partnership.UpdatePartnershipRequest{
		Visible: &hidden,
		Order:   &order,
	})
	assert.NoError(t, err)
	assert.False(t, saved.Visible)
	assert.Equal(t, 3, saved.SortOrder)
	assert.Equal(t, "Delhivery", saved.Name)
	assert.Equal(t, 3, resp.Order)
}

func TestPartnershipService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates the public cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := partnershipMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := partnership.NewService(repo, rdb)

		id := uuid.New()
		repo.EXPECT().Delete(ctx, id).Return(nil)
		redisMock.ExpectDel(partnership.PublicListCacheKey).SetVal(1)

		assert.NoError(t, svc.Delete(ctx, id.String()))
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("missing row is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := partnershipMock.NewMockRepository(ctrl)
		svc := partnership.NewService(repo, nil)

		id := uuid.New()
		repo.EXPECT().Delete(ctx, id).Return(gorm.ErrRecordNotFound)

		err := svc.Delete(ctx, id.String())
		assert.ErrorIs(t, err, partnershiperrors.ErrPartnershipNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := partnershipMock.NewMockRepository(ctrl)
		svc := partnership.NewService(repo, nil)

		err := svc.Delete(ctx, "nope")
		assert.ErrorIs(t, err, partnershiperrors.ErrInvalidPartnershipID)
	})
}

func TestPartnershipService_PublicList(t *testing.T) {
	ctx := context.Background()

	t.Run("cold cache reads storage and fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := partnershipMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := partnership.NewService(repo, rdb)

		repo.EXPECT().FindAll(ctx).Return([]partnership.Partnership{
			{ID: uuid.New(), Name: "Delhivery", Visible: true},
		}, nil)

		redisMock.ExpectGet(partnership.PublicListCacheKey).RedisNil()
		redisMock.Regexp().ExpectSet(partnership.PublicListCacheKey, `.*`, 60*time.Second).SetVal("OK")

		resp, err := svc.PublicList(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Delhivery", resp[0].Name)
	})

	t.Run("warm cache skips storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := partnershipMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := partnership.NewService(repo, rdb)

		cached, _ := json.Marshal([]partnership.PartnershipResponse{{ID: "1", Name: "Delhivery"}})
		redisMock.ExpectGet(partnership.PublicListCacheKey).SetVal(string(cached))

		resp, err := svc.PublicList(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
