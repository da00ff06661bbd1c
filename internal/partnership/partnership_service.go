package partnership

import (
	"context"
	"encoding/json"
	"time"

	partnershiperrors "github.com/Ankitkumar028/rider-fleet/internal/partnership/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// PublicListCacheKey backs the marketing page; invalidated on every
	// partnership mutation, TTL as a backstop against missed invalidations.
	PublicListCacheKey = "fleet:partnerships:public"
	publicListCacheTTL = 60 * time.Second
)

//go:generate mockgen -source=partnership_service.go -destination=mock/partnership_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]PartnershipResponse, error)
	PublicList(ctx context.Context) ([]PartnershipResponse, error)
	Create(ctx context.Context, req CreatePartnershipRequest) (PartnershipResponse, error)
	Update(ctx context.Context, id string, req UpdatePartnershipRequest) (PartnershipResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("partnership.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("partnership.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) List(ctx context.Context) ([]PartnershipResponse, error) {
	partnerships, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list partnerships failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(partnerships), nil
}

// PublicList serves the unauthenticated marketing endpoint through the cache;
// singleflight keeps a cold cache from stampeding the database.
func (s *service) PublicList(ctx context.Context) ([]PartnershipResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, PublicListCacheKey).Result(); err == nil {
			var resp []PartnershipResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(PublicListCacheKey, func() (interface{}, error) {
		resp, err := s.List(ctx)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, PublicListCacheKey, data, publicListCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]PartnershipResponse), nil
}

func (s *service) Create(ctx context.Context, req CreatePartnershipRequest) (PartnershipResponse, error) {
	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	p := &Partnership{
		ID:        uuid.New(),
		Name:      req.Name,
		URL:       req.URL,
		LogoURL:   req.LogoURL,
		Visible:   visible,
		SortOrder: int(req.Order),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create partnership failed", zap.String("name", req.Name), zap.Error(err))
		return PartnershipResponse{}, mapRepositoryError(err)
	}

	s.invalidatePublicCache(ctx)
	s.logger.Info("create partnership success", zap.String("partnership_id", p.ID.String()))
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePartnershipRequest) (PartnershipResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return PartnershipResponse{}, partnershiperrors.ErrInvalidPartnershipID
	}

	p, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return PartnershipResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.URL != nil {
		p.URL = *req.URL
	}
	if req.LogoURL != nil {
		p.LogoURL = *req.LogoURL
	}
	if req.Visible != nil {
		p.Visible = *req.Visible
	}
	if req.Order != nil {
		p.SortOrder = int(*req.Order)
	}

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update partnership failed", zap.String("partnership_id", id), zap.Error(err))
		return PartnershipResponse{}, mapRepositoryError(err)
	}

	s.invalidatePublicCache(ctx)
	s.logger.Info("update partnership success", zap.String("partnership_id", id))
	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return partnershiperrors.ErrInvalidPartnershipID
	}

	if err := s.repo.Delete(ctx, uid); err != nil {
		s.logger.Error("delete partnership failed", zap.String("partnership_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidatePublicCache(ctx)
	s.logger.Info("delete partnership success", zap.String("partnership_id", id))
	return nil
}

func (s *service) invalidatePublicCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, PublicListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate partnership cache",
			zap.String("key", PublicListCacheKey),
			zap.Error(err),
		)
	}
}

func mapToResponse(p Partnership) PartnershipResponse {
	return PartnershipResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		URL:       p.URL,
		LogoURL:   p.LogoURL,
		Visible:   p.Visible,
		Order:     p.SortOrder,
		CreatedAt: p.CreatedAt,
	}
}

func mapToListResponse(partnerships []Partnership) []PartnershipResponse {
	res := make([]PartnershipResponse, len(partnerships))
	for i, p := range partnerships {
		res[i] = mapToResponse(p)
	}
	return res
}
