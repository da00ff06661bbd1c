package rider

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/Ankitkumar028/rider-fleet/internal/auth"
	"github.com/Ankitkumar028/rider-fleet/internal/company"
	"github.com/Ankitkumar028/rider-fleet/internal/events"
	"github.com/Ankitkumar028/rider-fleet/internal/messaging/kafka"
	ridererrors "github.com/Ankitkumar028/rider-fleet/internal/rider/errors"
	"github.com/Ankitkumar028/rider-fleet/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	// StatsCacheKey holds the serialized dashboard stats; invalidated on
	// every rider mutation, short TTL as a backstop.
	StatsCacheKey   = "fleet:stats"
	statsCacheTTL   = 30 * time.Second
	defaultPassword = "rider123"
)

//go:generate mockgen -source=rider_service.go -destination=mock/rider_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]RiderResponse, error)
	Create(ctx context.Context, req CreateRiderRequest) (RiderResponse, error)
	Update(ctx context.Context, id string, req UpdateRiderRequest) (RiderResponse, error)
	Stats(ctx context.Context) (FleetStatsResponse, error)
	ExportCSV(ctx context.Context) (string, error)
	Me(ctx context.Context, riderID string) (RiderResponse, error)
}

type service struct {
	db          *gorm.DB
	repo        Repository
	credentials auth.Repository
	companies   company.Repository
	outbox      kafka.OutboxRepository
	rdb         *redis.Client
	sf          *singleflight.Group
	logger      *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	credentials auth.Repository,
	companies company.Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("rider.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rider.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		credentials: credentials,
		companies:   companies,
		outbox:      outbox,
		rdb:         rdb,
		sf:          &singleflight.Group{},
		logger:      l,
	}
}

// List returns every profile with its company and credential merged in. The
// join is explicit: read the profiles, batch-fetch the referenced rows by id,
// merge. Assumes small fleet size, so no pagination.
func (s *service) List(ctx context.Context) ([]RiderResponse, error) {
	profiles, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list riders failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	companyIDs := make([]uuid.UUID, 0, len(profiles))
	credentialIDs := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		if p.CompanyID != nil {
			companyIDs = append(companyIDs, *p.CompanyID)
		}
		credentialIDs = append(credentialIDs, p.CredentialID)
	}

	companies, err := s.companies.GetByIDs(ctx, companyIDs)
	if err != nil {
		s.logger.Error("list riders company join failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	credentials, err := s.credentials.GetByIDs(ctx, credentialIDs)
	if err != nil {
		s.logger.Error("list riders credential join failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	companyByID := make(map[uuid.UUID]company.Company, len(companies))
	for _, c := range companies {
		companyByID[c.ID] = c
	}
	credentialByID := make(map[uuid.UUID]auth.Credential, len(credentials))
	for _, c := range credentials {
		credentialByID[c.ID] = c
	}

	res := make([]RiderResponse, len(profiles))
	for i, p := range profiles {
		res[i] = mergeResponse(p, companyByID, credentialByID)
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, req CreateRiderRequest) (RiderResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create rider requested",
		zap.String("request_id", rid),
		zap.String("username", req.Username),
	)

	status := req.Status
	if status == "" {
		status = StatusInactive
	}
	if !ValidStatus(status) {
		return RiderResponse{}, ridererrors.ErrInvalidStatus
	}

	var companyID *uuid.UUID
	if req.CurrentAssignment != "" {
		cid, err := uuid.Parse(req.CurrentAssignment)
		if err != nil {
			return RiderResponse{}, ridererrors.ErrInvalidAssignment
		}
		companyID = &cid
	}

	// Optimistic pre-check; the credentials table constraint is the real
	// enforcement when two creates race.
	exists, err := s.credentials.ExistsByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error("create rider username check failed", zap.String("request_id", rid), zap.Error(err))
		return RiderResponse{}, mapRepositoryError(err)
	}
	if exists {
		return RiderResponse{}, ridererrors.ErrUsernameTaken
	}

	password := req.DefaultPassword
	if password == "" {
		password = defaultPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return RiderResponse{}, err
	}

	cred := &auth.Credential{
		ID:       uuid.New(),
		Username: req.Username,
		Password: string(hashed),
		Role:     auth.RoleRider,
	}
	profile := &RiderProfile{
		ID:            uuid.New(),
		CredentialID:  cred.ID,
		FullName:      req.FullName,
		Phone:         req.Phone,
		VehicleNumber: req.VehicleNumber,
		Status:        status,
		CompanyID:     companyID,
	}

	// Credential, profile, back-link and outbox row commit atomically: a
	// failed profile insert must not leave an orphan credential behind.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.credentials.WithTx(tx).Create(ctx, cred); err != nil {
			return err
		}
		if err := s.repo.WithTx(tx).Create(ctx, profile); err != nil {
			return err
		}
		if err := s.credentials.WithTx(tx).LinkRiderProfile(ctx, cred.ID, profile.ID); err != nil {
			return err
		}

		event := events.RiderCreatedEvent{
			EventType:    "rider_created",
			RequestID:    rid,
			RiderID:      profile.ID.String(),
			CredentialID: cred.ID.String(),
			OccurredAt:   time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "rider",
			AggregateID:   profile.ID.String(),
			EventType:     event.EventType,
			Topic:         events.RiderCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		s.logger.Error("create rider persist failed", zap.String("request_id", rid), zap.Error(err))
		return RiderResponse{}, mapRepositoryError(err)
	}

	s.invalidateStatsCache(ctx)
	s.logger.Info("create rider success",
		zap.String("request_id", rid),
		zap.String("rider_id", profile.ID.String()),
	)

	return s.joinOne(ctx, profile, cred)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRiderRequest) (RiderResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return RiderResponse{}, ridererrors.ErrInvalidRiderID
	}

	profile, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return RiderResponse{}, mapRepositoryError(err)
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.VehicleNumber != nil {
		profile.VehicleNumber = *req.VehicleNumber
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return RiderResponse{}, ridererrors.ErrInvalidStatus
		}
		profile.Status = *req.Status
	}
	if req.CurrentAssignment != nil {
		if *req.CurrentAssignment == "" {
			profile.CompanyID = nil
		} else {
			cid, err := uuid.Parse(*req.CurrentAssignment)
			if err != nil {
				return RiderResponse{}, ridererrors.ErrInvalidAssignment
			}
			profile.CompanyID = &cid
		}
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		s.logger.Error("update rider persist failed", zap.String("rider_id", id), zap.Error(err))
		return RiderResponse{}, mapRepositoryError(err)
	}

	s.invalidateStatsCache(ctx)
	s.logger.Info("update rider success", zap.String("rider_id", id))

	cred, err := s.credentials.GetByID(ctx, profile.CredentialID)
	if err != nil {
		return RiderResponse{}, mapRepositoryError(err)
	}
	return s.joinOne(ctx, profile, cred)
}

// Stats serves the dashboard aggregation through a short-lived cache;
// singleflight collapses concurrent recomputations when the cache is cold.
func (s *service) Stats(ctx context.Context) (FleetStatsResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, StatsCacheKey).Result(); err == nil {
			var resp FleetStatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(StatsCacheKey, func() (interface{}, error) {
		resp, err := s.computeStats(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, StatsCacheKey, data, statsCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return FleetStatsResponse{}, err
	}

	return v.(FleetStatsResponse), nil
}

func (s *service) computeStats(ctx context.Context) (FleetStatsResponse, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("stats count failed", zap.Error(err))
		return FleetStatsResponse{}, mapRepositoryError(err)
	}

	groups, err := s.repo.GroupByCompany(ctx)
	if err != nil {
		s.logger.Error("stats grouping failed", zap.Error(err))
		return FleetStatsResponse{}, mapRepositoryError(err)
	}

	companyIDs := make([]uuid.UUID, 0, len(groups))
	for _, g := range groups {
		if g.CompanyID != nil {
			companyIDs = append(companyIDs, *g.CompanyID)
		}
	}
	companies, err := s.companies.GetByIDs(ctx, companyIDs)
	if err != nil {
		s.logger.Error("stats company resolve failed", zap.Error(err))
		return FleetStatsResponse{}, mapRepositoryError(err)
	}
	nameByID := make(map[uuid.UUID]string, len(companies))
	for _, c := range companies {
		nameByID[c.ID] = c.Name
	}

	perCompany := make([]CompanyCount, 0, len(groups))
	for _, g := range groups {
		if g.CompanyID == nil {
			// The unassigned row appears only when the group is non-empty.
			if g.Count > 0 {
				perCompany = append(perCompany, CompanyCount{Company: "Unassigned", Count: g.Count})
			}
			continue
		}
		name, ok := nameByID[*g.CompanyID]
		if !ok {
			// Companies are never deleted, but stay defensive.
			name = "Unknown"
		}
		perCompany = append(perCompany, CompanyCount{Company: name, Count: g.Count})
	}

	// Deterministic row order: descending count, then company name.
	sort.Slice(perCompany, func(i, j int) bool {
		if perCompany[i].Count != perCompany[j].Count {
			return perCompany[i].Count > perCompany[j].Count
		}
		return perCompany[i].Company < perCompany[j].Company
	})

	return FleetStatsResponse{
		TotalRiders:    counts.Total,
		ActiveRiders:   counts.Active,
		InactiveRiders: counts.Inactive,
		PerCompany:     perCompany,
	}, nil
}

// Me returns the caller's own profile. The rider id comes exclusively from
// the authenticated token, never from a request parameter.
func (s *service) Me(ctx context.Context, riderID string) (RiderResponse, error) {
	uid, err := uuid.Parse(riderID)
	if err != nil {
		return RiderResponse{}, ridererrors.ErrRiderNotFound
	}

	profile, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return RiderResponse{}, mapRepositoryError(err)
	}

	cred, err := s.credentials.GetByID(ctx, profile.CredentialID)
	if err != nil {
		return RiderResponse{}, mapRepositoryError(err)
	}
	return s.joinOne(ctx, profile, cred)
}

func (s *service) invalidateStatsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, StatsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate stats cache",
			zap.String("key", StatsCacheKey),
			zap.Error(err),
		)
	}
}

// joinOne resolves one profile's company and builds the wire response.
func (s *service) joinOne(ctx context.Context, profile *RiderProfile, cred *auth.Credential) (RiderResponse, error) {
	resp := RiderResponse{
		ID:            profile.ID.String(),
		FullName:      profile.FullName,
		Phone:         profile.Phone,
		VehicleNumber: profile.VehicleNumber,
		Status:        profile.Status,
		Username:      cred.Username,
		CreatedAt:     profile.CreatedAt,
	}
	if profile.CompanyID != nil {
		if comp, err := s.companies.GetByID(ctx, *profile.CompanyID); err == nil {
			resp.CurrentAssignment = &AssignedCompany{
				ID:      comp.ID.String(),
				Name:    comp.Name,
				LogoURL: comp.LogoURL,
			}
		}
	}
	return resp, nil
}

func mergeResponse(
	p RiderProfile,
	companyByID map[uuid.UUID]company.Company,
	credentialByID map[uuid.UUID]auth.Credential,
) RiderResponse {
	resp := RiderResponse{
		ID:            p.ID.String(),
		FullName:      p.FullName,
		Phone:         p.Phone,
		VehicleNumber: p.VehicleNumber,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}
	if cred, ok := credentialByID[p.CredentialID]; ok {
		resp.Username = cred.Username
	}
	if p.CompanyID != nil {
		if comp, ok := companyByID[*p.CompanyID]; ok {
			resp.CurrentAssignment = &AssignedCompany{
				ID:      comp.ID.String(),
				Name:    comp.Name,
				LogoURL: comp.LogoURL,
			}
		}
	}
	return resp
}
