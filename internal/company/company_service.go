package company

import (
	"context"

	companyerrors "github.com/Ankitkumar028/rider-fleet/internal/company/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]CompanyResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list companies failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(companies), nil
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	comp := &Company{
		ID:      uuid.New(),
		Name:    req.Name,
		LogoURL: req.LogoURL,
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		s.logger.Error("create company failed", zap.String("name", req.Name), zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create company success", zap.String("company_id", comp.ID.String()))
	return mapToResponse(*comp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		comp.Name = *req.Name
	}
	if req.LogoURL != nil {
		comp.LogoURL = *req.LogoURL
	}

	if err := s.repo.Update(ctx, comp); err != nil {
		s.logger.Error("update company failed", zap.String("company_id", id), zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update company success", zap.String("company_id", id))
	return mapToResponse(*comp), nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		LogoURL:   c.LogoURL,
		CreatedAt: c.CreatedAt,
	}
}

func mapToListResponse(companies []Company) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		res[i] = mapToResponse(c)
	}
	return res
}
