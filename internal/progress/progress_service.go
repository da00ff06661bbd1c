package progress

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Ankitkumar028/rider-fleet/internal/events"
	"github.com/Ankitkumar028/rider-fleet/internal/messaging/kafka"
	progresserrors "github.com/Ankitkumar028/rider-fleet/internal/progress/errors"
	"github.com/Ankitkumar028/rider-fleet/internal/rider"
	"github.com/Ankitkumar028/rider-fleet/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// summaryWindow is the rolling window the rider portal summarizes over.
const summaryWindow = 30 * 24 * time.Hour

//go:generate mockgen -source=progress_service.go -destination=mock/progress_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, req RecordProgressRequest) (ProgressResponse, error)
	SelfView(ctx context.Context, riderID string) (SelfProgressResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	riders rider.Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(
	db *gorm.DB,
	repo Repository,
	riders rider.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("progress.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("progress.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		riders: riders,
		outbox: outbox,
		logger: l,
		now:    time.Now,
	}
}

// Record appends one ledger entry. Existing records for the same rider and
// date are left alone; every call inserts a new row.
func (s *service) Record(ctx context.Context, req RecordProgressRequest) (ProgressResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	riderID, err := uuid.Parse(req.RiderID)
	if err != nil {
		return ProgressResponse{}, progresserrors.ErrInvalidRiderRef
	}

	date, err := s.parseDate(req.Date)
	if err != nil {
		return ProgressResponse{}, err
	}

	if _, err := s.riders.GetByID(ctx, riderID); err != nil {
		return ProgressResponse{}, mapRepositoryError(err)
	}

	record := &ProgressRecord{
		ID:                  uuid.New(),
		RiderProfileID:      riderID,
		Date:                date,
		DeliveriesCompleted: req.DeliveriesCompleted,
		HoursWorked:         req.HoursWorked,
		Earnings:            req.Earnings,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, record); err != nil {
			return err
		}

		event := events.ProgressRecordedEvent{
			EventType:  "progress_recorded",
			RequestID:  rid,
			RiderID:    riderID.String(),
			ProgressID: record.ID.String(),
			Date:       record.Date,
			OccurredAt: s.now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "progress",
			AggregateID:   record.ID.String(),
			EventType:     event.EventType,
			Topic:         events.ProgressRecordedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		s.logger.Error("record progress persist failed",
			zap.String("request_id", rid),
			zap.String("rider_id", riderID.String()),
			zap.Error(err),
		)
		return ProgressResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("progress recorded",
		zap.String("request_id", rid),
		zap.String("rider_id", riderID.String()),
		zap.String("progress_id", record.ID.String()),
	)

	return toResponse(*record), nil
}

// SelfView returns the caller's full history plus the rolling 30-day summary.
// The rider id is taken from the authenticated token only.
func (s *service) SelfView(ctx context.Context, riderID string) (SelfProgressResponse, error) {
	uid, err := uuid.Parse(riderID)
	if err != nil {
		return SelfProgressResponse{}, progresserrors.ErrProfileNotFound
	}

	records, err := s.repo.FindByRider(ctx, uid)
	if err != nil {
		s.logger.Error("self progress list failed", zap.String("rider_id", riderID), zap.Error(err))
		return SelfProgressResponse{}, mapRepositoryError(err)
	}

	since := s.now().Add(-summaryWindow)
	summary, err := s.repo.SummarizeSince(ctx, uid, since)
	if err != nil {
		s.logger.Error("self progress summary failed", zap.String("rider_id", riderID), zap.Error(err))
		return SelfProgressResponse{}, mapRepositoryError(err)
	}

	items := make([]ProgressResponse, len(records))
	for i, r := range records {
		items[i] = toResponse(r)
	}
	return SelfProgressResponse{Items: items, Summary: summary}, nil
}

// parseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates, which
// land at UTC midnight. A missing date means "now".
func (s *service) parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return s.now().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, progresserrors.ErrInvalidDate
}

func toResponse(r ProgressRecord) ProgressResponse {
	return ProgressResponse{
		ID:                  r.ID.String(),
		RiderID:             r.RiderProfileID.String(),
		Date:                r.Date,
		DeliveriesCompleted: r.DeliveriesCompleted,
		HoursWorked:         r.HoursWorked,
		Earnings:            r.Earnings,
	}
}
