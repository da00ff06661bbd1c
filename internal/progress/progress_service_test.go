package progress_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	kafkaMock "github.com/Ankitkumar028/rider-fleet/internal/messaging/kafka/mock"
	"github.com/Ankitkumar028/rider-fleet/internal/progress"
	progresserrors "github.com/Ankitkumar028/rider-fleet/internal/progress/errors"
	progressMock "github.com/Ankitkumar028/rider-fleet/internal/progress/mock"
	"github.com/Ankitkumar028/rider-fleet/internal/rider"
	riderMock "github.com/Ankitkumar028/rider-fleet/internal/rider/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlDB   *sql.DB
	sqlMock sqlmock.Sqlmock
	service progress.Service
	repo    *progressMock.MockRepository
	riders  *riderMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	sqlDB, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	repo := progressMock.NewMockRepository(ctrl)
	riders := riderMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := progress.NewService(gdb, repo, riders, outbox)

	return &serviceDeps{
		sqlDB:   sqlDB,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		riders:  riders,
		outbox:  outbox,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestProgressService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts a new row with a parsed day date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.sqlDB.Close()

		riderID := uuid.New()
		deps.riders.EXPECT().GetByID(ctx, riderID).
			Return(&rider.RiderProfile{ID: riderID}, nil)

		expectTx(t, deps.sqlMock, true)

		var saved progress.ProgressRecord
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, r *progress.ProgressRecord) error {
				saved = *r
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Record(ctx, progress.RecordProgressRequest{
			RiderID:             riderID.String(),
			Date:                "2026-08-01",
			DeliveriesCompleted: 12,
			HoursWorked:         6.5,
			Earnings:            840,
		})
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), saved.Date)
		assert.Equal(t, 12, saved.DeliveriesCompleted)
		assert.Equal(t, 840.0, resp.Earnings)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing date defaults to now, numbers to zero", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.sqlDB.Close()

		riderID := uuid.New()
		deps.riders.EXPECT().GetByID(ctx, riderID).
			Return(&rider.RiderProfile{ID: riderID}, nil)

		expectTx(t, deps.sqlMock, true)

		var saved progress.ProgressRecord
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, r *progress.ProgressRecord) error {
				saved = *r
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.Record(ctx, progress.RecordProgressRequest{RiderID: riderID.String()})
		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now(), saved.Date, time.Minute)
		assert.Zero(t, saved.DeliveriesCompleted)
		assert.Zero(t, saved.Earnings)
	})

	t.Run("unknown rider is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.sqlDB.Close()

		riderID := uuid.New()
		deps.riders.EXPECT().GetByID(ctx, riderID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Record(ctx, progress.RecordProgressRequest{RiderID: riderID.String()})
		assert.ErrorIs(t, err, progresserrors.ErrRiderNotFound)
	})

	t.Run("malformed rider id rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.sqlDB.Close()

		_, err := deps.service.Record(ctx, progress.RecordProgressRequest{RiderID: "nope"})
		assert.ErrorIs(t, err, progresserrors.ErrInvalidRiderRef)
	})

	t.Run("unparseable date rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.sqlDB.Close()

		_, err := deps.service.Record(ctx, progress.RecordProgressRequest{
			RiderID: uuid.New().String(),
			Date:    "01/08/2026",
		})
		assert.ErrorIs(t, err, progresserrors.ErrInvalidDate)
	})
}

func TestProgressService_SelfView(t *testing.T) {
	ctx := context.Background()

	t.Run("summary covers the trailing 30 days only", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.sqlDB.Close()

		riderID := uuid.New()
		now := time.Now()
		records := []progress.ProgressRecord{
			{ID: uuid.New(), RiderProfileID: riderID, Date: now.AddDate(0, 0, -5), DeliveriesCompleted: 3, Earnings: 30},
			{ID: uuid.New(), RiderProfileID: riderID, Date: now.AddDate(0, 0, -20), DeliveriesCompleted: 2, Earnings: 20},
			{ID: uuid.New(), RiderProfileID: riderID, Date: now.AddDate(0, 0, -40), DeliveriesCompleted: 1, Earnings: 10},
		}

		deps.repo.EXPECT().FindByRider(ctx, riderID).Return(records, nil)
		deps.repo.EXPECT().
			SummarizeSince(ctx, riderID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id uuid.UUID, since time.Time) (progress.ProgressSummary, error) {
				assert.WithinDuration(t, now.AddDate(0, 0, -30), since, time.Minute)

				var summary progress.ProgressSummary
				for _, r := range records {
					if !r.Date.Before(since) {
						summary.TotalDeliveries += int64(r.DeliveriesCompleted)
						summary.TotalEarnings += r.Earnings
					}
				}
				return summary, nil
			})

		resp, err := deps.service.SelfView(ctx, riderID.String())
		assert.NoError(t, err)
		assert.Len(t, resp.Items, 3)
		assert.Equal(t, int64(5), resp.Summary.TotalDeliveries)
		assert.Equal(t, 50.0, resp.Summary.TotalEarnings)
	})

	t.Run("empty ledger yields a zero summary", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.sqlDB.Close()

		riderID := uuid.New()
		deps.repo.EXPECT().FindByRider(ctx, riderID).Return(nil, nil)
		deps.repo.EXPECT().SummarizeSince(ctx, riderID, gomock.Any()).
			Return(progress.ProgressSummary{}, nil)

		resp, err := deps.service.SelfView(ctx, riderID.String())
		assert.NoError(t, err)
		assert.Empty(t, resp.Items)
		assert.Zero(t, resp.Summary.TotalDeliveries)
		assert.Zero(t, resp.Summary.TotalEarnings)
	})

	t.Run("identity not resolvable to a profile", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.sqlDB.Close()

		_, err := deps.service.SelfView(ctx, "")
		assert.ErrorIs(t, err, progresserrors.ErrProfileNotFound)
	})
}
