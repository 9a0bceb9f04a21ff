//go:build unit

package notifier_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"foodies-api/internal/notifier"
	"foodies-api/internal/pkg/clock"
	"foodies-api/internal/pkg/config"
	notifiermock "foodies-api/tests/mock/notifier"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 15, 18, 0, 0, 0, time.Local)

type workerFixture struct {
	worker *notifier.Worker
	store  *notifiermock.MockJobStore
	mailer *notifiermock.MockMailer
	clock  *clock.MockClock
}

func newWorkerFixture(t *testing.T) *workerFixture {
	ctrl := gomock.NewController(t)
	store := notifiermock.NewMockJobStore(ctrl)
	mailer := notifiermock.NewMockMailer(ctrl)
	clk := clock.NewMockClock(testNow)
	cfg := config.NotifyConfig{
		PollInterval:   time.Second,
		BatchSize:      50,
		PurgeRetention: 168 * time.Hour,
	}
	logger := slog.New(slog.DiscardHandler)

	return &workerFixture{
		worker: notifier.NewWorker(store, mailer, clk, cfg, logger),
		store:  store,
		mailer: mailer,
		clock:  clk,
	}
}

func makeJob(t *testing.T, kind string, reservedAt time.Time) (notifier.Job, notifier.ReservationPayload) {
	t.Helper()
	payload := notifier.ReservationPayload{
		ReservationID:  uuid.New(),
		UserName:       "Dana",
		UserEmail:      "dana@example.com",
		RestaurantID:   uuid.New(),
		RestaurantName: "Trattoria Nonna",
		TableID:        "T1",
		PartySize:      2,
		ReservedAt:     reservedAt,
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	return notifier.Job{
		ID:            uuid.New(),
		Kind:          kind,
		ReservationID: payload.ReservationID,
		Payload:       raw,
		RunAt:         testNow,
		Status:        notifier.StatusQueued,
		CreatedAt:     testNow,
	}, payload
}

// JSON decoding rebuilds ReservedAt with its own time.Location, so a
// DeepEqual on the whole struct would spuriously mismatch.
func payloadEq(want notifier.ReservationPayload) gomock.Matcher {
	return gomock.Cond(func(got notifier.ReservationPayload) bool {
		return got.ReservationID == want.ReservationID &&
			got.UserName == want.UserName &&
			got.UserEmail == want.UserEmail &&
			got.RestaurantID == want.RestaurantID &&
			got.RestaurantName == want.RestaurantName &&
			got.TableID == want.TableID &&
			got.PartySize == want.PartySize &&
			got.ReservedAt.Equal(want.ReservedAt)
	})
}

func TestWorker_Sweep_SendsConfirmation(t *testing.T) {
	f := newWorkerFixture(t)
	job, payload := makeJob(t, notifier.KindReservationConfirmation, testNow.Add(2*time.Hour))

	f.store.EXPECT().ClaimDue(gomock.Any(), testNow, 50).Return([]notifier.Job{job}, nil)
	f.mailer.EXPECT().SendReservationConfirmation(payloadEq(payload)).Return(nil)
	f.store.EXPECT().MarkStatus(gomock.Any(), job.ID, notifier.StatusSent, nil, testNow).Return(nil)

	require.NoError(t, f.worker.Sweep(context.Background()))
}

func TestWorker_Sweep_SendsReviewRequestOnSameDay(t *testing.T) {
	f := newWorkerFixture(t)
	reservedAt := testNow.Add(-3 * time.Hour)
	job, payload := makeJob(t, notifier.KindReviewRequest, reservedAt)

	f.store.EXPECT().ClaimDue(gomock.Any(), testNow, 50).Return([]notifier.Job{job}, nil)
	f.store.EXPECT().ReservationState(gomock.Any(), payload.ReservationID).
		Return(&notifier.ReservationState{Status: "confirmed", ReservedAt: reservedAt}, nil)
	f.mailer.EXPECT().SendReviewRequest(payloadEq(payload)).Return(nil)
	f.store.EXPECT().MarkStatus(gomock.Any(), job.ID, notifier.StatusSent, nil, testNow).Return(nil)

	require.NoError(t, f.worker.Sweep(context.Background()))
}

func TestWorker_Sweep_SkipsReviewRequestWhenReservationGone(t *testing.T) {
	f := newWorkerFixture(t)
	job, payload := makeJob(t, notifier.KindReviewRequest, testNow.Add(-3*time.Hour))

	f.store.EXPECT().ClaimDue(gomock.Any(), testNow, 50).Return([]notifier.Job{job}, nil)
	f.store.EXPECT().ReservationState(gomock.Any(), payload.ReservationID).Return(nil, nil)
	f.store.EXPECT().MarkStatus(gomock.Any(), job.ID, notifier.StatusSkipped, nil, testNow).Return(nil)

	require.NoError(t, f.worker.Sweep(context.Background()))
}

func TestWorker_Sweep_SkipsReviewRequestWhenDayMoved(t *testing.T) {
	f := newWorkerFixture(t)
	reservedAt := testNow.Add(-3 * time.Hour)
	job, payload := makeJob(t, notifier.KindReviewRequest, reservedAt)

	f.store.EXPECT().ClaimDue(gomock.Any(), testNow, 50).Return([]notifier.Job{job}, nil)
	f.store.EXPECT().ReservationState(gomock.Any(), payload.ReservationID).
		Return(&notifier.ReservationState{Status: "confirmed", ReservedAt: reservedAt.Add(48 * time.Hour)}, nil)
	f.store.EXPECT().MarkStatus(gomock.Any(), job.ID, notifier.StatusSkipped, nil, testNow).Return(nil)

	require.NoError(t, f.worker.Sweep(context.Background()))
}

func TestWorker_Sweep_MarksFailedOnMailerError(t *testing.T) {
	f := newWorkerFixture(t)
	job, payload := makeJob(t, notifier.KindReservationConfirmation, testNow.Add(2*time.Hour))

	f.store.EXPECT().ClaimDue(gomock.Any(), testNow, 50).Return([]notifier.Job{job}, nil)
	f.mailer.EXPECT().SendReservationConfirmation(payloadEq(payload)).Return(errSMTPDown)

	var recordedErr *string
	f.store.EXPECT().
		MarkStatus(gomock.Any(), job.ID, notifier.StatusFailed, gomock.Any(), testNow).
		Do(func(_ context.Context, _ uuid.UUID, _ string, lastError *string, _ time.Time) {
			recordedErr = lastError
		}).
		Return(nil)

	require.NoError(t, f.worker.Sweep(context.Background()))
	require.NotNil(t, recordedErr)
	require.Contains(t, *recordedErr, "smtp relay unavailable")
}

func TestWorker_Sweep_MarksFailedOnBadPayload(t *testing.T) {
	f := newWorkerFixture(t)
	job, _ := makeJob(t, notifier.KindReviewRequest, testNow)
	job.Payload = []byte("{not json")

	f.store.EXPECT().ClaimDue(gomock.Any(), testNow, 50).Return([]notifier.Job{job}, nil)
	f.store.EXPECT().
		MarkStatus(gomock.Any(), job.ID, notifier.StatusFailed, gomock.Any(), testNow).
		Return(nil)

	require.NoError(t, f.worker.Sweep(context.Background()))
}

func TestWorker_Purge_UsesRetentionCutoff(t *testing.T) {
	f := newWorkerFixture(t)

	cutoff := testNow.Add(-168 * time.Hour)
	f.store.EXPECT().PurgeFinished(gomock.Any(), cutoff).Return(int64(3), nil)

	require.NoError(t, f.worker.Purge(context.Background()))
}

var errSMTPDown = errSMTP{}

type errSMTP struct{}

func (errSMTP) Error() string { return "smtp relay unavailable" }
