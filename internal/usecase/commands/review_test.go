//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domreview "foodies-api/internal/domain/review"
	"foodies-api/internal/infra"
	"foodies-api/internal/infra/db"
	"foodies-api/internal/pkg/clock"
	"foodies-api/internal/usecase/commands"
	"foodies-api/internal/usecase/queries"
	"foodies-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReviewRepo struct {
	nextID      uuid.UUID
	dupOnCreate bool
	created     []*domreview.Review
	updated     []*domreview.Review
	deleted     []uuid.UUID
	votes       []domreview.VoteAction
	voteMissing bool
}

func (r *stubReviewRepo) Create(_ context.Context, _ db.DBTX, rev *domreview.Review) (uuid.UUID, error) {
	if r.dupOnCreate {
		return uuid.Nil, infra.WrapRepoErr("duplicate review", nil, infra.KindDuplicateKey)
	}
	r.created = append(r.created, rev)
	return r.nextID, nil
}

func (r *stubReviewRepo) Update(_ context.Context, _ db.DBTX, rev *domreview.Review) error {
	r.updated = append(r.updated, rev)
	return nil
}

func (r *stubReviewRepo) Delete(_ context.Context, _ db.DBTX, reviewID uuid.UUID) error {
	r.deleted = append(r.deleted, reviewID)
	return nil
}

func (r *stubReviewRepo) ApplyVote(_ context.Context, _ db.DBTX, _ uuid.UUID, action domreview.VoteAction) error {
	if r.voteMissing {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	r.votes = append(r.votes, action)
	return nil
}

type stubRatingStatsRepo struct {
	recalced []uuid.UUID
}

func (r *stubRatingStatsRepo) RecalcRestaurantRating(_ context.Context, _ db.DBTX, restaurantID uuid.UUID) error {
	r.recalced = append(r.recalced, restaurantID)
	return nil
}

type stubStatsCache struct {
	invalidated []uuid.UUID
}

func (c *stubStatsCache) Get(_ context.Context, _ uuid.UUID) (*queries.RestaurantRatingStats, error) {
	return nil, nil
}

func (c *stubStatsCache) Set(_ context.Context, _ *queries.RestaurantRatingStats) error {
	return nil
}

func (c *stubStatsCache) Invalidate(_ context.Context, restaurantID uuid.UUID) error {
	c.invalidated = append(c.invalidated, restaurantID)
	return nil
}

type reviewFixture struct {
	uc            commands.ReviewCommands
	tx            *stubTx
	cache         *stubStatsCache
	restaurantID  uuid.UUID
	userID        uuid.UUID
	reservationID uuid.UUID
	newID         uuid.UUID
}

func newReviewFixture() *reviewFixture {
	restaurantID := uuid.New()
	userID := uuid.New()
	reservationID := uuid.New()

	tx := &stubTx{
		reads: &stubReads{
			restaurants: map[uuid.UUID]*shared.RestaurantSnapshot{
				restaurantID: {ID: restaurantID, OwnerID: uuid.New(), Name: "Chez Test"},
			},
			users: map[uuid.UUID]*shared.UserSnapshot{},
			reservations: map[uuid.UUID]*shared.ReservationSnapshot{
				reservationID: {
					ID:           reservationID,
					RestaurantID: restaurantID,
					UserID:       userID,
					TableID:      "T1",
					PartySize:    2,
					ReservedAt:   testNow.Add(-2 * time.Hour),
					Status:       "confirmed",
				},
			},
			reviews: map[uuid.UUID]*shared.ReviewSnapshot{},
		},
		reviews:     &stubReviewRepo{nextID: uuid.New()},
		ratingStats: &stubRatingStatsRepo{},
	}
	cache := &stubStatsCache{}

	return &reviewFixture{
		uc:            commands.NewReviewUseCase(&stubUoW{tx: tx}, cache, clock.NewMockClock(testNow)),
		tx:            tx,
		cache:         cache,
		restaurantID:  restaurantID,
		userID:        userID,
		reservationID: reservationID,
		newID:         tx.reviews.nextID,
	}
}

func (f *reviewFixture) createCmd() commands.CreateReviewCommand {
	return commands.CreateReviewCommand{
		RestaurantID:  f.restaurantID,
		ReservationID: f.reservationID,
		Quality:       5,
		Service:       4,
		Ambiance:      5,
		Body:          "The tasting menu was outstanding.",
	}
}

func TestCreateReview(t *testing.T) {
	t.Run("creates review, recalcs rating and drops cached stats", func(t *testing.T) {
		f := newReviewFixture()

		result, err := f.uc.CreateReview(context.Background(), f.createCmd(), f.userID)
		require.NoError(t, err)
		assert.Equal(t, f.newID, result.ReviewID)

		require.Len(t, f.tx.reviews.created, 1)
		assert.Equal(t, []uuid.UUID{f.restaurantID}, f.tx.ratingStats.recalced)
		assert.Equal(t, []uuid.UUID{f.restaurantID}, f.cache.invalidated)
	})

	t.Run("rejects review before the visit has happened", func(t *testing.T) {
		f := newReviewFixture()
		f.tx.reads.reservations[f.reservationID].ReservedAt = testNow.Add(2 * time.Hour)

		_, err := f.uc.CreateReview(context.Background(), f.createCmd(), f.userID)
		require.ErrorIs(t, err, domreview.ErrReservationNotEligible)
		assert.Empty(t, f.tx.reviews.created)
		assert.Empty(t, f.cache.invalidated)
	})

	t.Run("rejects cancelled reservation", func(t *testing.T) {
		f := newReviewFixture()
		f.tx.reads.reservations[f.reservationID].Status = "cancelled"

		_, err := f.uc.CreateReview(context.Background(), f.createCmd(), f.userID)
		require.ErrorIs(t, err, domreview.ErrReservationNotEligible)
	})

	t.Run("rejects another diner's reservation", func(t *testing.T) {
		f := newReviewFixture()

		_, err := f.uc.CreateReview(context.Background(), f.createCmd(), uuid.New())
		require.ErrorIs(t, err, domreview.ErrReservationNotEligible)
	})

	t.Run("rejects unknown reservation", func(t *testing.T) {
		f := newReviewFixture()
		cmd := f.createCmd()
		cmd.ReservationID = uuid.New()

		_, err := f.uc.CreateReview(context.Background(), cmd, f.userID)
		require.ErrorIs(t, err, domreview.ErrReservationNotEligible)
	})

	t.Run("second review for the same reservation is a conflict", func(t *testing.T) {
		f := newReviewFixture()
		f.tx.reviews.dupOnCreate = true

		_, err := f.uc.CreateReview(context.Background(), f.createCmd(), f.userID)
		require.ErrorIs(t, err, commands.ErrDuplicateReview)
		assert.Empty(t, f.cache.invalidated)
	})

	t.Run("domain validation failure persists nothing", func(t *testing.T) {
		f := newReviewFixture()
		cmd := f.createCmd()
		cmd.Quality = 6

		_, err := f.uc.CreateReview(context.Background(), cmd, f.userID)
		require.ErrorIs(t, err, domreview.ErrInvalidScore)
		assert.Empty(t, f.tx.reviews.created)
		assert.Empty(t, f.tx.ratingStats.recalced)
	})
}

func TestUpdateReview(t *testing.T) {
	seed := func(f *reviewFixture) uuid.UUID {
		id := uuid.New()
		f.tx.reads.reviews[id] = &shared.ReviewSnapshot{
			ID:            id,
			UserID:        f.userID,
			RestaurantID:  f.restaurantID,
			ReservationID: f.reservationID,
			Quality:       5,
			Service:       4,
			Ambiance:      5,
			Body:          "The tasting menu was outstanding.",
		}
		return id
	}

	cmd := commands.UpdateReviewCommand{
		Quality:  3,
		Service:  3,
		Ambiance: 2,
		Body:     "Quality dipped on the second visit.",
	}

	t.Run("owner replaces review and rating is recalculated", func(t *testing.T) {
		f := newReviewFixture()
		id := seed(f)

		err := f.uc.UpdateReview(context.Background(), id, cmd, f.userID)
		require.NoError(t, err)

		require.Len(t, f.tx.reviews.updated, 1)
		updated := f.tx.reviews.updated[0]
		assert.Equal(t, 3, updated.Scores().Quality())
		assert.Equal(t, []uuid.UUID{f.restaurantID}, f.tx.ratingStats.recalced)
		assert.Equal(t, []uuid.UUID{f.restaurantID}, f.cache.invalidated)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		f := newReviewFixture()
		id := seed(f)

		err := f.uc.UpdateReview(context.Background(), id, cmd, uuid.New())
		require.ErrorIs(t, err, commands.ErrReviewNotOwned)
		assert.Empty(t, f.tx.reviews.updated)
	})

	t.Run("unknown review", func(t *testing.T) {
		f := newReviewFixture()

		err := f.uc.UpdateReview(context.Background(), uuid.New(), cmd, f.userID)
		require.ErrorIs(t, err, commands.ErrReviewNotFoundWrite)
	})
}

func TestDeleteReview(t *testing.T) {
	seed := func(f *reviewFixture) uuid.UUID {
		id := uuid.New()
		f.tx.reads.reviews[id] = &shared.ReviewSnapshot{
			ID:           id,
			UserID:       f.userID,
			RestaurantID: f.restaurantID,
		}
		return id
	}

	t.Run("owner deletes own review", func(t *testing.T) {
		f := newReviewFixture()
		id := seed(f)

		err := f.uc.DeleteReview(context.Background(), id, f.userID, "diner")
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{id}, f.tx.reviews.deleted)
		assert.Equal(t, []uuid.UUID{f.restaurantID}, f.cache.invalidated)
	})

	t.Run("admin deletes any review", func(t *testing.T) {
		f := newReviewFixture()
		id := seed(f)

		err := f.uc.DeleteReview(context.Background(), id, uuid.New(), "admin")
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{id}, f.tx.reviews.deleted)
	})

	t.Run("other diners are rejected", func(t *testing.T) {
		f := newReviewFixture()
		id := seed(f)

		err := f.uc.DeleteReview(context.Background(), id, uuid.New(), "diner")
		require.ErrorIs(t, err, commands.ErrReviewNotOwned)
		assert.Empty(t, f.tx.reviews.deleted)
	})
}

func TestVoteReview(t *testing.T) {
	t.Run("applies each valid action", func(t *testing.T) {
		f := newReviewFixture()

		for _, action := range []domreview.VoteAction{
			domreview.VoteUp, domreview.VoteDown, domreview.VoteUndoUp, domreview.VoteUndoDown,
		} {
			require.NoError(t, f.uc.VoteReview(context.Background(), uuid.New(), action))
		}
		assert.Len(t, f.tx.reviews.votes, 4)
	})

	t.Run("invalid action never reaches the store", func(t *testing.T) {
		f := newReviewFixture()

		err := f.uc.VoteReview(context.Background(), uuid.New(), domreview.VoteAction("sideways"))
		require.ErrorIs(t, err, domreview.ErrInvalidVoteAction)
		assert.Empty(t, f.tx.reviews.votes)
	})

	t.Run("unknown review", func(t *testing.T) {
		f := newReviewFixture()
		f.tx.reviews.voteMissing = true

		err := f.uc.VoteReview(context.Background(), uuid.New(), domreview.VoteUp)
		require.ErrorIs(t, err, commands.ErrReviewNotFoundWrite)
	})
}
