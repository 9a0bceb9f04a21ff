package repository

import (
	"context"

	"foodies-api/internal/domain/review"
	"foodies-api/internal/infra"
	"foodies-api/internal/infra/db"

	"github.com/google/uuid"
)

const createReviewSQL = `
INSERT INTO reviews (id, user_id, restaurant_id, reservation_id, quality, service, ambiance, body, upvotes, downvotes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, 0, now(), now())
RETURNING id`

const updateReviewSQL = `
UPDATE reviews
SET quality = $2, service = $3, ambiance = $4, body = $5, updated_at = now()
WHERE id = $1`

const deleteReviewSQL = `DELETE FROM reviews WHERE id = $1`

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createReviewSQL,
		rev.ID(),
		rev.UserID(),
		rev.RestaurantID(),
		rev.ReservationID(),
		rev.Scores().Quality(),
		rev.Scores().Service(),
		rev.Scores().Ambiance(),
		rev.Body().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx db.DBTX, rev *review.Review) error {
	tag, err := tx.Exec(ctx, updateReviewSQL,
		rev.ID(),
		rev.Scores().Quality(),
		rev.Scores().Service(),
		rev.Scores().Ambiance(),
		rev.Body().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteReviewSQL, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

// ApplyVote updates a single counter in place. GREATEST keeps the undo
// actions from driving a counter below zero under concurrent votes.
func (r *ReviewRepository) ApplyVote(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, action review.VoteAction) error {
	var sql string
	switch action {
	case review.VoteUp:
		sql = `UPDATE reviews SET upvotes = upvotes + 1, updated_at = now() WHERE id = $1`
	case review.VoteDown:
		sql = `UPDATE reviews SET downvotes = downvotes + 1, updated_at = now() WHERE id = $1`
	case review.VoteUndoUp:
		sql = `UPDATE reviews SET upvotes = GREATEST(upvotes - 1, 0), updated_at = now() WHERE id = $1`
	case review.VoteUndoDown:
		sql = `UPDATE reviews SET downvotes = GREATEST(downvotes - 1, 0), updated_at = now() WHERE id = $1`
	default:
		return review.ErrInvalidVoteAction
	}

	tag, err := tx.Exec(ctx, sql, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to apply review vote", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
