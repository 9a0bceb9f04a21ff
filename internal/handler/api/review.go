package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	domreview "foodies-api/internal/domain/review"
	reqdto "foodies-api/internal/handler/dto/request"
	resdto "foodies-api/internal/handler/dto/response"
	"foodies-api/internal/handler/httperr"
	"foodies-api/internal/handler/middleware"
	"foodies-api/internal/usecase/commands"
	"foodies-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Create a new review for a finished reservation
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateReview(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		h.abortReviewWriteError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.ReviewID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

// @Summary Get review
// @Description Get a review by ID
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Update review
// @Description Replace own review; all sub-scores and the body are required
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.UpdateReview(c.Request.Context(), id, req.ToCommand(), actorID); err != nil {
		h.abortReviewWriteError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Delete review
// @Description Delete own review (admins can delete any)
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)
	if err := h.cmds.DeleteReview(c.Request.Context(), id, actorID, string(role)); err != nil {
		h.abortReviewWriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Vote on review
// @Description Apply an up/down vote or undo a previous vote
// @Tags reviews
// @Accept json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.VoteReviewRequest true "Vote request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id}/votes [post]
func (h *ReviewHandler) Vote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.VoteReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	action, err := domreview.NewVoteAction(req.Action)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vote action", nil)
		return
	}
	if err := h.cmds.VoteReview(c.Request.Context(), id, action); err != nil {
		h.abortReviewWriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List restaurant reviews
// @Description List reviews for a restaurant with optional overall-score filters and keyset pagination
// @Tags reviews
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param min_overall query number false "Minimum overall score (1-5)"
// @Param max_overall query number false "Maximum overall score (1-5)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ReviewListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /restaurants/{id}/reviews [get]
func (h *ReviewHandler) ListByRestaurant(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid restaurant id", nil)
		return
	}
	var minPtr, maxPtr *float64
	if v := c.Query("min_overall"); v != "" {
		if fv, e := strconv.ParseFloat(v, 64); e == nil {
			minPtr = &fv
		}
	}
	if v := c.Query("max_overall"); v != "" {
		if fv, e := strconv.ParseFloat(v, 64); e == nil {
			maxPtr = &fv
		}
	}
	limit, cursor := parseListParams(c)
	items, next, err := h.q.ListByRestaurant(c.Request.Context(), restaurantID,
		queries.ReviewFilters{MinOverall: minPtr, MaxOverall: maxPtr}, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		slog.Error("list reviews by restaurant failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp := gin.H{"reviews": resdto.FromReviewList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List user reviews
// @Description List reviews posted by a user (diners can only access their own)
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ReviewListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users/{id}/reviews [get]
func (h *ReviewHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}
	actorID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	limit, cursor := parseListParams(c)
	items, next, err := h.q.ListByUser(c.Request.Context(), userID, actorID, string(role), cursor, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		return
	}
	resp := gin.H{"reviews": resdto.FromReviewList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Restaurant rating
// @Description Get the derived rating statistics for a restaurant
// @Tags reviews
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} resdto.RestaurantRatingStatsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /restaurants/{id}/rating [get]
func (h *ReviewHandler) RestaurantRatingStats(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid restaurant id", nil)
		return
	}
	stats, err := h.q.GetRestaurantRatingStats(c.Request.Context(), restaurantID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get stats", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRestaurantRatingStats(stats))
}

func (h *ReviewHandler) abortReviewWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReviewNotFoundWrite):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
	case errors.Is(err, commands.ErrReviewNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case errors.Is(err, commands.ErrDuplicateReview):
		httperr.AbortWithError(c, http.StatusConflict, err, "Review already exists for this reservation", nil)
	case errors.Is(err, domreview.ErrReservationNotEligible):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Reservation is not eligible for review", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review data", nil)
	}
}
