//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"foodies-api/internal/domain/review"
	"foodies-api/internal/domain/user"
	"foodies-api/internal/handler/api"
	resdto "foodies-api/internal/handler/dto/response"
	"foodies-api/internal/usecase/commands"
	"foodies-api/internal/usecase/queries"
	"foodies-api/tests/common/builder"
	"foodies-api/tests/common/httptest"
	"foodies-api/tests/common/testutil"
	commandsmock "foodies-api/tests/mock/commands"
	queriesmock "foodies-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	actorID      uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleDiner)
		c.Next()
	}

	s.router.POST("/reviews", authMiddleware, s.handler.Create)
	s.router.GET("/reviews/:id", s.handler.Get)
	s.router.PUT("/reviews/:id", authMiddleware, s.handler.Update)
	s.router.DELETE("/reviews/:id", authMiddleware, s.handler.Delete)
	s.router.POST("/reviews/:id/votes", authMiddleware, s.handler.Vote)
	s.router.GET("/restaurants/:id/reviews", s.handler.ListByRestaurant)
	s.router.GET("/users/:id/reviews", authMiddleware, s.handler.ListByUser)
	s.router.GET("/restaurants/:id/rating", s.handler.RestaurantRatingStats)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"

	b := builder.NewReviewBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()
	expectedResult := &commands.CreateReviewResult{ReviewID: returnView.ID}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), reqBody.ToCommand(), s.actorID).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID.String(), response.ID)
		s.Equal(returnView.Body, response.Body)
		s.InDelta(returnView.Overall, response.Overall, 1e-9)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseReview{
			{name: "quality boundary OK (1)", mutate: testutil.Field("quality", 1), expectCode: http.StatusCreated},
			{name: "quality boundary OK (5)", mutate: testutil.Field("quality", 5), expectCode: http.StatusCreated},
			{name: "quality boundary invalid (0)", mutate: testutil.Field("quality", 0), expectCode: http.StatusBadRequest},
			{name: "quality boundary invalid (6)", mutate: testutil.Field("quality", 6), expectCode: http.StatusBadRequest},
			{name: "service boundary invalid (6)", mutate: testutil.Field("service", 6), expectCode: http.StatusBadRequest},
			{name: "ambiance boundary invalid (0)", mutate: testutil.Field("ambiance", 0), expectCode: http.StatusBadRequest},
			{name: "body length OK (1000 chars)", mutate: testutil.Field("body", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
			{name: "body length invalid (1001 chars)", mutate: testutil.Field("body", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
			{name: "body length invalid (9 chars)", mutate: testutil.Field("body", strings.Repeat("a", 9)), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseReview{
			{name: "missing field: restaurant_id (required)", mutate: testutil.Field("restaurant_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: reservation_id (required)", mutate: testutil.Field("reservation_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: quality (required)", mutate: testutil.Field("quality", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: body (required)", mutate: testutil.Field("body", nil), expectCode: http.StatusBadRequest},
		}

		empty := []testCaseReview{
			{name: "empty body", mutate: testutil.Field("body", ""), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseReview{bound, missing, empty} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.actorID).
							Return(expectedResult, nil).Times(1)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
							Return(returnView, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate review for reservation",
				commandsError:  commands.ErrDuplicateReview,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Review already exists",
			},
			{
				name:           "reservation not eligible",
				commandsError:  review.ErrReservationNotEligible,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not eligible",
			},
			{
				name:           "domain validation error",
				commandsError:  review.ErrBodyTooShort,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid review data",
			},
			{
				name:           "unexpected error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid review data",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), reqBody.ToCommand(), s.actorID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReviewHandlerTestSuite) TestGet() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	returnView := builder.NewReviewBuilder().BuildView()
	returnView.ID = reviewID

	s.Run("success: returns 200 OK with ReviewResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reviewID.String(), response.ID)
		s.Equal(returnView.Quality, response.Quality)
		s.Equal(returnView.Body, response.Body)
	})

	s.Run("error: 404 when review does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(nil, queries.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ReviewHandlerTestSuite) TestUpdate() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	b := builder.NewReviewBuilder()
	reqBody := map[string]any{
		"quality":  4,
		"service":  4,
		"ambiance": 3,
		"body":     "Solid but the service slowed down late in the evening.",
	}
	returnView := b.BuildView()
	returnView.ID = reviewID

	s.Run("success: returns 200 OK with updated review", func() {
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any(), s.actorID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reviewID.String(), response.ID)
	})

	s.Run("error: 400 when a sub-score is omitted", func() {
		partial := map[string]any{"quality": 4, "body": "Only touching one field here."}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, partial, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 403 when updating another user's review", func() {
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any(), s.actorID).
			Return(commands.ErrReviewNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 404 when review does not exist", func() {
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any(), s.actorID).
			Return(commands.ErrReviewNotFoundWrite).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})
}

func (s *ReviewHandlerTestSuite) TestDelete() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.actorID, "diner").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 when deleting another user's review", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.actorID, "diner").
			Return(commands.ErrReviewNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ReviewHandlerTestSuite) TestVote() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String() + "/votes"

	s.Run("success: each action returns 204", func() {
		for _, action := range []string{"up", "down", "undo_up", "undo_down"} {
			s.Run(action, func() {
				expected, err := review.NewVoteAction(action)
				s.Require().NoError(err)
				s.mockCommands.EXPECT().VoteReview(gomock.Any(), reviewID, expected).
					Return(nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					map[string]any{"action": action}, "bearer-token")
				s.Equal(http.StatusNoContent, rec.Code)
			})
		}
	})

	s.Run("error: 400 on unknown action", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": "sideways"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when review does not exist", func() {
		s.mockCommands.EXPECT().VoteReview(gomock.Any(), reviewID, review.VoteUp).
			Return(commands.ErrReviewNotFoundWrite).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": "up"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})
}

func (s *ReviewHandlerTestSuite) TestListByRestaurant() {
	restaurantID := uuid.New()
	url := "/restaurants/" + restaurantID.String() + "/reviews"

	items := []*queries.ReviewListItem{
		{ID: uuid.New(), UserName: "A", Quality: 5, Service: 4, Ambiance: 5, Overall: 14.0 / 3.0, Body: "Great food and a warm welcome."},
		{ID: uuid.New(), UserName: "B", Quality: 3, Service: 3, Ambiance: 3, Overall: 3.0, Body: "Average night out, nothing special."},
	}

	s.Run("success: returns reviews without cursor", func() {
		s.mockQueries.EXPECT().ListByRestaurant(gomock.Any(), restaurantID, queries.ReviewFilters{}, nil, 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response struct {
			Reviews    []*resdto.ReviewListItemResponse `json:"reviews"`
			NextCursor string                           `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reviews, 2)
		s.Empty(response.NextCursor)
	})

	s.Run("success: passes overall filters and returns next cursor", func() {
		minOverall := 4.0
		next := &queries.Cursor{After: "v1:opaque"}
		s.mockQueries.EXPECT().
			ListByRestaurant(gomock.Any(), restaurantID, filtersWithMin(minOverall), nil, 20).
			Return(items[:1], next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?min_overall=4", nil, "")

		var response struct {
			Reviews    []*resdto.ReviewListItemResponse `json:"reviews"`
			NextCursor string                           `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reviews, 1)
		s.Equal("v1:opaque", response.NextCursor)
	})

	s.Run("error: 400 on invalid cursor", func() {
		s.mockQueries.EXPECT().ListByRestaurant(gomock.Any(), restaurantID, queries.ReviewFilters{}, gomock.Any(), 20).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *ReviewHandlerTestSuite) TestListByUser() {
	s.Run("success: diner lists own reviews", func() {
		url := "/users/" + s.actorID.String() + "/reviews"
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actorID, s.actorID, "diner", nil, 20).
			Return([]*queries.ReviewListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 when diner lists someone else's reviews", func() {
		otherID := uuid.New()
		url := "/users/" + otherID.String() + "/reviews"
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), otherID, s.actorID, "diner", nil, 20).
			Return(nil, nil, queries.ErrReviewAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *ReviewHandlerTestSuite) TestRestaurantRatingStats() {
	restaurantID := uuid.New()
	url := "/restaurants/" + restaurantID.String() + "/rating"

	s.Run("success: returns derived stats", func() {
		stats := &queries.RestaurantRatingStats{
			RestaurantID:  restaurantID,
			TotalReviews:  12,
			AverageRating: 4.25,
		}
		s.mockQueries.EXPECT().GetRestaurantRatingStats(gomock.Any(), restaurantID).
			Return(stats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RestaurantRatingStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(restaurantID.String(), response.RestaurantID)
		s.Equal(int32(12), response.TotalReviews)
		s.InDelta(4.25, response.AverageRating, 1e-9)
	})

	s.Run("success: empty restaurant reports zero rating", func() {
		stats := &queries.RestaurantRatingStats{RestaurantID: restaurantID}
		s.mockQueries.EXPECT().GetRestaurantRatingStats(gomock.Any(), restaurantID).
			Return(stats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RestaurantRatingStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Zero(response.TotalReviews)
		s.Zero(response.AverageRating)
	})
}

func filtersWithMin(minOverall float64) queries.ReviewFilters {
	return queries.ReviewFilters{MinOverall: &minOverall}
}
