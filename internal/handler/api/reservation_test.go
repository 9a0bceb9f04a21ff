//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"foodies-api/internal/domain/reservation"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	actorID      uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
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

	s.router.POST("/reservations", authMiddleware, s.handler.Create)
	s.router.GET("/reservations", authMiddleware, s.handler.ListMine)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/reservations/:id/status", authMiddleware, s.handler.UpdateStatus)
	s.router.GET("/restaurants/:id/reservations", authMiddleware, s.handler.ListByRestaurant)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()
	expectedResult := &commands.CreateReservationResult{ReservationID: returnView.ID}

	s.Run("success: returns 201 with pending reservation", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), s.actorID).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, "diner", returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID.String(), response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 on request validation failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing restaurant_id", mutate: testutil.Field("restaurant_id", nil)},
			{name: "missing table_id", mutate: testutil.Field("table_id", nil)},
			{name: "zero party size", mutate: testutil.Field("party_size", 0)},
			{name: "party size above maximum", mutate: testutil.Field("party_size", 21)},
			{name: "missing reserved_at", mutate: testutil.Field("reserved_at", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "restaurant does not exist", commandsError: commands.ErrRestaurantNotFoundWrite, expectedStatus: http.StatusNotFound},
			{name: "missing visit time", commandsError: reservation.ErrMissingReservedAt, expectedStatus: http.StatusUnprocessableEntity},
			{name: "blank table id", commandsError: reservation.ErrEmptyTableID, expectedStatus: http.StatusUnprocessableEntity},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), s.actorID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	returnView := builder.NewReservationBuilder().BuildView()
	returnView.ID = reservationID

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, "diner", reservationID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID.String(), response.ID)
	})

	s.Run("error: 404 when reservation does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, "diner", reservationID).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 403 when diner reads someone else's reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, "diner", reservationID).
			Return(nil, queries.ErrReservationAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *ReservationHandlerTestSuite) TestListMine() {
	url := "/reservations"

	items := []*queries.ReservationListItem{
		{ID: uuid.New(), RestaurantName: "A", TableID: "T1", PartySize: 2, Status: "pending", ReservedAt: time.Now().Add(24 * time.Hour)},
	}

	s.Run("success: returns own reservations", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actorID, nil, 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response struct {
			Reservations []*resdto.ReservationListItemResponse `json:"reservations"`
			NextCursor   string                                `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reservations, 1)
		s.Empty(response.NextCursor)
	})

	s.Run("success: passes limit and cursor through", func() {
		cursor := &queries.Cursor{After: "v1:opaque"}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actorID, cursor, 5).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5&after=v1:opaque", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/status"

	returnView := builder.NewReservationBuilder().BuildView()
	returnView.ID = reservationID
	returnView.Status = "confirmed"

	s.Run("success: returns 200 with the new status", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), reservationID, reservation.StatusConfirmed, s.actorID, "diner").
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, "diner", reservationID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "confirmed"}, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 on unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "seated"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 on invalid transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), reservationID, reservation.StatusConfirmed, s.actorID, "diner").
			Return(reservation.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "confirmed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 409 when reservation already cancelled", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), reservationID, reservation.StatusConfirmed, s.actorID, "diner").
			Return(reservation.ErrReservationFinished).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "confirmed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 403 when acting on someone else's reservation", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), reservationID, reservation.StatusCancelled, s.actorID, "diner").
			Return(commands.ErrReservationNotAllowed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "cancelled"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
