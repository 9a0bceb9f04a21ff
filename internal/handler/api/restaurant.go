package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	reqdto "foodies-api/internal/handler/dto/request"
	resdto "foodies-api/internal/handler/dto/response"
	"foodies-api/internal/handler/httperr"
	"foodies-api/internal/handler/middleware"
	"foodies-api/internal/usecase/commands"
	"foodies-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RestaurantHandler struct {
	cmds commands.RestaurantCommands
	q    queries.RestaurantQueries
}

func NewRestaurantHandler(cmds commands.RestaurantCommands, q queries.RestaurantQueries) *RestaurantHandler {
	return &RestaurantHandler{cmds: cmds, q: q}
}

// @Summary Create restaurant
// @Description Create a restaurant owned by the authenticated owner
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRestaurantRequest true "Create restaurant request"
// @Success 201 {object} resdto.RestaurantResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /restaurants [post]
func (h *RestaurantHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateRestaurant(c.Request.Context(), req.ToCommand(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid restaurant data", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.RestaurantID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load restaurant", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRestaurantView(view))
}

// @Summary Get restaurant
// @Description Get a restaurant by ID
// @Tags restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} resdto.RestaurantResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id} [get]
func (h *RestaurantHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromRestaurantView(view))
}

// @Summary List restaurants
// @Description List restaurants with optional cuisine and rating filters and keyset pagination
// @Tags restaurants
// @Produce json
// @Param cuisine_type query string false "Cuisine type filter"
// @Param min_rating query number false "Minimum global rating"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.RestaurantListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /restaurants [get]
func (h *RestaurantHandler) List(c *gin.Context) {
	var filters queries.RestaurantFilters
	if v := c.Query("cuisine_type"); v != "" {
		filters.CuisineType = &v
	}
	if v := c.Query("min_rating"); v != "" {
		if fv, e := strconv.ParseFloat(v, 64); e == nil {
			filters.MinRating = &fv
		}
	}
	limit, cursor := parseListParams(c)
	items, next, err := h.q.List(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		slog.Error("list restaurants failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp := gin.H{"restaurants": resdto.FromRestaurantList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List own restaurants
// @Description List restaurants owned by the authenticated owner
// @Tags restaurants
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RestaurantListItemResponse
// @Failure 401 {object} map[string]string
// @Router /restaurants/mine [get]
func (h *RestaurantHandler) ListMine(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	items, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": resdto.FromRestaurantList(items)})
}

// @Summary Update restaurant
// @Description Replace a restaurant's details (owner or admin)
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Param request body reqdto.UpdateRestaurantRequest true "Update restaurant request"
// @Success 200 {object} resdto.RestaurantResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id} [put]
func (h *RestaurantHandler) Update(c *gin.Context) {
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
	var req reqdto.UpdateRestaurantRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.UpdateRestaurant(c.Request.Context(), id, req.ToCommand(), actorID, string(role)); err != nil {
		h.abortRestaurantWriteError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load restaurant", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRestaurantView(view))
}

// @Summary Delete restaurant
// @Description Delete a restaurant and its reservations and reviews (owner or admin)
// @Tags restaurants
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id} [delete]
func (h *RestaurantHandler) Delete(c *gin.Context) {
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
	if err := h.cmds.DeleteRestaurant(c.Request.Context(), id, actorID, string(role)); err != nil {
		h.abortRestaurantWriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RestaurantHandler) abortRestaurantWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRestaurantNotFoundWrite):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Restaurant not found", nil)
	case errors.Is(err, commands.ErrRestaurantNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid restaurant data", nil)
	}
}
