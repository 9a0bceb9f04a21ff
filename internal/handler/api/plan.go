package api

import (
	"errors"
	"net/http"

	reqdto "foodies-api/internal/handler/dto/request"
	resdto "foodies-api/internal/handler/dto/response"
	"foodies-api/internal/handler/httperr"
	"foodies-api/internal/usecase/commands"
	"foodies-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlanHandler struct {
	cmds commands.PlanCommands
	q    queries.PlanQueries
}

func NewPlanHandler(cmds commands.PlanCommands, q queries.PlanQueries) *PlanHandler {
	return &PlanHandler{cmds: cmds, q: q}
}

// @Summary List plans
// @Description List all subscription plans
// @Tags plans
// @Produce json
// @Success 200 {array} resdto.PlanResponse
// @Failure 500 {object} map[string]string
// @Router /plans [get]
func (h *PlanHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": resdto.FromPlanList(items)})
}

// @Summary Get plan
// @Description Get a subscription plan by ID
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} resdto.PlanResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /plans/{id} [get]
func (h *PlanHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromPlanView(view))
}

// @Summary Create plan
// @Description Create a subscription plan (admin only)
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlanRequest true "Plan request"
// @Success 201 {object} resdto.PlanResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /plans [post]
func (h *PlanHandler) Create(c *gin.Context) {
	var req reqdto.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreatePlan(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errors.Is(err, commands.ErrDuplicatePlanTier) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Plan tier already exists", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid plan data", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.PlanID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load plan", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPlanView(view))
}

// @Summary Update plan
// @Description Replace a subscription plan (admin only)
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param request body reqdto.PlanRequest true "Plan request"
// @Success 200 {object} resdto.PlanResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /plans/{id} [put]
func (h *PlanHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.PlanRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.UpdatePlan(c.Request.Context(), id, req.ToCommand()); err != nil {
		if errors.Is(err, commands.ErrPlanNotFoundWrite) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Plan not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid plan data", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load plan", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlanView(view))
}

// @Summary Delete plan
// @Description Delete a subscription plan (admin only)
// @Tags plans
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /plans/{id} [delete]
func (h *PlanHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeletePlan(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrPlanNotFoundWrite) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Plan not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid plan data", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
