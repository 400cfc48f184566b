package api

import (
	"net/http"

	resdto "doglivebot/internal/handler/dto/response"
	"doglivebot/internal/handler/httperr"
	"doglivebot/internal/pkg/errs"
	"doglivebot/internal/usecase/commands"
	"doglivebot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	cmds commands.ScheduleCommands
	q    queries.AvailabilityQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.AvailabilityQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q}
}

// @Summary Current schedule
// @Description Get the active week with slot counts
// @Tags schedule
// @Produce json
// @Success 200 {object} resdto.WeekResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/schedule/current [get]
func (h *ScheduleHandler) Current(c *gin.Context) {
	week, err := h.q.CurrentWeek(c.Request.Context())
	if err != nil {
		if errs.Is(err, queries.ErrNoActiveSchedule) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No active schedule", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load schedule", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWeekView(week))
}

// @Summary Roll over schedule
// @Description Create the current week's schedule unless the active one already covers now
// @Tags schedule
// @Produce json
// @Success 200 {object} resdto.RolloverResponse "active schedule already current"
// @Success 201 {object} resdto.RolloverResponse "new schedule created"
// @Failure 500 {object} httperr.Response
// @Router /api/schedule/rollover [post]
func (h *ScheduleHandler) Rollover(c *gin.Context) {
	result, err := h.cmds.RollOver(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Schedule rollover failed", nil)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromRolloverResult(result))
}
