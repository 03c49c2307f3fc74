package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennyflow/backend/internal/httputil"
	"github.com/pennyflow/backend/internal/notifications"
	"github.com/pennyflow/backend/internal/settlement"
)

// engine is the settlement engine used by the API. Notifications are
// written to the log until delivery infrastructure is connected.
var engine = settlement.NewService(notifications.LogDispatcher{})

// RegisterSettlementRoutes registers the routes for settlements with
// the RouterGroup that is passed.
func RegisterSettlementRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSettlementList)
		r.POST("", CreateSettlement)
	}

	// Simulation
	{
		r.OPTIONS("/preview", OptionsSettlementPreview)
		r.GET("/preview", GetSettlementPreview)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settlements
// @Success		204
// @Router			/v1/settlements [options]
func OptionsSettlementList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settlements
// @Success		204
// @Router			/v1/settlements/preview [options]
func OptionsSettlementPreview(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Execute settlement run
// @Description	Settles all direct debits of the user that are due today. Each one either creates a transaction or is reported as a failure, the run itself always completes.
// @Tags			Settlements
// @Produce		json
// @Success		200		{object}	SettlementResponse
// @Failure		400		{object}	SettlementResponse
// @Failure		404		{object}	SettlementResponse
// @Failure		500		{object}	SettlementResponse
// @Param			user	query		string	true	"ID of the user"
// @Router			/v1/settlements [post]
func CreateSettlement(c *gin.Context) {
	var params struct {
		User string `form:"user"`
	}
	_ = c.Bind(&params)

	userID, err := httputil.UUIDFromString(params.User)
	if err != nil || params.User == "" {
		s := errUserIDParameter.Error()
		c.JSON(http.StatusBadRequest, SettlementResponse{
			Error: &s,
		})
		return
	}

	result, err := engine.ProcessDue(c.Request.Context(), userID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SettlementResponse{Data: &result})
}

// @Summary		Preview settlement run
// @Description	Simulates the settlement run for today without creating transactions or advancing schedules
// @Tags			Settlements
// @Produce		json
// @Success		200		{object}	SettlementPreviewResponse
// @Failure		400		{object}	SettlementPreviewResponse
// @Failure		404		{object}	SettlementPreviewResponse
// @Failure		500		{object}	SettlementPreviewResponse
// @Param			user	query		string	true	"ID of the user"
// @Router			/v1/settlements/preview [get]
func GetSettlementPreview(c *gin.Context) {
	var params struct {
		User string `form:"user"`
	}
	_ = c.Bind(&params)

	userID, err := httputil.UUIDFromString(params.User)
	if err != nil || params.User == "" {
		s := errUserIDParameter.Error()
		c.JSON(http.StatusBadRequest, SettlementPreviewResponse{
			Error: &s,
		})
		return
	}

	previews, err := engine.SimulateToday(c.Request.Context(), userID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettlementPreviewResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SettlementPreviewResponse{Data: previews})
}

type SettlementResponse struct {
	Data  *settlement.Result `json:"data"`                                           // The outcome of the settlement run
	Error *string            `json:"error" example:"the user parameter must be set"` // The error, if any occurred
}

type SettlementPreviewResponse struct {
	Data  []settlement.Preview `json:"data"`                                           // The simulated outcome for each due direct debit
	Error *string              `json:"error" example:"the user parameter must be set"` // The error, if any occurred
}
