package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennyflow/backend/internal/httputil"
	"github.com/pennyflow/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterDirectDebitRoutes registers the routes for direct debits with
// the RouterGroup that is passed.
func RegisterDirectDebitRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDirectDebitList)
		r.GET("", GetDirectDebits)
		r.POST("", CreateDirectDebits)
	}

	// Upcoming payments
	{
		r.OPTIONS("/upcoming", OptionsDirectDebitUpcoming)
		r.GET("/upcoming", GetUpcomingDirectDebits)
	}

	// Direct debit with ID
	{
		r.OPTIONS("/:id", OptionsDirectDebitDetail)
		r.GET("/:id", GetDirectDebit)
		r.PATCH("/:id", UpdateDirectDebit)
		r.DELETE("/:id", DeleteDirectDebit)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			DirectDebits
// @Success		204
// @Router			/v1/direct-debits [options]
func OptionsDirectDebitList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			DirectDebits
// @Success		204
// @Router			/v1/direct-debits/upcoming [options]
func OptionsDirectDebitUpcoming(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			DirectDebits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/direct-debits/{id} [options]
func OptionsDirectDebitDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.DirectDebit{})
}

// @Summary		Create direct debit
// @Description	Creates a new direct debit
// @Tags			DirectDebits
// @Produce		json
// @Success		201				{object}	DirectDebitCreateResponse
// @Failure		400				{object}	DirectDebitCreateResponse
// @Failure		404				{object}	DirectDebitCreateResponse
// @Failure		500				{object}	DirectDebitCreateResponse
// @Param			directDebits	body		[]DirectDebitEditable	true	"DirectDebits"
// @Router			/v1/direct-debits [post]
func CreateDirectDebits(c *gin.Context) {
	var editables []DirectDebitEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DirectDebitCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DirectDebitCreateResponse{}

	for _, editable := range editables {
		directDebit := editable.model()

		err = models.DB.Create(&directDebit).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDirectDebit(c, directDebit)
		r.Data = append(r.Data, DirectDebitResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get direct debits
// @Description	Returns a list of direct debits
// @Tags			DirectDebits
// @Produce		json
// @Success		200	{object}	DirectDebitListResponse
// @Failure		400	{object}	DirectDebitListResponse
// @Failure		500	{object}	DirectDebitListResponse
// @Router			/v1/direct-debits [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			user		query	string	false	"Filter by user ID"
// @Param			account		query	string	false	"Filter by account ID"
// @Param			category	query	string	false	"Filter by category"
// @Param			frequency	query	string	false	"Filter by frequency"
// @Param			active		query	bool	false	"Is the direct debit active?"
// @Param			search		query	string	false	"Search for this text in the name"
// @Param			offset		query	uint	false	"The offset of the first DirectDebit returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of DirectDebits to return. Defaults to 50."
func GetDirectDebits(c *gin.Context) {
	var filter DirectDebitQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(q, setFields, filter.Name, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 DirectDebits and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var directDebits []models.DirectDebit
	err := q.Find(&directDebits).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DirectDebitListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DirectDebitListResponse{
			Error: &e,
		})
		return
	}

	data := make([]DirectDebit, 0)
	for _, directDebit := range directDebits {
		data = append(data, newDirectDebit(c, directDebit))
	}

	c.JSON(http.StatusOK, DirectDebitListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get upcoming payments
// @Description	Returns the active direct debits of a user that are due within the window
// @Tags			DirectDebits
// @Produce		json
// @Success		200		{object}	UpcomingResponse
// @Failure		400		{object}	UpcomingResponse
// @Failure		404		{object}	UpcomingResponse
// @Failure		500		{object}	UpcomingResponse
// @Param			user	query		string	true	"ID of the user"
// @Param			days	query		int		false	"Window in days. Defaults to 30."
// @Router			/v1/direct-debits/upcoming [get]
func GetUpcomingDirectDebits(c *gin.Context) {
	var params struct {
		User string `form:"user"`
		Days int    `form:"days"`
	}
	_ = c.Bind(&params)

	userID, err := httputil.UUIDFromString(params.User)
	if err != nil || params.User == "" {
		s := errUserIDParameter.Error()
		c.JSON(http.StatusBadRequest, UpcomingResponse{
			Error: &s,
		})
		return
	}

	upcoming, err := engine.UpcomingPayments(c.Request.Context(), userID, params.Days)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UpcomingResponse{
			Error: &s,
		})
		return
	}

	data := make([]UpcomingPayment, 0, len(upcoming))
	for _, payment := range upcoming {
		data = append(data, UpcomingPayment{
			DirectDebit:      newDirectDebit(c, payment.DirectDebit),
			DaysUntilPayment: payment.DaysUntilPayment,
		})
	}

	c.JSON(http.StatusOK, UpcomingResponse{Data: data})
}

// @Summary		Get direct debit
// @Description	Returns a specific direct debit
// @Tags			DirectDebits
// @Produce		json
// @Success		200	{object}	DirectDebitResponse
// @Failure		400	{object}	DirectDebitResponse
// @Failure		404	{object}	DirectDebitResponse
// @Failure		500	{object}	DirectDebitResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/direct-debits/{id} [get]
func GetDirectDebit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DirectDebitResponse{
			Error: &s,
		})
		return
	}

	var directDebit models.DirectDebit
	err = models.DB.First(&directDebit, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DirectDebitResponse{
			Error: &s,
		})
		return
	}

	data := newDirectDebit(c, directDebit)
	c.JSON(http.StatusOK, DirectDebitResponse{Data: &data})
}

// @Summary		Update direct debit
// @Description	Update an existing direct debit. Only values to be updated need to be specified.
// @Tags			DirectDebits
// @Accept			json
// @Produce		json
// @Success		200			{object}	DirectDebitResponse
// @Failure		400			{object}	DirectDebitResponse
// @Failure		404			{object}	DirectDebitResponse
// @Failure		500			{object}	DirectDebitResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			directDebit	body		DirectDebitEditable	true	"DirectDebit"
// @Router			/v1/direct-debits/{id} [patch]
func UpdateDirectDebit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DirectDebitResponse{
			Error: &s,
		})
		return
	}

	var directDebit models.DirectDebit
	err = models.DB.First(&directDebit, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DirectDebitResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DirectDebitEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DirectDebitResponse{
			Error: &s,
		})
		return
	}

	var data DirectDebitEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DirectDebitResponse{
			Error: &s,
		})
		return
	}

	// If the amount set via the API request is not existent or
	// is 0, we use the old amount
	if data.Amount.IsZero() {
		data.Amount = directDebit.Amount
	}

	err = models.DB.Model(&directDebit).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DirectDebitResponse{
			Error: &s,
		})
		return
	}

	r := newDirectDebit(c, directDebit)
	c.JSON(http.StatusOK, DirectDebitResponse{Data: &r})
}

// @Summary		Delete direct debit
// @Description	Deletes a direct debit
// @Tags			DirectDebits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/direct-debits/{id} [delete]
func DeleteDirectDebit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var directDebit models.DirectDebit
	err = models.DB.First(&directDebit, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&directDebit).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
