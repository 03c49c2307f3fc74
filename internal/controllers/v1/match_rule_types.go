package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/httputil"
	"github.com/pennyflow/backend/internal/models"
	pf_uuid "github.com/pennyflow/backend/internal/uuid"
)

// MatchRuleEditable represents all user configurable parameters
type MatchRuleEditable struct {
	UserID   uuid.UUID `json:"userId" example:"d1e4e3b2-bbcb-47cf-ad07-a21b0bd6c9f6"` // ID of the user the match rule belongs to
	Priority uint      `json:"priority" example:"1" default:"0"`                      // The priority of the match rule, lower number wins
	Match    string    `json:"match" example:"Netflix*" default:""`                   // The glob pattern to match payee names against
	Category string    `json:"category" example:"Entertainment" default:""`           // The category to assign
}

func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		UserID:   editable.UserID,
		Priority: editable.Priority,
		Match:    editable.Match,
		Category: editable.Category,
	}
}

type MatchRuleLinks struct {
	Self string `json:"self" example:"https://example.com/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The match rule itself
}

type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := httputil.RequestHost(c)

	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			UserID:   model.UserID,
			Priority: model.Priority,
			Match:    model.Match,
			Category: model.Category,
		},
		Links: MatchRuleLinks{
			Self: fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
		},
	}
}

type MatchRuleListResponse struct {
	Data       []MatchRule `json:"data"`                                                          // List of MatchRules
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MatchRuleCreateResponse struct {
	Data  []MatchRuleResponse `json:"data"`                                                          // List of the created MatchRules or their respective error
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (m *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, MatchRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MatchRuleResponse struct {
	Data  *MatchRule `json:"data"`                                                          // Data for the MatchRule
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MatchRuleQueryFilter struct {
	UserID   pf_uuid.UUID `form:"user"`                       // By ID of the User
	Match    string       `form:"match"`                      // By match
	Category string       `form:"category"`                   // By category
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first MatchRule returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of MatchRules to return. Defaults to 50.
}

func (f MatchRuleQueryFilter) model() models.MatchRule {
	return models.MatchRule{
		UserID:   f.UserID.UUID,
		Match:    f.Match,
		Category: f.Category,
	}
}
