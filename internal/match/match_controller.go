package match

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jagdish-cm/cricketora-sub000/config"
	"github.com/jagdish-cm/cricketora-sub000/internal/scoring"
	"github.com/jagdish-cm/cricketora-sub000/pkg/responses"
	"github.com/jagdish-cm/cricketora-sub000/pkg/token"
	"github.com/jagdish-cm/cricketora-sub000/pkg/validator"
)

// MatchController handles match-related HTTP requests.
type MatchController struct {
	service   *MatchService
	appConfig *config.Config
}

// NewMatchController creates a new match controller.
func NewMatchController(service *MatchService, appConfig *config.Config) *MatchController {
	return &MatchController{service: service, appConfig: appConfig}
}

// sendServiceError maps the scoring error taxonomy onto HTTP statuses.
func sendServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		responses.NotFound(c, "Match")
	case errors.Is(err, scoring.ErrValidation):
		responses.BadRequest(c, err.Error())
	case errors.Is(err, scoring.ErrInvalidState), errors.Is(err, scoring.ErrNotReady):
		responses.Conflict(c, err.Error())
	default:
		responses.InternalServerError(c, err.Error())
	}
}

// --- DTOs ---

// CreateMatchRequest defines the request payload for creating a match.
type CreateMatchRequest struct {
	ScorerEmail string `json:"scorer_email" binding:"required,email"`
}

// CreateMatchResponse returns the new match plus one-time credentials.
type CreateMatchResponse struct {
	Match      *Match `json:"match"`
	AccessCode string `json:"access_code"`
	Token      string `json:"token"`
}

// ResumeMatchRequest exchanges scorer credentials for a session token.
type ResumeMatchRequest struct {
	MatchID     string `json:"match_id" binding:"required"`
	ScorerEmail string `json:"scorer_email" binding:"required,email"`
	AccessCode  string `json:"access_code" binding:"required"`
}

// SelectOpenersRequest seats the opening pair and first bowler.
type SelectOpenersRequest struct {
	StrikerID    string `json:"striker_id" binding:"required"`
	NonStrikerID string `json:"non_striker_id" binding:"required"`
	BowlerID     string `json:"bowler_id" binding:"required"`
}

// SelectPlayerRequest names the incoming batsman or next bowler.
type SelectPlayerRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
}

// --- Handlers ---

// CreateMatch godoc
// @Summary Create a new match
// @Tags matches
// @Accept json
// @Produce json
// @Param request body CreateMatchRequest true "Scorer email"
// @Success 201 {object} responses.SuccessResponse
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	m, code, err := mc.service.CreateMatch(req.ScorerEmail)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	tok, err := token.GenerateScorerToken(m.ID, mc.appConfig.JWT.AccessTokenSecret, mc.appConfig.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "could not issue scorer token")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Match created", CreateMatchResponse{
		Match:      m,
		AccessCode: code,
		Token:      tok,
	})
}

// ResumeMatch godoc
// @Summary Exchange an access code for a scorer session token
// @Tags matches
// @Accept json
// @Produce json
// @Param request body ResumeMatchRequest true "Scorer credentials"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/resume [post]
func (mc *MatchController) ResumeMatch(c *gin.Context) {
	var req ResumeMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}

	m, err := mc.service.VerifyAccess(req.MatchID, req.ScorerEmail, req.AccessCode)
	if err != nil {
		if errors.Is(err, scoring.ErrValidation) {
			responses.Unauthorized(c, "Invalid scorer credentials")
			return
		}
		sendServiceError(c, err)
		return
	}

	tok, err := token.GenerateScorerToken(m.ID, mc.appConfig.JWT.AccessTokenSecret, mc.appConfig.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "could not issue scorer token")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Match resumed", gin.H{"match": m, "token": tok})
}

// GetMatch godoc
// @Summary Get full match state
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatch(c *gin.Context) {
	m, err := mc.service.GetMatch(c.Param("id"))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", m)
}

// SetupMatch godoc
// @Summary Configure teams, toss and rules before the first ball
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param request body SetupRequest true "Match configuration"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{id}/setup [put]
func (mc *MatchController) SetupMatch(c *gin.Context) {
	var req SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}
	m, err := mc.service.SetupMatch(c.Param("id"), req)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match configured", m)
}

// StartMatch godoc
// @Summary Open the first innings
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{id}/start [post]
func (mc *MatchController) StartMatch(c *gin.Context) {
	m, err := mc.service.StartMatch(c.Param("id"))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match started", m)
}

// SelectOpeners godoc
// @Summary Seat the opening batsmen and first bowler
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param request body SelectOpenersRequest true "Opening selections"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{id}/openers [post]
func (mc *MatchController) SelectOpeners(c *gin.Context) {
	var req SelectOpenersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}
	m, err := mc.service.SelectOpeners(c.Param("id"), req.StrikerID, req.NonStrikerID, req.BowlerID)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Openers selected", m)
}

// RecordBall godoc
// @Summary Record one delivery
// @Tags scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param request body scoring.BallInput true "Ball outcome"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{id}/balls [post]
func (mc *MatchController) RecordBall(c *gin.Context) {
	var in scoring.BallInput
	if err := c.ShouldBindJSON(&in); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}
	res, err := mc.service.RecordBall(c.Param("id"), in)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Ball recorded", res)
}

// SelectBatsman godoc
// @Summary Seat the incoming batsman after a wicket
// @Tags scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param request body SelectPlayerRequest true "Incoming batsman"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{id}/batsman [post]
func (mc *MatchController) SelectBatsman(c *gin.Context) {
	var req SelectPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}
	m, err := mc.service.SelectBatsman(c.Param("id"), req.PlayerID)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Batsman selected", m)
}

// SelectBowler godoc
// @Summary Set the bowler for the next over
// @Tags scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param request body SelectPlayerRequest true "Next bowler"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{id}/bowler [post]
func (mc *MatchController) SelectBowler(c *gin.Context) {
	var req SelectPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, validator.ParseError(err))
		return
	}
	m, err := mc.service.SelectBowler(c.Param("id"), req.PlayerID)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Bowler selected", m)
}
