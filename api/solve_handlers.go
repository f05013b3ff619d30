package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-boggle-engine/internal/analytics"
	"github.com/gcbaptista/go-boggle-engine/internal/board"
	internalErrors "github.com/gcbaptista/go-boggle-engine/internal/errors"
	"github.com/gcbaptista/go-boggle-engine/internal/telemetry"
	"github.com/gcbaptista/go-boggle-engine/model"
)

// SolveRequest carries the board as four rows of four letters.
type SolveRequest struct {
	Board []string `json:"board"`
}

// ScoreRequest carries a board and a word list to judge.
type ScoreRequest struct {
	Board []string     `json:"board"`
	Words []model.Word `json:"words"`
}

// SolveHandler returns the best words on the posted board.
func (api *API) SolveHandler(c *gin.Context) {
	name := c.Param("name")

	var req SolveRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	dict, err := api.engine.GetDictionary(name)
	if err != nil {
		telemetry.SolvesTotal.WithLabelValues(name, "not_found").Inc()
		SendEngineError(c, err, name, "solve")
		return
	}

	grid, err := board.Parse(req.Board)
	if err != nil {
		telemetry.SolvesTotal.WithLabelValues(name, "invalid_board").Inc()
		SendInvalidBoardError(c, err)
		return
	}

	start := time.Now()
	result, err := dict.Solve(c.Request.Context(), grid)
	if err != nil {
		if errors.Is(err, internalErrors.ErrInvalidInput) {
			SendInvalidBoardError(c, err)
			return
		}
		SendSolveError(c, name, err)
		return
	}

	api.analytics.TrackSolveEvent(analytics.EventFromResult(result, time.Since(start)))
	c.JSON(http.StatusOK, result)
}

// ScoreHandler judges a submitted word list against the posted board.
func (api *API) ScoreHandler(c *gin.Context) {
	name := c.Param("name")

	var req ScoreRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateSubmission(req.Words); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	dict, err := api.engine.GetDictionary(name)
	if err != nil {
		SendEngineError(c, err, name, "score")
		return
	}

	grid, err := board.Parse(req.Board)
	if err != nil {
		SendInvalidBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dict.Score(grid, req.Words))
}
