package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/palemoky/prosody-scorer/internal/errors"
	"github.com/palemoky/prosody-scorer/internal/prosody"
	"github.com/palemoky/prosody-scorer/internal/rhyme"
)

// ScoreRequest is the POST /api/v1/score request body: a single poem plus
// its declared form, per spec.md §6's input record.
type ScoreRequest struct {
	Content     string `json:"content" binding:"required"`
	Instruct    string `json:"instruct" binding:"required"`
	Title       string `json:"title"`
	RhymeSystem string `json:"rhyme_system"`
	Detailed    bool   `json:"detailed"`
}

// ScoreResponse mirrors spec.md §6's per-poem output record.
type ScoreResponse struct {
	FormatScore        float64  `json:"format_score"`
	PingzeScore        float64  `json:"pingze_score"`
	RhymeScore         float64  `json:"rhyme_score"`
	RhymeScorePingshui float64  `json:"rhyme_score_pingshui"`
	RhymeScoreXin      float64  `json:"rhyme_score_xin"`
	RhymeScoreTong     float64  `json:"rhyme_score_tong"`
	Report             string   `json:"report,omitempty"`
	Errors             []string `json:"errors,omitempty"`
}

// ScoreHandler implements POST /api/v1/score: it wraps the pure prosody
// engine, translating its Output into the wire response.
func ScoreHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ScoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apiErr := apierrors.InvalidRequest(err.Error())
			c.JSON(apiErr.HTTPStatus, apiErr)
			return
		}

		book, ok := rhyme.ParseBook(req.RhymeSystem)
		if !ok {
			apiErr := apierrors.InvalidRequest("rhyme_system must be one of pingshui, xin, tong")
			c.JSON(apiErr.HTTPStatus, apiErr)
			return
		}

		if _, ok := prosody.ParseDeclaredForm(req.Instruct); !ok {
			apiErr := apierrors.InvalidRequest("instruct must be one of 五言绝句, 七言绝句, 五言律诗, 七言律诗")
			c.JSON(apiErr.HTTPStatus, apiErr)
			return
		}

		out := prosody.Score(req.Content, req.Title, req.Instruct, book, req.Detailed)

		resp := ScoreResponse{
			FormatScore:        out.Form,
			PingzeScore:        out.Tone,
			RhymeScore:         out.Rhyme,
			RhymeScorePingshui: out.RhymeScorePingshui,
			RhymeScoreXin:      out.RhymeScoreXin,
			RhymeScoreTong:     out.RhymeScoreTong,
			Report:             out.Report,
		}
		for _, e := range out.Result.Errors {
			resp.Errors = append(resp.Errors, string(e))
		}

		c.JSON(http.StatusOK, resp)
	}
}
