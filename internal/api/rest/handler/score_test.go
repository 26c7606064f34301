package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScoreRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/score", ScoreHandler())
	return router
}

func postScore(t *testing.T, router *gin.Engine, body ScoreRequest) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/score", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestScoreHandlerCanonicalPoem(t *testing.T) {
	router := newScoreRouter()
	w := postScore(t, router, ScoreRequest{
		Content:  "白日依山尽，黄河入海流。欲穷千里目，更上一层楼。",
		Instruct: "五言绝句",
		Title:    "登鹳雀楼",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100.0, resp.FormatScore)
	assert.Equal(t, 100.0, resp.RhymeScore)
	assert.Empty(t, resp.Report, "detailed=false should omit the report")
}

func TestScoreHandlerDetailedIncludesReport(t *testing.T) {
	router := newScoreRouter()
	w := postScore(t, router, ScoreRequest{
		Content:  "白日依山尽，黄河入海流。欲穷千里目，更上一层楼。",
		Instruct: "五言绝句",
		Detailed: true,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Report)
}

func TestScoreHandlerRejectsMissingContent(t *testing.T) {
	router := newScoreRouter()
	w := postScore(t, router, ScoreRequest{Instruct: "五言绝句"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScoreHandlerRejectsBadRhymeSystem(t *testing.T) {
	router := newScoreRouter()
	w := postScore(t, router, ScoreRequest{
		Content:     "白日依山尽，黄河入海流。欲穷千里目，更上一层楼。",
		Instruct:    "五言绝句",
		RhymeSystem: "klingon",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScoreHandlerRejectsBadInstruct(t *testing.T) {
	router := newScoreRouter()
	w := postScore(t, router, ScoreRequest{
		Content:  "白日依山尽，黄河入海流。欲穷千里目，更上一层楼。",
		Instruct: "五言歪诗",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScoreHandlerLengthMismatchStillReturnsOK(t *testing.T) {
	router := newScoreRouter()
	w := postScore(t, router, ScoreRequest{
		Content:  "甲乙丙丁戊己庚辛壬癸子丑寅卯辰巳",
		Instruct: "五言绝句",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.0, resp.RhymeScore)
	assert.NotEmpty(t, resp.Errors)
}
