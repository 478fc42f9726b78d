package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/antikleya/USEHelper/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func submitAnswerRequest(testID, questionID string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"givenAnswer":"A"}`))
	ctx.Set("user", &util.Claims{UserID: 1})
	ctx.Params = gin.Params{
		{Key: "id", Value: testID},
		{Key: "questionId", Value: questionID},
	}

	NewTestController(nil, nil).SubmitAnswer(ctx)
	return w
}

// 路径参数非法时必须以 400 拒绝，而不是落到 0 号记录的 404
func TestSubmitAnswer_RejectsMalformedTestID(t *testing.T) {
	w := submitAnswerRequest("abc", "2")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitAnswer_RejectsMalformedQuestionID(t *testing.T) {
	w := submitAnswerRequest("1", "abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTest_RejectsMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Set("user", &util.Claims{UserID: 1})
	ctx.Params = gin.Params{{Key: "id", Value: "abc"}}

	NewTestController(nil, nil).GetTest(ctx)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
