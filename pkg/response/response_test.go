package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		send     func(c *gin.Context)
		wantCode int
		wantBody Response
	}{
		{"success", func(c *gin.Context) { Success(c, "ok") }, http.StatusOK, Response{Code: 0, Message: "success", Data: "ok"}},
		{"bad request", func(c *gin.Context) { BadRequest(c, "bad") }, http.StatusBadRequest, Response{Code: 400, Message: "bad"}},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "who") }, http.StatusUnauthorized, Response{Code: 401, Message: "who"}},
		{"not found", func(c *gin.Context) { NotFound(c, "gone") }, http.StatusNotFound, Response{Code: 404, Message: "gone"}},
		{"throttled", func(c *gin.Context) { TooManyRequests(c, "slow") }, http.StatusTooManyRequests, Response{Code: 429, Message: "slow"}},
		{"internal", func(c *gin.Context) { InternalError(c, "boom") }, http.StatusInternalServerError, Response{Code: 500, Message: "boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tt.send(c)

			assert.Equal(t, tt.wantCode, w.Code)
			var got Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.wantBody, got)
		})
	}
}
