package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Time string `binding:"required,iso8601"`
}

func TestRegisterValidation(t *testing.T) {
	err := RegisterValidation()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	request, err := http.NewRequest("GET", "/", nil)
	assert.NoError(t, err)
	ctx.Request = request

	err = ctx.ShouldBind(&payload{Time: "2024-06-01T10:00:00Z"})
	assert.NoError(t, err)

	err = ctx.ShouldBind(&payload{Time: "2024-06-01T10:00:00"})
	assert.NoError(t, err)

	err = ctx.ShouldBind(&payload{Time: "not-a-date"})
	assert.Error(t, err)
	assert.Equal(t, "Key: 'payload.Time' Error:Field validation for 'Time' failed on the 'iso8601' tag", err.Error())
}
