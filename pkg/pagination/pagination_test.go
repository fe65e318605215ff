package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseDefaults(t *testing.T) {
	p := Parse(ctxWithQuery(""))

	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestParseExplicitValues(t *testing.T) {
	p := Parse(ctxWithQuery("page=3&limit=25"))

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 50, p.Offset)
}

func TestParseClampsLimit(t *testing.T) {
	p := Parse(ctxWithQuery("limit=1000"))
	assert.Equal(t, MaxLimit, p.Limit)

	p = Parse(ctxWithQuery("limit=0"))
	assert.Equal(t, DefaultLimit, p.Limit)
}

func TestParseRejectsBadInput(t *testing.T) {
	p := Parse(ctxWithQuery("page=-2&limit=abc"))

	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
}
