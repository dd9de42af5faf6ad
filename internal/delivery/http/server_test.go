package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestIsMediaUpload(t *testing.T) {
	e := echo.New()

	newContext := func(method, path string) echo.Context {
		req := httptest.NewRequest(method, "/media", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath(path)

		return c
	}

	t.Run("exempts image uploads from the global body limit", func(t *testing.T) {
		assert.True(t, isMediaUpload(newContext(nethttp.MethodPost, "/media")))
	})

	t.Run("keeps the limit on media reads", func(t *testing.T) {
		assert.False(t, isMediaUpload(newContext(nethttp.MethodGet, "/media")))
	})

	t.Run("keeps the limit on other routes", func(t *testing.T) {
		assert.False(t, isMediaUpload(newContext(nethttp.MethodPost, "/orders")))
	})
}
