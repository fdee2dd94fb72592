package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookieName = "salon_flash"

// SetFlash stores a one-shot message for the next rendered page.
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookieName, message, 60, "/", "", false, true)
}

// TakeFlash returns the pending flash message, if any, and clears it.
func TakeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookieName)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return message
}

// Render renders an HTML template, injecting any pending flash message
// under the "Flash" key.
func Render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		if flash := TakeFlash(c); flash != "" {
			data["Flash"] = flash
		}
	}
	c.HTML(code, name, data)
}

// NotFoundPage writes a minimal 404 response.
func NotFoundPage(c *gin.Context) {
	c.String(http.StatusNotFound, "404 - página não encontrada")
	c.Abort()
}
