package handler

import (
	"errors"
	"net/url"

	"github.com/gin-gonic/gin"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/middleware"
)

// flashCookie carries a one-shot status message across a redirect
const flashCookie = "fintrack_flash"

// setFlash stores a message for the next page render
func setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(message), 60, "/", "", false, true)
}

// takeFlash reads and clears the pending flash message
func takeFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}

// pageData assembles the fields every template expects: the signed-in
// user when there is one, and any pending flash message
func pageData(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	if user := middleware.CurrentUser(c); user != nil {
		data["User"] = user
	}
	if flash := takeFlash(c); flash != "" {
		data["Flash"] = flash
	}
	if id := middleware.CurrentRequestID(c); id != "" {
		data["RequestID"] = id
	}
	return data
}

// userMessage returns the text shown inline on a form. Domain errors read
// well as written; anything unexpected collapses to a generic message so
// internals never reach the page.
func userMessage(err error) string {
	if errs.ErrorCode(err) == errs.CodeInternalServer {
		return "Something went wrong. Please try again."
	}
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}
