package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/domain/port/usecase"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/dto"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/middleware"
)

// CookieSettings is how the session cookie gets written
type CookieSettings struct {
	Name   string
	MaxAge int
	Secure bool
}

// AuthHandler handles signup, login, logout and passcode changes
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookie      CookieSettings
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	authUseCase usecase.AuthUseCase,
	cookie CookieSettings,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookie:      cookie,
		logger:      logger,
	}
}

// setSessionCookie writes the session token with the configured attributes.
// SameSite=Lax keeps cross-site POSTs cookie-less.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
}

// clearSessionCookie drops the session cookie
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}

// Home handles GET / and sends the browser where it belongs
func (h *AuthHandler) Home(c *gin.Context) {
	token, err := c.Cookie(h.cookie.Name)
	if err == nil && token != "" {
		if _, _, err := h.authUseCase.Authenticate(c.Request.Context(), token); err == nil {
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

// ShowSignup handles GET /signup
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", pageData(c, gin.H{}))
}

// Signup handles POST /signup: create the account, sign in, go to the dashboard
func (h *AuthHandler) Signup(c *gin.Context) {
	var form dto.SignUpForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", pageData(c, gin.H{
			"Error": "Could not read the form. Please try again.",
		}))
		return
	}

	if form.Passcode != form.ConfirmPasscode {
		c.HTML(http.StatusBadRequest, "signup.html", pageData(c, gin.H{
			"Error":    "Passcodes do not match",
			"Username": form.Username,
		}))
		return
	}

	user, err := h.authUseCase.SignUp(c.Request.Context(), form.Username, form.Passcode)
	if err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", pageData(c, gin.H{
			"Error":    userMessage(err),
			"Username": form.Username,
		}))
		return
	}

	// Open the first session right away
	_, session, err := h.authUseCase.SignIn(c.Request.Context(), user.Username, form.Passcode)
	if err != nil {
		h.logger.Error("Sign-in after signup failed", map[string]any{
			"username": user.Username,
			"error":    err.Error(),
		})
		setFlash(c, "Account created. Please sign in.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	h.setSessionCookie(c, session.Token)
	setFlash(c, "Welcome to FinTrack!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageData(c, gin.H{}))
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", pageData(c, gin.H{
			"Error": "Could not read the form. Please try again.",
		}))
		return
	}

	_, session, err := h.authUseCase.SignIn(c.Request.Context(), form.Username, form.Passcode)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", pageData(c, gin.H{
			"Error":    userMessage(err),
			"Username": form.Username,
		}))
		return
	}

	h.setSessionCookie(c, session.Token)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if session := middleware.CurrentSession(c); session != nil {
		if err := h.authUseCase.SignOut(c.Request.Context(), session.Token); err != nil {
			h.logger.Warn("Sign-out failed", map[string]any{
				"error": err.Error(),
			})
		}
	}

	h.clearSessionCookie(c)
	setFlash(c, "Signed out.")
	c.Redirect(http.StatusSeeOther, "/login")
}

// ShowSettings handles GET /settings
func (h *AuthHandler) ShowSettings(c *gin.Context) {
	c.HTML(http.StatusOK, "settings.html", pageData(c, gin.H{}))
}

// ChangePasscode handles POST /settings/passcode. Every other session of
// the user gets revoked; the current one stays signed in.
func (h *AuthHandler) ChangePasscode(c *gin.Context) {
	user := middleware.CurrentUser(c)
	session := middleware.CurrentSession(c)

	var form dto.ChangePasscodeForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "settings.html", pageData(c, gin.H{
			"Error": "Could not read the form. Please try again.",
		}))
		return
	}

	if form.NewPasscode != form.ConfirmPasscode {
		c.HTML(http.StatusBadRequest, "settings.html", pageData(c, gin.H{
			"Error": "New passcodes do not match",
		}))
		return
	}

	err := h.authUseCase.ChangePasscode(
		c.Request.Context(),
		user.ID,
		form.CurrentPasscode,
		form.NewPasscode,
		session.Token,
	)
	if err != nil {
		c.HTML(http.StatusBadRequest, "settings.html", pageData(c, gin.H{
			"Error": userMessage(err),
		}))
		return
	}

	setFlash(c, "Passcode updated. Other sessions were signed out.")
	c.Redirect(http.StatusSeeOther, "/settings")
}
