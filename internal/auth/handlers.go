package auth

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookclub/internal/config"
)

// isLocalPath validates that a redirect path is local to prevent open
// redirect attacks.
func isLocalPath(path string) bool {
	if path == "" {
		return false
	}
	if !strings.HasPrefix(path, "/") {
		return false
	}
	// Protocol-relative URLs (//evil.com)
	if strings.HasPrefix(path, "//") {
		return false
	}
	if strings.Contains(path, "://") {
		return false
	}
	if strings.Contains(path, "\\") {
		return false
	}
	return true
}

// sanitizeRedirectPath returns a safe redirect path, defaulting to "/".
func sanitizeRedirectPath(path string) string {
	if isLocalPath(path) {
		return path
	}
	return "/"
}

// Controller handles the registration, sign-in and log-off pages.
type Controller struct {
	service        *Service
	sessionManager *SessionManager
	templates      *template.Template
	rateLimiter    *RateLimiter
}

// NewController creates a new authentication controller. Templates are
// loaded from <templatesPath>/auth/*.html; when absent the controller
// degrades to JSON responses.
func NewController(service *Service, sessionManager *SessionManager, templatesPath string, cfg config.Auth) *Controller {
	pattern := filepath.Join(templatesPath, "auth", "*.html")
	tmpl, err := template.ParseGlob(pattern)
	if err != nil {
		tmpl = nil
	}

	rateLimiter := NewRateLimiter(RateLimitConfig{
		MaxAttempts:     cfg.MaxLoginAttempts,
		WindowDuration:  cfg.RateLimitWindow,
		LockoutDuration: cfg.LockoutDuration,
	})

	return &Controller{
		service:        service,
		sessionManager: sessionManager,
		templates:      tmpl,
		rateLimiter:    rateLimiter,
	}
}

// Stop releases the rate limiter's background goroutine.
func (ctrl *Controller) Stop() {
	if ctrl.rateLimiter != nil {
		ctrl.rateLimiter.Stop()
	}
}

// RegisterRoutes registers authentication routes on the router.
func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/register", ctrl.RegisterPage)
	router.POST("/register", ctrl.Register)
	router.GET("/login", ctrl.LoginPage)
	router.POST("/login", ctrl.Login)
	router.POST("/logout", ctrl.Logout)
	router.GET("/logout", ctrl.Logout) // Support GET for simple logout links
}

// RegisterPage renders the registration form.
func (ctrl *Controller) RegisterPage(c *gin.Context) {
	if ctrl.sessionManager != nil && ctrl.sessionManager.IsAuthenticated(c.Request) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	ctrl.renderTemplate(c, http.StatusOK, "register.html", gin.H{
		"Title":     "Register",
		"CSRFToken": GetCSRFToken(c),
		"Error":     c.Query("error"),
	})
}

// Register handles the registration form submission. Every failure mode
// (taken username, taken email, weak password) re-renders the form with
// a single generic message plus the validation detail.
func (ctrl *Controller) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := ctrl.service.Register(username, email, password)
	if err != nil {
		ctrl.renderTemplate(c, http.StatusBadRequest, "register.html", gin.H{
			"Title":     "Register",
			"Username":  username,
			"Email":     email,
			"CSRFToken": GetCSRFToken(c),
			"Error":     "Could not create account: " + err.Error(),
		})
		return
	}

	// Sign the new user straight in, matching the original flow
	if ctrl.sessionManager != nil {
		if err := ctrl.sessionManager.CreateSession(c.Request, user); err != nil {
			c.Redirect(http.StatusFound, "/login")
			return
		}
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// LoginPage renders the sign-in form.
func (ctrl *Controller) LoginPage(c *gin.Context) {
	if ctrl.sessionManager != nil && ctrl.sessionManager.IsAuthenticated(c.Request) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	next := sanitizeRedirectPath(c.Query("next"))

	ctrl.renderTemplate(c, http.StatusOK, "login.html", gin.H{
		"Title":     "Sign in",
		"Next":      next,
		"CSRFToken": GetCSRFToken(c),
		"Error":     c.Query("error"),
	})
}

// Login handles the sign-in form submission. The identifier field
// accepts a username or an email address. Repeated failures from the
// same client for the same identifier are throttled.
func (ctrl *Controller) Login(c *gin.Context) {
	identifier := c.PostForm("name_email")
	password := c.PostForm("password")
	next := sanitizeRedirectPath(c.PostForm("next"))
	clientIP := c.ClientIP()

	if allowed, retryAfter := ctrl.rateLimiter.Allow(clientIP, identifier); !allowed {
		c.Header("Retry-After", retryAfter.String())
		ctrl.renderTemplate(c, http.StatusTooManyRequests, "login.html", gin.H{
			"Title":      "Sign in",
			"Next":       next,
			"Identifier": identifier,
			"CSRFToken":  GetCSRFToken(c),
			"Error":      "Too many sign-in attempts. Please try again later.",
		})
		return
	}

	user, err := ctrl.service.Authenticate(identifier, password)
	if err != nil {
		ctrl.rateLimiter.RecordFailure(clientIP, identifier)
		ctrl.renderTemplate(c, http.StatusUnauthorized, "login.html", gin.H{
			"Title":      "Sign in",
			"Next":       next,
			"Identifier": identifier,
			"CSRFToken":  GetCSRFToken(c),
			"Error":      "Invalid username/email or password",
		})
		return
	}

	ctrl.rateLimiter.RecordSuccess(clientIP, identifier)

	if ctrl.sessionManager != nil {
		if err := ctrl.sessionManager.CreateSession(c.Request, user); err != nil {
			ctrl.renderTemplate(c, http.StatusInternalServerError, "login.html", gin.H{
				"Title":      "Sign in",
				"Next":       next,
				"Identifier": identifier,
				"CSRFToken":  GetCSRFToken(c),
				"Error":      "Failed to create session",
			})
			return
		}
	}

	c.Redirect(http.StatusFound, next)
}

// Logout destroys the session and returns to the sign-in page.
func (ctrl *Controller) Logout(c *gin.Context) {
	if ctrl.sessionManager != nil {
		_ = ctrl.sessionManager.DestroySession(c.Request)
	}
	c.Redirect(http.StatusFound, "/login")
}

// renderTemplate renders an auth template or falls back to JSON.
func (ctrl *Controller) renderTemplate(c *gin.Context, status int, name string, data gin.H) {
	if ctrl.templates == nil {
		c.JSON(status, data)
		return
	}

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := ctrl.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		c.String(http.StatusInternalServerError, "Template error: %v", err)
	}
}
