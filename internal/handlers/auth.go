package handlers

import (
	"database/sql"
	"net/http"
	"regexp"
	"strings"

	"styleai/internal/config"
	"styleai/internal/database"
	emailService "styleai/internal/email"
	"styleai/internal/logger"

	"github.com/gin-gonic/gin"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func handleRegister(db *sql.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)

		errors := make(map[string]string)
		if len(req.Name) < 1 || len(req.Name) > 60 {
			errors["name"] = "Name must be between 1 and 60 characters"
		}
		if !emailRegex.MatchString(req.Email) {
			errors["email"] = "Please enter a valid email address"
		}
		if len(req.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters"
		}
		if len(errors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errors})
			return
		}

		user, err := database.CreateUser(db, req.Name, req.Email, req.Password)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint failed") {
				c.JSON(http.StatusConflict, gin.H{"error": "An account with that email already exists"})
				return
			}
			logger.Error("Failed to create user", "email", req.Email, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		emailSvc, _ := c.Get("email_service")
		if service, ok := emailSvc.(*emailService.Service); ok && service.IsEnabled() {
			if err := service.SendWelcomeEmail(user); err != nil {
				logger.Warn("Failed to send welcome email",
					"email", user.Email,
					"user_id", user.ID,
					"error", err)
			}
		}

		session, err := database.CreateSession(db, user.ID, cfg.SessionDuration)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		setSessionCookie(c, cfg, session.ID)
		logger.Info("User registered", "user_id", user.ID, "email", user.Email)
		c.JSON(http.StatusCreated, gin.H{"user": user})
	}
}

func handleLogin(db *sql.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		user, err := database.AuthenticateUser(db, strings.TrimSpace(req.Email), req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		session, err := database.CreateSession(db, user.ID, cfg.SessionDuration)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		setSessionCookie(c, cfg, session.ID)
		logger.Info("User logged in", "user_id", user.ID)
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

func handleLogout(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID, err := c.Cookie("session_id"); err == nil {
			if err := database.DeleteSession(db, sessionID); err != nil {
				logger.Warn("Failed to delete session", "session_id", sessionID, "error", err)
			}
		}

		userID := c.MustGet("user_id").(int)
		stores.evict(userID)
		evictSuggester(userID)

		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie("session_id", "", -1, "/", "", true, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

func setSessionCookie(c *gin.Context, cfg *config.Config, sessionID string) {
	c.SetSameSite(http.SameSiteStrictMode)
	secure := !cfg.IsDevelopment()
	c.SetCookie("session_id", sessionID, int(cfg.SessionDuration.Seconds()), "/", "", secure, true)
}
