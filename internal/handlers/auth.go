package handlers

import (
	"net/http"

	"complaint-tracker/internal/middleware"
	"complaint-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	EmailID  string `json:"email_id"`
	MobileNo string `json:"mobile_no"`
	Password string `json:"password"`
}

// loginID picks the identifier the role logs in with.
func (r loginRequest) loginID(role models.UserRole) string {
	if role == models.RoleWorker {
		return r.MobileNo
	}
	return r.EmailID
}

type loginResponse struct {
	Message string          `json:"message"`
	User    models.Account  `json:"user"`
	Role    models.UserRole `json:"role"`
}

// Login returns the handler for POST /login/<role>.
func (h *Handler) Login(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, msgInvalidRequest)
			return
		}

		loginID := req.loginID(role)
		if loginID == "" || req.Password == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": msgInvalidCredentials})
			return
		}

		account, err := h.accounts.Login(c.Request.Context(), role, loginID, req.Password)
		if err != nil {
			h.respondError(c, "login "+role.String(), err)
			return
		}

		sess := sessions.Default(c)
		sess.Set(middleware.SessionUserKey, account.LoginID())
		sess.Set(middleware.SessionRoleKey, string(role))
		if err := sess.Save(); err != nil {
			h.respondError(c, "save session", err)
			return
		}

		c.JSON(http.StatusOK, loginResponse{
			Message: "Login successful",
			User:    account,
			Role:    role,
		})
	}
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := sess.Save(); err != nil {
		h.respondError(c, "clear session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Session reports who is logged in. Routed behind middleware.RequireAuth.
func (h *Handler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id": c.GetString(middleware.SessionUserKey),
		"role":    c.GetString(middleware.SessionRoleKey),
	})
}

type changePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// ChangePassword serves PUT /change-password/:userType/:userId.
func (h *Handler) ChangePassword(c *gin.Context) {
	role, ok := models.ParseRole(c.Param("userType"))
	if !ok {
		badRequest(c, "Invalid user type")
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidRequest)
		return
	}

	name, err := h.accounts.ChangePassword(c.Request.Context(), role, c.Param("userId"), req.NewPassword)
	if err != nil {
		h.respondError(c, "change password", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated successfully",
		"user":    gin.H{"name": name},
	})
}
