package handlers

import (
	"net/http"

	"saarthi/middleware"
	"saarthi/services/auth"
	"saarthi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the authentication endpoints.
type AuthHandler struct {
	Service auth.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// authErrorStatus maps typed auth service errors onto HTTP statuses.
func authErrorStatus(err error) int {
	switch err.(type) {
	case auth.ValidationError:
		return http.StatusBadRequest
	case auth.UnauthorizedError:
		return http.StatusUnauthorized
	case auth.ForbiddenError:
		return http.StatusForbidden
	case auth.ConflictError:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (h *AuthHandler) fail(c *gin.Context, err error) {
	status := authErrorStatus(err)
	if status == http.StatusInternalServerError {
		utils.GetLogger().Error("auth request failed", zap.Error(err))
		c.JSON(status, gin.H{"error": "Request failed, please try again"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// SendOTPHandler issues an OTP for a phone number.
func (h *AuthHandler) SendOTPHandler(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.SendOTP(c.Request.Context(), req.Phone)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyOTPHandler verifies a code and logs the victim in.
func (h *AuthHandler) VerifyOTPHandler(c *gin.Context) {
	var req auth.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Service.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// PoliceLoginHandler authenticates an officer with email and password.
func (h *AuthHandler) PoliceLoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Service.PoliceLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// PoliceRegisterHandler creates a new officer account.
func (h *AuthHandler) PoliceRegisterHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Service.PoliceRegister(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// RegisterVictimHandler pre-registers a victim on behalf of an officer.
func (h *AuthHandler) RegisterVictimHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req auth.RegisterVictimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.RegisterVictim(c.Request.Context(), principal, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	if resp.AlreadyRegistered {
		c.JSON(http.StatusOK, resp)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetUserHandler returns the decoded principal of the current token.
func (h *AuthHandler) GetUserHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, principal)
}

// VerifyTokenHandler confirms token validity.
func (h *AuthHandler) VerifyTokenHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "user": principal})
}
