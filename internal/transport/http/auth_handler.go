package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Parindya2/TripRoute/internal/domain"
	"github.com/Parindya2/TripRoute/internal/service"
	"github.com/Parindya2/TripRoute/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}

	group := e.Group("/api/v1/auth")
	group.POST("/login", handler.login)
	group.POST("/register", handler.register)
	group.POST("/refresh", handler.refresh)

	protected := e.Group("/api/v1/auth", RequireAuth(auth))
	protected.GET("/me", handler.me)
	protected.POST("/logout", handler.logout)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	user, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		var verrs util.ValidationErrors
		if errors.As(err, &verrs) {
			return c.JSON(http.StatusBadRequest, util.FieldErrors(verrs))
		}
		return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"user":  user,
		"token": h.auth.Token(),
	})
}

func (h *AuthHandler) register(c echo.Context) error {
	var req struct {
		FirstName       string `json:"firstName"`
		LastName        string `json:"lastName"`
		Email           string `json:"email"`
		Username        string `json:"username"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	user, err := h.auth.Register(c.Request().Context(), domain.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
	}, req.ConfirmPassword)
	if err != nil {
		var verrs util.ValidationErrors
		if errors.As(err, &verrs) {
			return c.JSON(http.StatusBadRequest, util.FieldErrors(verrs))
		}
		return c.JSON(http.StatusBadGateway, util.Error(err.Error()))
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"user":    user,
		"message": "Account created. Please sign in.",
	})
}

func (h *AuthHandler) refresh(c echo.Context) error {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, util.Error("refreshToken is required"))
	}

	session, err := h.auth.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"token":         session.Token,
		"refresh_token": session.RefreshToken,
	})
}

func (h *AuthHandler) me(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	return c.JSON(http.StatusOK, util.Data("user", user))
}

func (h *AuthHandler) logout(c echo.Context) error {
	h.auth.Logout()
	return c.JSON(http.StatusOK, util.Envelope{"message": "Signed out"})
}
