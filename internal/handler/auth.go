package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/xtremegk/booking-api/internal/config"
	"github.com/xtremegk/booking-api/internal/repository"
	"github.com/xtremegk/booking-api/internal/utils"
)

// RoleAdmin is the role claim issued to the staff account and required by
// the check-in routes.
const RoleAdmin = "ADMIN"

// AuthHandler issues access tokens for the staff account configured in the
// settings document.
type AuthHandler struct {
	Cfg      config.Config
	Settings *repository.SettingsRepo
}

func NewAuthHandler(cfg config.Config, settings *repository.SettingsRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Settings: settings}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Login handles POST /api/auth/login: verify the admin credentials and
// return a signed, expiring access token. Both a wrong email and a wrong
// password produce the same 401 so the response does not leak which part
// failed.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	admin := h.Settings.Current().Admin
	if req.Email != strings.ToLower(admin.Email) || !utils.VerifyPassword(admin.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}

	access, err := utils.NewAccessToken(admin.JWTSecret, req.Email, RoleAdmin, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, loginResp{Token: access.Token, Expires: access.Exp})
}
