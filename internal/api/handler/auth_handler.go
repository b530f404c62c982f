package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stoykov15/lifeos/internal/api/metrics"
	"github.com/stoykov15/lifeos/internal/api/middleware"
	"github.com/stoykov15/lifeos/internal/core/ports"
)

// AuthHandler handles HTTP requests for the authentication subsystem.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusOK, registerResponse{Msg: "User created", UserID: id})
}

// Login verifies form-encoded credentials and issues a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Account email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  loginResponse
// @Failure      400  {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	email := c.FormValue("username")
	password := c.FormValue("password")

	token, err := h.auth.Login(c.Request().Context(), email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the profile of the authenticated user.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)

	return c.JSON(http.StatusOK, profileResponse{
		ID:            user.ID,
		Email:         user.Email,
		SetupComplete: user.SetupComplete,
	})
}

// ChangePassword replaces the password after re-verifying the current one.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Password change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := middleware.CurrentUser(c)
	if err := h.auth.ChangePassword(c.Request().Context(), user, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Msg: "Password updated"})
}

// Delete hard-deletes the authenticated account.
//
// @Summary      Delete account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/delete [delete]
func (h *AuthHandler) Delete(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if err := h.auth.DeleteAccount(c.Request().Context(), user); err != nil {
		return err
	}

	metrics.AccountsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Msg: "Account deleted"})
}

// Setup persists the one-time profile setup and marks it complete.
//
// @Summary      Complete profile setup
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setupRequest  true  "Profile fields"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/setup [put]
func (h *AuthHandler) Setup(c echo.Context) error {
	var req setupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user := middleware.CurrentUser(c)
	err := h.auth.CompleteSetup(c.Request().Context(), user, ports.ProfileSetup{
		MonthlyIncome: req.MonthlyIncome,
		Goal:          req.Goal,
		FixedExpenses: req.FixedExpenses,
	})
	if err != nil {
		return err
	}

	metrics.SetupCompletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Msg: "Setup complete"})
}
