package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"skillhub/config"
	"skillhub/internal/delivery/http/response"
	"skillhub/internal/domain/entity"
	domainerrors "skillhub/internal/domain/errors"
	"skillhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc                usecase.AuthUsecase
	clientRedirectURL string
	logger            *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	redirectURL := ""
	if cfg.OAuth != nil {
		redirectURL = cfg.OAuth.ClientRedirectURL
	}

	return &AuthHandler{
		uc:                uc,
		clientRedirectURL: redirectURL,
		logger:            logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type oauthLoginRequest struct {
	Credential string `json:"credential" form:"credential" validate:"required"`
}

// userView is the user representation returned to clients. The password
// hash never leaves the server.
type userView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"createdAt"`
}

type authView struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Provider:  user.Provider.String(),
		CreatedAt: user.CreatedAt,
	}
}

func toAuthView(output *usecase.AuthOutput) authView {
	return authView{
		Token: output.Token,
		User:  toUserView(output.User),
	}
}

// Register handles local account registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthView(output), "User registered successfully")
}

// Login handles local credential login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthView(output), "Login successful")
}

// OAuthLogin verifies an external provider credential and signs the caller
// in. With ?redirect=true the browser is sent back to the client app with
// the token in the query string, mirroring the classic callback flow.
func (h *AuthHandler) OAuthLogin(c echo.Context) error {
	provider := entity.ProviderType(c.Param("provider"))
	if !provider.IsValid() {
		return domainerrors.ErrUnsupportedProvider.WrapMessage(provider.String())
	}

	var req oauthLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid provider credential input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.OAuthLogin(c.Request().Context(), usecase.OAuthLoginInput{
		Provider:   provider,
		Credential: req.Credential,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "true" && h.clientRedirectURL != "" {
		target := h.clientRedirectURL + "?token=" + url.QueryEscape(output.Token)

		return c.Redirect(http.StatusFound, target)
	}

	return response.Success(c, http.StatusOK, toAuthView(output), "Login successful")
}
