package handler

import (
	"net/http"
	"time"

	"fleetcheck/internal/delivery/http/response"
	"fleetcheck/internal/domain/entity"
	"fleetcheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account administration handlers.
type AccountHandler struct {
	accountUsecase usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(accountUsecase usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{accountUsecase: accountUsecase}
}

// accountPayload is the wire shape of an account. The password hash never
// leaves the server.
type accountPayload struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAccountPayload(account *entity.Account) accountPayload {
	if account == nil {
		return accountPayload{}
	}

	return accountPayload{
		ID:        account.ID.String(),
		Email:     account.Email,
		Role:      account.Role.String(),
		Verified:  account.Verified,
		CreatedAt: account.CreatedAt,
	}
}

type registerAccountRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin supervisor user"`
}

// Register handles the admin-only account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.accountUsecase.Register(c.Request().Context(), &usecase.RegisterAccountInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountPayload(output.Account), "Account registered")
}

// List handles the admin-only account listing request.
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.accountUsecase.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	payloads := make([]accountPayload, 0, len(accounts))
	for _, account := range accounts {
		payloads = append(payloads, toAccountPayload(account))
	}

	return response.Success(c, http.StatusOK, payloads, "")
}
