package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chart-of-accounts/backend/internal/application/usecase/account"
	"github.com/chart-of-accounts/backend/internal/integration/entrypoint/dto"
)

// PaginationConfig bounds the page size of account listings.
type PaginationConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// AccountController handles account endpoints.
type AccountController struct {
	listUseCase   *account.ListAccountsUseCase
	getUseCase    *account.GetAccountUseCase
	createUseCase *account.CreateAccountUseCase
	updateUseCase *account.UpdateAccountUseCase
	cloneUseCase  *account.CloneAccountUseCase
	deleteUseCase *account.DeleteAccountUseCase
	pagination    PaginationConfig
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	listUseCase *account.ListAccountsUseCase,
	getUseCase *account.GetAccountUseCase,
	createUseCase *account.CreateAccountUseCase,
	updateUseCase *account.UpdateAccountUseCase,
	cloneUseCase *account.CloneAccountUseCase,
	deleteUseCase *account.DeleteAccountUseCase,
	pagination PaginationConfig,
) *AccountController {
	return &AccountController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		cloneUseCase:  cloneUseCase,
		deleteUseCase: deleteUseCase,
		pagination:    pagination,
	}
}

// List handles GET /charts/:id/accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	chartID, ok := chartIDParam(ctx)
	if !ok {
		return
	}

	start, err := queryInt(ctx, "start", 0)
	if err != nil {
		badRequest(ctx, "Invalid start parameter", err)
		return
	}
	limit, err := queryInt(ctx, "limit", c.pagination.DefaultLimit)
	if err != nil {
		badRequest(ctx, "Invalid limit parameter", err)
		return
	}
	if c.pagination.MaxLimit > 0 && limit > c.pagination.MaxLimit {
		limit = c.pagination.MaxLimit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{
		ChartID: chartID,
		Start:   start,
		Limit:   limit,
		Filter:  ctx.Query("filter"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output))
}

// Get handles GET /charts/:id/accounts/:code requests.
func (c *AccountController) Get(ctx *gin.Context) {
	chartID, ok := chartIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), account.GetAccountInput{
		ChartID: chartID,
		Code:    ctx.Param("code"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Create handles POST /charts/:id/accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	chartID, ok := chartIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), account.CreateAccountInput{
		ChartID:               chartID,
		Code:                  req.Code,
		Name:                  req.Name,
		ReconciliationAllowed: req.ReconciliationAllowed,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// Update handles PATCH /charts/:id/accounts/:code requests.
func (c *AccountController) Update(ctx *gin.Context) {
	chartID, ok := chartIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}
	if req.IsEmpty() {
		badRequest(ctx, "At least one field must be provided", nil)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), account.UpdateAccountInput{
		ChartID:               chartID,
		Code:                  ctx.Param("code"),
		NewCode:               req.Code,
		Name:                  req.Name,
		Deprecated:            req.Deprecated,
		ReconciliationAllowed: req.ReconciliationAllowed,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Clone handles POST /charts/:id/accounts/:code/clone requests.
func (c *AccountController) Clone(ctx *gin.Context) {
	chartID, ok := chartIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CloneAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.cloneUseCase.Execute(ctx.Request.Context(), account.CloneAccountInput{
		ChartID: chartID,
		Code:    ctx.Param("code"),
		NewCode: req.Code,
		Name:    req.Name,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// Delete handles DELETE /charts/:id/accounts/:code requests.
func (c *AccountController) Delete(ctx *gin.Context) {
	chartID, ok := chartIDParam(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), account.DeleteAccountInput{
		ChartID: chartID,
		Code:    ctx.Param("code"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func queryInt(ctx *gin.Context, key string, fallback int) (int, error) {
	value, ok := ctx.GetQuery(key)
	if !ok || value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}
