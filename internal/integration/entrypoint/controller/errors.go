package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerror "github.com/chart-of-accounts/backend/internal/domain/error"
	"github.com/chart-of-accounts/backend/internal/integration/entrypoint/dto"
)

// handleError maps domain errors to HTTP responses. Store failures and
// errors outside the taxonomy are logged and reported as 500.
func handleError(ctx *gin.Context, err error) {
	code, ok := domainerror.CodeOf(err)
	if !ok || code == domainerror.ErrCodeStorage {
		slog.Error("Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		response := dto.ErrorResponse{Error: "An internal error occurred"}
		if ok {
			response.Code = string(code)
		}
		ctx.JSON(http.StatusInternalServerError, response)
		return
	}

	message := err.Error()
	var chartErr *domainerror.ChartError
	if errors.As(err, &chartErr) {
		message = chartErr.Message
	}

	ctx.JSON(statusCodeFor(code), dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

// statusCodeFor maps chart error codes to HTTP status codes.
func statusCodeFor(code domainerror.ChartErrorCode) int {
	switch code {
	case domainerror.ErrCodeChartNotFound,
		domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAccountCodeExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidChartType,
		domainerror.ErrCodeInvalidChartVersion,
		domainerror.ErrCodeInvalidAccountCode,
		domainerror.ErrCodeInvalidAccountName,
		domainerror.ErrCodeInvalidPagination,
		domainerror.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx *gin.Context, message string, err error) {
	response := dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeInvalidRequest),
	}
	if err != nil {
		response.Details = err.Error()
	}
	ctx.JSON(http.StatusBadRequest, response)
}

// chartIDParam parses the :id path parameter, writing a 400 when it is malformed.
func chartIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(ctx, "Invalid chart ID format", nil)
		return 0, false
	}
	return id, true
}
