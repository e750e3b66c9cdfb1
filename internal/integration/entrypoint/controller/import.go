// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/importer"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/entrypoint/dto"
)

// ImportController handles the CSV bulk-import endpoint.
type ImportController struct {
	importUseCase *importer.ImportCSVUseCase
}

// NewImportController creates a new import controller instance.
func NewImportController(importUseCase *importer.ImportCSVUseCase) *ImportController {
	return &ImportController{importUseCase: importUseCase}
}

// Import handles POST /import/csv multipart requests with fields
// email, data_type and file.
func (c *ImportController) Import(ctx *gin.Context) {
	// Parse multipart form fields
	email := ctx.PostForm("email")
	dataType := ctx.PostForm("data_type")
	if email == "" || dataType == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "email and data_type form fields are required",
		})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "file form field is required",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to open uploaded file",
		})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read uploaded file",
		})
		return
	}

	// Execute use case
	input := importer.ImportCSVInput{
		Email:    email,
		DataType: importer.DataType(dataType),
		Content:  content,
	}
	output, err := c.importUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleImportError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ImportResponse{
		Message:  output.Message,
		Imported: output.Imported,
	})
}

// handleImportError handles import errors and returns appropriate HTTP responses.
func (c *ImportController) handleImportError(ctx *gin.Context, err error) {
	var importErr *domainerror.ImportError
	if errors.As(err, &importErr) {
		ctx.JSON(statusCodeForImportError(importErr.Code), dto.ErrorResponse{
			Error: importErr.Message,
			Code:  string(importErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrUserNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForImportError maps import error codes to HTTP status codes.
func statusCodeForImportError(code domainerror.ImportErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyCSVFile,
		domainerror.ErrCodeInvalidEncoding,
		domainerror.ErrCodeInvalidImportDataType,
		domainerror.ErrCodeBadRow:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
