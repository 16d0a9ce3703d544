package dispatcherrors

import (
	"net/http"

	"uns-visa/internal/shared/apperror"
)

var (
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Dispatch assignment not found",
		http.StatusNotFound,
	)
	ErrInvalidAssignmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Assignment ID must be a valid UUID",
		http.StatusBadRequest,
	)
	ErrAssignmentAlreadyEnded = apperror.New(
		apperror.CodeInvalidState,
		"Dispatch assignment has already ended",
		http.StatusConflict,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)
