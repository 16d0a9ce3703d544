package clientcompanyerrors

import (
	"net/http"

	"uns-visa/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Client company not found",
		http.StatusNotFound,
	)
	ErrCompanyAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A client company with the same corporation number or name already exists",
		http.StatusConflict,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid client company ID",
		http.StatusBadRequest,
	)
	ErrInvalidCorporationNumber = apperror.New(
		apperror.CodeInvalidInput,
		"Corporation number must be 13 digits",
		http.StatusBadRequest,
	)
	ErrInvalidInsuranceNumber = apperror.New(
		apperror.CodeInvalidInput,
		"Employment insurance number must be 11 digits",
		http.StatusBadRequest,
	)
	ErrInvalidPhone = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid phone number format",
		http.StatusBadRequest,
	)
	ErrInvalidPostalCode = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid postal code format",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
