package employeeerrors

import (
	"net/http"

	"uns-visa/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee code already exists",
		http.StatusConflict,
	)
	ErrResidenceCardAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Residence card number is already registered to another worker",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidResidenceCard = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid residence card number format",
		http.StatusBadRequest,
	)
	ErrInvalidPostalCode = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid postal code format",
		http.StatusBadRequest,
	)
	ErrInvalidPhone = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid phone number format",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNoVisaExpireDate = apperror.New(
		apperror.CodeInvalidInput,
		"Worker has no visa expiration date on record",
		http.StatusBadRequest,
	)
)
