package exporterrors

import (
	"net/http"

	"uns-visa/internal/shared/apperror"
)

var (
	ErrAgencyNotConfigured = apperror.New(
		apperror.CodeInvalidState,
		"Agency profile is not registered; set it up before exporting forms",
		http.StatusBadRequest,
	)
	ErrUnknownFormType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown application form type",
		http.StatusBadRequest,
	)
)
