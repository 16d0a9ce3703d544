package agencyerrors

import (
	"net/http"

	"uns-visa/internal/shared/apperror"
)

var (
	ErrAgencyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Agency profile is not registered yet",
		http.StatusNotFound,
	)
)
