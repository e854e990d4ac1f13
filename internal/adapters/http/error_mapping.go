package httpadapter

import (
	"net/http"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrAuditNotFound):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrUnsupportedSource):
		return http.StatusUnsupportedMediaType
	case domain.IsKind(err, domain.ErrTemporary):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
