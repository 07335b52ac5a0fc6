package http

import (
	"errors"
	"net/http"

	"github.com/marketcore/vendor-shipping/internal/service"
	"github.com/marketcore/vendor-shipping/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongAPIKey:             http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotOptionOwner:          http.StatusForbidden,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrSellerNotFound:              http.StatusUnauthorized,
	store.ErrServiceZoneNotFound:         http.StatusNotFound,
	store.ErrShippingOptionNotFound:      http.StatusNotFound,
	store.ErrLinkNotFound:                http.StatusNotFound,
	store.ErrShippingOptionAlreadyLinked: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
