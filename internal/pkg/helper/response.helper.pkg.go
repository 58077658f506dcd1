package helper

import (
	types "checkout-gateway/internal/common/type"
	"checkout-gateway/internal/pkg/logger"
	"net/http"
)

// ParseResponse normalizes a service response: fills a default message,
// logs server-side failures, and returns the same *types.Response for the
// handler's send func.
func ParseResponse(r *types.Response) *types.Response {
	if r.Code == 0 {
		r.Code = http.StatusOK
	}

	if r.Message == "" {
		r.Message = http.StatusText(r.Code)
	}

	if r.Error != nil && r.Code >= http.StatusInternalServerError {
		logger.Error.Printf("%s: %v", r.Message, r.Error)
	}

	return r
}
