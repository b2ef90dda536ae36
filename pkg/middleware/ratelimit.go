package middleware

import (
	"net/http"

	"github.com/didip/tollbooth/v7"

	"github.com/fkhayef/wedding-rsvp/pkg/response"
)

// RateLimit allows perSecond requests per client IP and answers the rest with 429.
// The client IP is RemoteAddr only; forwarding headers are client controlled.
func RateLimit(perSecond float64) func(http.Handler) http.Handler {
	lmt := tollbooth.NewLimiter(perSecond, nil)
	lmt.SetIPLookups([]string{"RemoteAddr"})
	lmt.SetMessageContentType("application/json")
	lmt.SetMessage(response.ErrorBody("RATE_LIMITED", "Too many requests, slow down"))

	return func(next http.Handler) http.Handler {
		return tollbooth.LimitHandler(lmt, next)
	}
}
