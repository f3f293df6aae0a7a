package domain

import "errors"

// Domain errors
var (
	ErrSiteNotFound      = errors.New("site not found")
	ErrSiteExists        = errors.New("site already exists")
	ErrInvalidURL        = errors.New("invalid url")
	ErrInvalidSite       = errors.New("invalid site configuration")
	ErrStoreNotFound     = errors.New("site store not found")
	ErrMonitorNotRunning = errors.New("monitor not running")
)

// Error codes for API responses
const (
	ErrCodeSiteNotFound      = "SITE_NOT_FOUND"
	ErrCodeSiteExists        = "SITE_EXISTS"
	ErrCodeInvalidURL        = "INVALID_URL"
	ErrCodeInvalidSite       = "INVALID_SITE"
	ErrCodeMonitorNotRunning = "MONITOR_NOT_RUNNING"
)

// ErrorCode returns the API error code for a domain error
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrSiteNotFound):
		return ErrCodeSiteNotFound
	case errors.Is(err, ErrSiteExists):
		return ErrCodeSiteExists
	case errors.Is(err, ErrInvalidURL):
		return ErrCodeInvalidURL
	case errors.Is(err, ErrInvalidSite):
		return ErrCodeInvalidSite
	case errors.Is(err, ErrMonitorNotRunning):
		return ErrCodeMonitorNotRunning
	default:
		return "INTERNAL_ERROR"
	}
}
