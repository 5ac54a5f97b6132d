package xerrors

import (
	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
)

// Check returns retry mode for err.
func Check(err error) (
	code string,
	errType Type,
	backoffType backoff.Type,
) {
	if err == nil {
		return "", TypeNoError, backoff.TypeNoBackoff
	}
	var re *retryableError
	var te *transportError
	switch {
	case As(err, &re):
		return re.code, TypeRetryable, re.backoffType
	case As(err, &te):
		return te.code, te.Type(), te.BackoffType()
	default:
		return "", TypeNonRetryable, backoff.TypeNoBackoff
	}
}
