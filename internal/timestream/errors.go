package timestream

import (
	"context"
	"errors"
	"net"

	"github.com/aws/smithy-go"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/transport"
)

const codeUnknown = "Unknown"

var (
	throttlingCodes = map[string]struct{}{
		"ThrottlingException":      {},
		"TooManyRequestsException": {},
		"RequestLimitExceeded":     {},
	}
	transientCodes = map[string]struct{}{
		"InternalServerException":     {},
		"ServiceUnavailable":          {},
		"ServiceUnavailableException": {},
		"RequestTimeout":              {},
		"RequestTimeoutException":     {},
		"InvalidEndpointException":    {},
	}
)

// classify maps errors of the AWS SDK to transport errors. Context errors
// are returned as is.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return xerrors.WithStackTrace(err, xerrors.WithSkipDepth(1))
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		if _, ok := throttlingCodes[code]; ok {
			return transport.Throttled(err, code)
		}
		if _, ok := transientCodes[code]; ok {
			return transport.Transient(err, code)
		}
		if apiErr.ErrorFault() == smithy.FaultServer {
			return transport.Transient(err, code)
		}

		return transport.Permanent(err, code)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return transport.Transient(err, "Timeout")
	}

	return transport.Permanent(err, codeUnknown)
}
