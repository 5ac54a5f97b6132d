package retry

import (
	"errors"
	"fmt"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
)

var errPanic = errors.New("panic recovered")

// Mode describes how the retry loop treats an error.
type Mode struct {
	code        string
	errType     xerrors.Type
	backoffType backoff.Type
}

func (m Mode) Code() string {
	return m.code
}

func (m Mode) MustRetry() bool {
	return m.errType == xerrors.TypeRetryable
}

func (m Mode) BackoffType() backoff.Type {
	return m.backoffType
}

func (m Mode) String() string {
	return fmt.Sprintf("{code:%q,type:%s,backoff:%s}", m.code, m.errType, m.backoffType)
}

// Check returns retry mode for err.
func Check(err error) Mode {
	code, errType, backoffType := xerrors.Check(err)

	return Mode{
		code:        code,
		errType:     errType,
		backoffType: backoffType,
	}
}
