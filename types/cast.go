package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
)

var (
	errNullValue  = errors.New("null value")
	errCastFailed = errors.New("cast failed")
)

// CastTo copies v into dst. Supported destinations are *string, *int64,
// *int, *float64, *bool, *time.Time, *Value and *interface{}.
// Pointer-to-pointer destinations receive nil for null values.
func CastTo(v Value, dst interface{}) error {
	switch d := dst.(type) {
	case *Value:
		*d = v

		return nil
	case *interface{}:
		*d = v.Any()

		return nil
	case **string:
		return castOptional(v, d)
	case **int64:
		return castOptional(v, d)
	case **float64:
		return castOptional(v, d)
	case **bool:
		return castOptional(v, d)
	case **time.Time:
		return castOptional(v, d)
	}
	if v.null {
		return xerrors.WithStackTrace(fmt.Errorf("%w: cannot cast %s to %T", errNullValue, v.t, dst))
	}
	switch d := dst.(type) {
	case *string:
		*d = v.String()

		return nil
	case *int64:
		if v.t == TypeInteger {
			*d = v.i

			return nil
		}
	case *int:
		if v.t == TypeInteger {
			*d = int(v.i)

			return nil
		}
	case *float64:
		switch v.t {
		case TypeDouble:
			*d = v.f

			return nil
		case TypeInteger:
			*d = float64(v.i)

			return nil
		}
	case *bool:
		if v.t == TypeBoolean {
			*d = v.b

			return nil
		}
	case *time.Time:
		if v.t == TypeTimestamp {
			*d = v.ts

			return nil
		}
	}

	return xerrors.WithStackTrace(fmt.Errorf("%w: %s to %T", errCastFailed, v.t, dst))
}

func castOptional[T any](v Value, dst **T) error {
	if v.null {
		*dst = nil

		return nil
	}
	var t T
	if err := CastTo(v, &t); err != nil {
		return err
	}
	*dst = &t

	return nil
}
