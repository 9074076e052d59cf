package job

import "github.com/pkg/errors"

// ErrInvalidArgument is the cause of every error returned by a setter that
// received a missing or wrongly shaped argument.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// IsInvalidArgument reports whether err was caused by ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return err != nil && errors.Cause(err) == ErrInvalidArgument
}
