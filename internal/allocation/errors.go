package allocation

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateBand  = errors.New("duplicate band name")
	ErrInvalidBand    = errors.New("invalid band descriptor")
	ErrUnknownBand    = errors.New("unknown band")
	ErrDuplicateEntry = errors.New("duplicate entry for registrant and band")
	ErrLayoutOverflow = errors.New("too many bands for report layout")
)

// ConfigurationError reports tournament data that cannot be allocated or laid
// out. It is fatal for a run: nothing is written to the report.
type ConfigurationError struct {
	Err    error
	Detail string
}

func (e *ConfigurationError) Error() string {
	if e.Detail == "" {
		return "configuration error: " + e.Err.Error()
	}

	return fmt.Sprintf("configuration error: %s: %s", e.Err, e.Detail)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configErrorf(err error, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

// IsConfigurationError reports whether err carries a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
