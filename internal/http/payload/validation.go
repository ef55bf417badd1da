package payload

import (
	"fmt"
	"regexp"
	"time"

	"github.com/jellydator/validation"
)

var (
	addressRegex = regexp.MustCompile(`^0[xX][0-9a-fA-F]{1,40}$`)
	emailRegex   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	kwhRegex     = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)?$`)
)

var rfc3339 = validation.Date(time.RFC3339).Error("must be an RFC 3339 timestamp")

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
