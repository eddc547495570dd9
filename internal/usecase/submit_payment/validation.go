package submit_payment

import (
	"fmt"
	"strings"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInternal)
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return fmt.Errorf("%w: session id is empty", ErrSessionNotFound)
	}
	return nil
}
