package get_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Professional != nil && *req.Professional == "" {
		return fmt.Errorf("%w: professional filter must not be empty", ErrInvalidInput)
	}

	return nil
}
