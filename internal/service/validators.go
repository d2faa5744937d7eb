package service

import "fmt"

// ValidateAmount checks that amount meets the configured minimum
func ValidateAmount(amount, minimum int64) error {
	if amount <= 0 {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}
	if amount < minimum {
		return fmt.Errorf("invalid amount: minimum is %d", minimum)
	}

	return nil
}

// ValidateDigits checks that a documento or celular value is a non-empty
// string of digits.
func ValidateDigits(field, value string) error {
	if value == "" {
		return fmt.Errorf("invalid %s: cannot be empty", field)
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid %s: must contain only digits", field)
		}
	}

	return nil
}
