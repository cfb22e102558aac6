package domain

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.\-]{3,20}$`)
)

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateUsername checks that a username is 3-20 word characters.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 3-20 letters, digits, '_', '.' or '-'")
	}
	return nil
}

// ValidateQuantity checks that a purchase quantity is a positive integer.
func ValidateQuantity(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", qty)
	}
	return nil
}

// ValidatePositiveAmount checks that a monetary amount is positive.
func ValidatePositiveAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}
	return nil
}
