package domain

import "fmt"

const maxNameLength = 100

// ValidatePlayerName checks the display name constraint (required, <= 100 chars).
func ValidatePlayerName(name string) error {
	if name == "" {
		return ErrValidation("player name is required")
	}
	if len(name) > maxNameLength {
		return ErrValidation(fmt.Sprintf("player name exceeds %d characters", maxNameLength))
	}
	return nil
}

// ValidateSeasonName checks that a season name is present.
func ValidateSeasonName(name string) error {
	if name == "" {
		return ErrValidation("season name is required")
	}
	return nil
}

// ValidateGameNumber checks that a game number is positive.
func ValidateGameNumber(n int) error {
	if n <= 0 {
		return ErrValidation(fmt.Sprintf("game number must be positive, got %d", n))
	}
	return nil
}
