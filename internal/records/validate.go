package records

import (
	"slices"
	"strings"
	"unicode"
)

// Dutch phone numbers start with 0, 0031 or +31 followed by nine digits that do not
// start with 0.

func PhoneNumberLength(number string) bool {
	switch len(number) {
	case 10, 12, 13:
		return true
	}
	return false
}

func PhoneNumberPrefix(number string) bool {
	return strings.HasPrefix(number, "0") ||
		strings.HasPrefix(number, "0031") ||
		strings.HasPrefix(number, "+31")
}

// PhoneNumberDigits checks every character after the first one.
func PhoneNumberDigits(number string) bool {
	if number == "" {
		return false
	}
	for _, r := range number[1:] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func PhoneNumberSubscriberLength(number string) bool {
	return len(subscriber(number)) == 9
}

func PhoneNumberSubscriberNotZero(number string) bool {
	return !strings.HasPrefix(subscriber(number), "0")
}

func subscriber(number string) string {
	switch {
	case strings.HasPrefix(number, "0031"):
		return number[4:]
	case strings.HasPrefix(number, "+31"):
		return number[3:]
	case number == "":
		return ""
	default:
		return number[1:]
	}
}

// PhoneNumberChecks lists the phone number predicates in evaluation order.
func PhoneNumberChecks() []func(string) bool {
	return []func(string) bool{
		PhoneNumberLength,
		PhoneNumberPrefix,
		PhoneNumberDigits,
		PhoneNumberSubscriberLength,
		PhoneNumberSubscriberNotZero,
	}
}

// UserNameChecks lists the user name predicates in evaluation order.
func UserNameChecks(banned ...string) []func(string) bool {
	return []func(string) bool{
		func(name string) bool { return strings.TrimSpace(name) != "" },
		func(name string) bool { return len(name) >= 3 },
		func(name string) bool { return len(name) <= 20 },
		func(name string) bool { return !slices.Contains(banned, name) },
	}
}
