// Package validate implements the field normalization and validation
// rules shared by player forms: names are trimmed and inner whitespace
// collapsed, emails are lowercased, phones keep only digits. Validation
// runs against the normalized value and short-circuits at the first
// failing rule, producing a Spanish user-facing message or "" when valid.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind selects the rule set applied to a field
type Kind int

const (
	// KindName covers nombre and apellido
	KindName Kind = iota
	// KindEmail covers email
	KindEmail
	// KindPhone covers telefono
	KindPhone
)

const (
	nameMinLen  = 3
	nameMaxLen  = 100
	emailMaxLen = 100
	phoneDigits = 10
)

var (
	spaceRunRe = regexp.MustCompile(`\s+`)
	nonDigitRe = regexp.MustCompile(`\D`)

	// Local part per the usual address characters; domain requires at
	// least one dot so bare hostnames are rejected.
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)
)

// Normalize cleans a raw value according to its field kind. The result
// is a fixed point: normalizing twice yields the same value.
func Normalize(kind Kind, value string) string {
	clean := strings.TrimSpace(value)
	switch kind {
	case KindName:
		clean = spaceRunRe.ReplaceAllString(clean, " ")
	case KindEmail:
		clean = strings.ToLower(clean)
	case KindPhone:
		clean = nonDigitRe.ReplaceAllString(clean, "")
	}
	return clean
}

// Message validates a raw value for the named field and returns a
// user-facing message, or "" when the value is valid. The value is
// normalized before checking.
func Message(kind Kind, field, value string) string {
	clean := Normalize(kind, value)

	if clean == "" {
		return fmt.Sprintf("El campo %s no puede estar vacío", field)
	}

	switch kind {
	case KindName:
		if !isAlphaSpace(clean) {
			return fmt.Sprintf("El campo %s solo puede contener letras y espacios", field)
		}
		if n := utf8.RuneCountInString(clean); n < nameMinLen || n > nameMaxLen {
			return fmt.Sprintf("El campo %s debe tener entre %d y %d caracteres", field, nameMinLen, nameMaxLen)
		}
	case KindEmail:
		if !emailRe.MatchString(clean) {
			return fmt.Sprintf("El campo %s debe ser un email válido", field)
		}
		if utf8.RuneCountInString(clean) > emailMaxLen {
			return fmt.Sprintf("El campo %s no puede tener más de %d caracteres", field, emailMaxLen)
		}
	case KindPhone:
		if len(clean) != phoneDigits {
			return fmt.Sprintf("El campo %s debe contener exactamente %d dígitos numéricos", field, phoneDigits)
		}
	}

	return ""
}

// isAlphaSpace reports whether s contains only letters (including
// accented ones) and spaces.
func isAlphaSpace(s string) bool {
	for _, r := range s {
		if r != ' ' && !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
