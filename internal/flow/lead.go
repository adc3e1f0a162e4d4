package flow

import (
	"strings"
)

// PhoneDigits is the length of a local mobile number: two-digit area code
// plus a nine-digit subscriber number.
const PhoneDigits = 11

// Lead is the respondent's contact information.
type Lead struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
}

// Complete reports whether every field is filled and the phone has the
// right number of digits.
func (l Lead) Complete() bool {
	return strings.TrimSpace(l.Name) != "" &&
		strings.TrimSpace(l.Company) != "" &&
		ValidPhone(l.Phone)
}

// Empty reports whether no field has been filled.
func (l Lead) Empty() bool {
	return strings.TrimSpace(l.Name) == "" &&
		strings.TrimSpace(l.Company) == "" &&
		strings.TrimSpace(l.Phone) == ""
}

// Field names reported by ValidationError.
const (
	FieldName    = "name"
	FieldCompany = "company"
	FieldPhone   = "phone"
)

// ValidateLead checks the fields in fixed priority order and returns the
// first failure.
func ValidateLead(l Lead) *ValidationError {
	if strings.TrimSpace(l.Name) == "" {
		return &ValidationError{Field: FieldName, Message: "Please enter your name."}
	}
	if strings.TrimSpace(l.Company) == "" {
		return &ValidationError{Field: FieldCompany, Message: "Please enter your company."}
	}
	if strings.TrimSpace(l.Phone) == "" {
		return &ValidationError{Field: FieldPhone, Message: "Please enter your WhatsApp number."}
	}
	if !ValidPhone(l.Phone) {
		return &ValidationError{Field: FieldPhone, Message: "Enter your WhatsApp number as (DD) 00000-0000."}
	}
	return nil
}

// normalizeLead trims every field and applies the phone mask.
func normalizeLead(l Lead) Lead {
	return Lead{
		Name:    strings.TrimSpace(l.Name),
		Company: strings.TrimSpace(l.Company),
		Phone:   FormatPhone(strings.TrimSpace(l.Phone)),
	}
}

// Digits strips every non-digit character.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone reports whether s holds exactly PhoneDigits digits once
// formatting characters are removed.
func ValidPhone(s string) bool {
	return len(Digits(s)) == PhoneDigits
}

// FormatPhone applies the "(DD) 00000-0000" mask progressively, so it can
// be called on every keystroke. Digits beyond the eleventh are dropped.
func FormatPhone(s string) string {
	d := Digits(s)
	if len(d) > PhoneDigits {
		d = d[:PhoneDigits]
	}
	switch {
	case d == "":
		return ""
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 7:
		return "(" + d[:2] + ") " + d[2:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}
