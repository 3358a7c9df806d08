package checkout

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactForm is the customer-supplied checkout payload.
type ContactForm struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method"`
}

// Validate applies the checkout field contract and returns a field-keyed
// message map, empty when the form is acceptable.
//
// Phone numbers follow Pakistani conventions: stripped of formatting, 11
// digits starting with "03" (local mobile format) or 10 digits without the
// leading zero.
func (f ContactForm) Validate() map[string]string {
	problems := map[string]string{}

	if strings.TrimSpace(f.Name) == "" {
		problems["name"] = "name is required"
	}

	email := strings.TrimSpace(f.Email)
	if email == "" {
		problems["email"] = "email is required"
	} else if !emailPattern.MatchString(email) {
		problems["email"] = "email is not valid"
	}

	if msg := validatePhone(f.Phone); msg != "" {
		problems["phone"] = msg
	}

	if strings.TrimSpace(f.Address) == "" {
		problems["address"] = "address is required"
	}

	return problems
}

func validatePhone(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "phone is required"
	}

	// Formatting characters are insignificant; "0300-1234567" and
	// "0300 1234567" validate on their digits alone.
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	phone := digits.String()

	switch len(phone) {
	case 11:
		if !strings.HasPrefix(phone, "03") {
			return "11-digit phone must start with 03"
		}
	case 10:
		if strings.HasPrefix(phone, "0") {
			return "10-digit phone must not start with 0"
		}
	default:
		return "phone must be 10 or 11 digits"
	}
	return ""
}
