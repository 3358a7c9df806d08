package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() ContactForm {
	return ContactForm{
		Name:    "Ayesha Khan",
		Email:   "ayesha@example.com",
		Phone:   "03001234567",
		Address: "House 12, Street 4, Lahore",
	}
}

func TestContactFormValidate_acceptsValidForm(t *testing.T) {
	assert.Empty(t, validForm().Validate())
}

func TestContactFormValidate_requiredFields(t *testing.T) {
	problems := ContactForm{}.Validate()
	assert.Contains(t, problems, "name")
	assert.Contains(t, problems, "email")
	assert.Contains(t, problems, "phone")
	assert.Contains(t, problems, "address")
}

func TestContactFormValidate_email(t *testing.T) {
	cases := map[string]bool{
		"ayesha@example.com":  true,
		"a.b+tag@shop.com.pk": true,
		"no-at-sign":          false,
		"spaces in@mail.com":  false,
		"missing@tld":         false,
		"@example.com":        false,
	}
	for email, ok := range cases {
		form := validForm()
		form.Email = email
		problems := form.Validate()
		if ok {
			assert.NotContains(t, problems, "email", email)
		} else {
			assert.Contains(t, problems, "email", email)
		}
	}
}

func TestContactFormValidate_phone(t *testing.T) {
	cases := map[string]bool{
		"03001234567":     true,  // 11 digits, local mobile format
		"3001234567":      true,  // 10 digits, no leading zero
		"0300-1234567":    true,  // dash-formatted, strips to 11 digits
		"0300 123 4567":   true,  // space-formatted
		"(0300) 1234567":  true,  // formatting characters are ignored
		"300-1234567":     true,  // strips to 10 digits, no leading zero
		"13001234567":     false, // 11 digits but wrong prefix
		"0300123456":      false, // 10 digits with leading zero
		"030012345":       false, // too short
		"030012345678":    false, // too long
		"+92-300-1234567": false, // country code strips to 12 digits
		"---":             false, // no digits at all
	}
	for phone, ok := range cases {
		form := validForm()
		form.Phone = phone
		problems := form.Validate()
		if ok {
			assert.NotContains(t, problems, "phone", phone)
		} else {
			assert.Contains(t, problems, "phone", phone)
		}
	}
}
