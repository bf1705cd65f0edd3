package validation

import (
	"regexp"
	"strconv"
	"strings"
)

type Field string

const (
	FieldMenuID      Field = "menu_id"
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldPrice       Field = "price"
	FieldCategory    Field = "category"
	FieldImageURL    Field = "image_url"
	FieldEmail       Field = "email"
	FieldUsername    Field = "username"
	FieldFullName    Field = "full_name"
	FieldPhone       Field = "phone"
	FieldRole        Field = "role"
	FieldTableNumber Field = "table_number"
	FieldRating      Field = "rating"
	FieldFeedback    Field = "feedback"
	FieldOTP         Field = "otp"
)

const (
	RegistrationPasswordMin = 6
	ResetPasswordMin        = 8
)

var (
	digitsPattern      = regexp.MustCompile(`^\d+$`)
	lettersPattern     = regexp.MustCompile(`^[A-Za-z\s]+$`)
	descriptionPattern = regexp.MustCompile(`^[A-Za-z\s,.!]+$`)
	pricePattern       = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	urlPattern         = regexp.MustCompile(`^(https?://[^\s$.?#].[^\s]*)$`)
	emailPattern       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern       = regexp.MustCompile(`^\d{10}$`)
	fullNamePattern    = regexp.MustCompile(`^[A-Za-z\s]{2,}$`)
	roles              = map[string]bool{"Customer": true, "Admin": true, "Chef": true}
)

// ValidateField returns the violations for a single raw input value.
// An empty result means the value is valid.
func ValidateField(field Field, value string) []string {
	trimmed := strings.TrimSpace(value)

	switch field {
	case FieldMenuID:
		return positiveInteger("Menu ID", trimmed)
	case FieldTableNumber:
		return positiveInteger("Table Number", trimmed)
	case FieldName:
		return lettersOnly("Menu Name", trimmed)
	case FieldCategory:
		return lettersOnly("Category", trimmed)
	case FieldDescription:
		switch {
		case trimmed == "":
			return []string{"Description: Please fill the field."}
		case len(trimmed) < 10:
			return []string{"Description: Must be at least 10 characters long."}
		case !descriptionPattern.MatchString(trimmed):
			return []string{"Description: Must contain only letters, spaces, and basic punctuation (e.g., commas, periods)."}
		}
	case FieldPrice:
		if trimmed == "" {
			return []string{"Price: Please fill the field."}
		}
		if !pricePattern.MatchString(trimmed) {
			return []string{"Price: Must be a valid number (e.g., 10 or 10.99)."}
		}
		if v, err := strconv.ParseFloat(trimmed, 64); err != nil || v <= 0 {
			return []string{"Price: Must be a positive number greater than 0."}
		}
	case FieldImageURL:
		switch {
		case trimmed == "":
			return []string{"Image URL: Please fill the field."}
		case !urlPattern.MatchString(trimmed):
			return []string{"Image URL: Must be a valid URL (e.g., https://example.com/image.jpg)."}
		}
	case FieldEmail:
		switch {
		case trimmed == "":
			return []string{"Email is required"}
		case !emailPattern.MatchString(trimmed):
			return []string{"Invalid email format"}
		}
	case FieldUsername:
		switch {
		case trimmed == "":
			return []string{"Username is required"}
		case len(value) < 3:
			return []string{"Username must be at least 3 characters"}
		}
	case FieldFullName:
		switch {
		case trimmed == "":
			return []string{"Full name is required"}
		case !fullNamePattern.MatchString(trimmed):
			return []string{"Full name must contain only letters and spaces, min 2 characters"}
		}
	case FieldPhone:
		switch {
		case trimmed == "":
			return []string{"Phone number is required"}
		case !phonePattern.MatchString(trimmed):
			return []string{"Phone number must be 10 digits"}
		}
	case FieldRole:
		switch {
		case trimmed == "":
			return []string{"Role is required"}
		case !roles[trimmed]:
			return []string{"Role must be one of Admin, Chef or Customer"}
		}
	case FieldRating:
		n, err := strconv.Atoi(trimmed)
		if err != nil || n < 1 || n > 5 {
			return []string{"Rating must be an integer between 1 and 5"}
		}
	case FieldFeedback:
		if trimmed == "" {
			return []string{"Please enter your feedback."}
		}
	case FieldOTP:
		if trimmed == "" {
			return []string{"OTP is required"}
		}
	}
	return nil
}

func positiveInteger(label, value string) []string {
	if value == "" {
		return []string{label + ": Please fill the field."}
	}
	if !digitsPattern.MatchString(value) {
		return []string{label + ": Must be a valid number."}
	}
	if n, err := strconv.Atoi(value); err != nil || n <= 0 {
		return []string{label + ": Must be a positive number greater than 0."}
	}
	return nil
}

func lettersOnly(label, value string) []string {
	switch {
	case value == "":
		return []string{label + ": Please fill the field."}
	case len(value) < 3:
		return []string{label + ": Must be at least 3 characters long."}
	case !lettersPattern.MatchString(value):
		return []string{label + ": Must contain only letters and spaces (no numbers or special characters)."}
	}
	return nil
}

// ValidatePassword checks a single password against a minimum length.
func ValidatePassword(password string, min int) []string {
	if password == "" {
		return []string{"Password is required"}
	}
	if len(password) < min {
		return []string{"Password must be at least " + strconv.Itoa(min) + " characters long"}
	}
	return nil
}

// ValidatePasswordPair checks a new password and its confirmation.
func ValidatePasswordPair(password, confirm string, min int) []string {
	if password == "" || confirm == "" {
		return []string{"Please fill in both password fields"}
	}
	if password != confirm {
		return []string{"Passwords do not match"}
	}
	return ValidatePassword(password, min)
}
