package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateField_Price(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "zero", input: "0", valid: false},
		{name: "negative", input: "-5", valid: false},
		{name: "one decimal", input: "10.5", valid: true},
		{name: "two decimals", input: "10.99", valid: true},
		{name: "three decimals", input: "10.999", valid: false},
		{name: "integer", input: "10", valid: true},
		{name: "empty", input: "  ", valid: false},
		{name: "letters", input: "ten", valid: false},
		{name: "zero with decimals", input: "0.00", valid: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			violations := ValidateField(FieldPrice, testCase.input)
			if testCase.valid {
				assert.Empty(t, violations)
			} else {
				assert.Len(t, violations, 1)
			}
		})
	}
}

func TestValidateField_Messages(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		input    string
		expected []string
	}{
		{"name too short", FieldName, "ab", []string{"Menu Name: Must be at least 3 characters long."}},
		{"name with digits", FieldName, "Pizza 2", []string{"Menu Name: Must contain only letters and spaces (no numbers or special characters)."}},
		{"name ok", FieldName, "  Chicken Karahi ", nil},
		{"category empty", FieldCategory, "", []string{"Category: Please fill the field."}},
		{"description short", FieldDescription, "Tasty", []string{"Description: Must be at least 10 characters long."}},
		{"description punctuation", FieldDescription, "Spicy, hot and fresh!", nil},
		{"description digits", FieldDescription, "Serves 2 people well", []string{"Description: Must contain only letters, spaces, and basic punctuation (e.g., commas, periods)."}},
		{"url ok", FieldImageURL, "https://example.com/a.jpg", nil},
		{"url no scheme", FieldImageURL, "example.com/a.jpg", []string{"Image URL: Must be a valid URL (e.g., https://example.com/image.jpg)."}},
		{"email ok", FieldEmail, "chef@hotel.pk", nil},
		{"email missing tld", FieldEmail, "chef@hotel", []string{"Invalid email format"}},
		{"phone short", FieldPhone, "12345", []string{"Phone number must be 10 digits"}},
		{"phone ok", FieldPhone, "0300123456", nil},
		{"phone padded", FieldPhone, " 0300123456 ", nil},
		{"full name padded", FieldFullName, "  Ayesha Khan ", nil},
		{"full name blank", FieldFullName, "   ", []string{"Full name is required"}},
		{"role unknown", FieldRole, "Waiter", []string{"Role must be one of Admin, Chef or Customer"}},
		{"menu id zero", FieldMenuID, "0", []string{"Menu ID: Must be a positive number greater than 0."}},
		{"menu id text", FieldMenuID, "abc", []string{"Menu ID: Must be a valid number."}},
		{"table ok", FieldTableNumber, "7", nil},
		{"rating too high", FieldRating, "6", []string{"Rating must be an integer between 1 and 5"}},
		{"full name single letter", FieldFullName, "A", []string{"Full name must contain only letters and spaces, min 2 characters"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, ValidateField(testCase.field, testCase.input))
		})
	}
}

func TestValidateMenuForm_CollectsAllViolations(t *testing.T) {
	violations := ValidateMenuForm(MenuForm{
		MenuID:      "x",
		Name:        "",
		Description: "short",
		Price:       "10.999",
		Category:    "Main",
		ImageURL:    "nope",
	}, true)

	assert.Len(t, violations, 5)
	assert.Equal(t, "Menu ID: Must be a valid number.", violations[0])
	assert.Equal(t, "Menu Name: Please fill the field.", violations[1])

	assert.Empty(t, ValidateMenuForm(MenuForm{
		Name:        "Biryani",
		Description: "Fragrant rice, slow cooked.",
		Price:       "12.50",
		Category:    "Rice",
		ImageURL:    "http://img.local/biryani.png",
	}, false))
}

func TestValidatePasswordPair(t *testing.T) {
	assert.Equal(t, []string{"Please fill in both password fields"}, ValidatePasswordPair("", "", ResetPasswordMin))
	assert.Equal(t, []string{"Passwords do not match"}, ValidatePasswordPair("abcdefgh", "abcdefgi", ResetPasswordMin))
	assert.Equal(t, []string{"Password must be at least 8 characters long"}, ValidatePasswordPair("abc", "abc", ResetPasswordMin))
	assert.Empty(t, ValidatePasswordPair("abcdefgh", "abcdefgh", ResetPasswordMin))
	assert.Empty(t, ValidatePassword("abcdef", RegistrationPasswordMin))
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(nil))

	err := Check([]string{"a", "b"})
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"a", "b"}, verr.Violations)
}

func TestValidateRegistration(t *testing.T) {
	violations := ValidateRegistration(RegistrationForm{
		Email:    "bad",
		Username: "ab",
		Password: "123",
		Role:     "",
		Phone:    "12",
	})
	assert.Len(t, violations, 5)
}
