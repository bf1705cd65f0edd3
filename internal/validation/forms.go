package validation

import "strings"

type MenuForm struct {
	MenuID      string
	Name        string
	Description string
	Price       string
	Category    string
	ImageURL    string
}

type RegistrationForm struct {
	Email    string
	Username string
	Password string
	Role     string
	Phone    string
}

type ProfileForm struct {
	FullName string
	Phone    string
}

type ReviewForm struct {
	Rating   string
	Feedback string
}

// Error carries every violation found in a form. It is returned before
// any request leaves the device.
type Error struct {
	Violations []string
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// Check turns a violation list into an error, or nil when it is empty.
func Check(violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	return &Error{Violations: violations}
}

// ValidateMenuForm collects the violations of every menu field. The menu id
// is only checked when withID is set (update form).
func ValidateMenuForm(form MenuForm, withID bool) []string {
	var violations []string
	if withID {
		violations = append(violations, ValidateField(FieldMenuID, form.MenuID)...)
	}
	violations = append(violations, ValidateField(FieldName, form.Name)...)
	violations = append(violations, ValidateField(FieldDescription, form.Description)...)
	violations = append(violations, ValidateField(FieldPrice, form.Price)...)
	violations = append(violations, ValidateField(FieldCategory, form.Category)...)
	violations = append(violations, ValidateField(FieldImageURL, form.ImageURL)...)
	return violations
}

func ValidateRegistration(form RegistrationForm) []string {
	var violations []string
	violations = append(violations, ValidateField(FieldEmail, form.Email)...)
	violations = append(violations, ValidateField(FieldUsername, form.Username)...)
	violations = append(violations, ValidatePassword(form.Password, RegistrationPasswordMin)...)
	violations = append(violations, ValidateField(FieldRole, form.Role)...)
	violations = append(violations, ValidateField(FieldPhone, form.Phone)...)
	return violations
}

func ValidateProfile(form ProfileForm) []string {
	var violations []string
	violations = append(violations, ValidateField(FieldFullName, form.FullName)...)
	violations = append(violations, ValidateField(FieldPhone, form.Phone)...)
	return violations
}

func ValidateReview(form ReviewForm) []string {
	var violations []string
	violations = append(violations, ValidateField(FieldRating, form.Rating)...)
	violations = append(violations, ValidateField(FieldFeedback, form.Feedback)...)
	return violations
}
