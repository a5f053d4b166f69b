package auth

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{9}$`)
)

const (
	minLoginPassword    = 4
	minRegisterPassword = 6
)

// validateLogin checks the login form and returns per-field messages.
// An empty map means the form is acceptable to send upstream.
func validateLogin(email, password string) map[string]string {
	errs := make(map[string]string)

	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Enter a valid email address"
	}

	if password == "" {
		errs["password"] = "Password is required"
	} else if len(password) < minLoginPassword {
		errs["password"] = "Password must be at least 4 characters"
	}

	return errs
}

func validateRegister(firstName, lastName, email, password, phone, address string) map[string]string {
	errs := make(map[string]string)

	if firstName == "" {
		errs["firstName"] = "First name is required"
	}
	if lastName == "" {
		errs["lastName"] = "Last name is required"
	}

	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Enter a valid email address"
	}

	if password == "" {
		errs["password"] = "Password is required"
	} else if len(password) < minRegisterPassword {
		errs["password"] = "Password must be at least 6 characters"
	}

	if phone == "" {
		errs["phone"] = "Phone is required"
	} else if !phonePattern.MatchString(phone) {
		errs["phone"] = "Phone must be exactly 9 digits"
	}

	if address == "" {
		errs["address"] = "Address is required"
	}

	return errs
}
