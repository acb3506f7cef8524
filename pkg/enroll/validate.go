package enroll

import (
	"regexp"
	"strings"

	"dazuai_backend/pkg/catalog"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^(07|01)\d{8}$`)
)

// Validate mirrors the server rules field by field so a bad form never
// reaches the network. The returned map is keyed by field name.
func Validate(form Form) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(form.Name) == "" {
		errors["name"] = "Full name is required"
	}
	if strings.TrimSpace(form.Email) == "" {
		errors["email"] = "Email is required"
	} else if !emailPattern.MatchString(strings.TrimSpace(form.Email)) {
		errors["email"] = "Email is invalid"
	}
	if strings.TrimSpace(form.Phone) == "" {
		errors["phone"] = "Phone number is required"
	} else if !phonePattern.MatchString(strings.TrimSpace(form.Phone)) {
		errors["phone"] = "Enter a valid Kenyan number (e.g., 0712345678)"
	}
	if strings.TrimSpace(form.County) == "" {
		errors["county"] = "County is required"
	}
	if form.Course == "" {
		errors["course"] = "Please select a course"
	} else if _, ok := catalog.Find(form.Course); !ok {
		errors["course"] = "Please select a course"
	}
	if !catalog.ValidLevel(form.Level) {
		errors["level"] = "Please select your current level"
	}
	if strings.TrimSpace(form.Goals) == "" {
		errors["goals"] = "Please tell us your goals"
	}

	return errors
}
