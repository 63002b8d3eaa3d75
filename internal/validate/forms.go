package validate

import "time"

// FormResult collects per-field validation messages for a whole form.
// Valid is true exactly when Errors is empty.
type FormResult struct {
	Valid  bool
	Errors map[string]string
}

func formResult(errors map[string]string) FormResult {
	return FormResult{Valid: len(errors) == 0, Errors: errors}
}

// RegisterForm is the payload validated before user registration.
// Phone and RealName are optional; they are only checked when set.
type RegisterForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	RealName        string
}

// LoginForm is the payload validated before login.
type LoginForm struct {
	Username string
	Password string
}

// ActivityForm is the payload validated before creating an activity.
type ActivityForm struct {
	Title           string
	Description     string
	Price           float64
	MaxParticipants int
	StartTime       time.Time
	EndTime         time.Time
	Location        string
}

// ValidateRegisterForm runs every field validator independently and
// collects the failures. It does not short-circuit: all fields are
// reported at once.
func ValidateRegisterForm(form RegisterForm) FormResult {
	errors := make(map[string]string)

	if r := ValidateUsername(form.Username); !r.Valid {
		errors["username"] = r.Message
	}

	if IsEmpty(form.Email) {
		errors["email"] = "email must not be empty"
	} else if !IsValidEmail(form.Email) {
		errors["email"] = "email format is invalid"
	}

	if r := ValidatePassword(form.Password); !r.Valid {
		errors["password"] = r.Message
	}

	if form.Password != form.ConfirmPassword {
		errors["confirmPassword"] = "passwords do not match"
	}

	if form.Phone != "" && !IsValidPhone(form.Phone) {
		errors["phone"] = "phone number format is invalid"
	}

	if form.RealName != "" {
		if r := ValidateRealName(form.RealName); !r.Valid {
			errors["real_name"] = r.Message
		}
	}

	return formResult(errors)
}

// ValidateLoginForm checks that both credentials are present.
func ValidateLoginForm(form LoginForm) FormResult {
	errors := make(map[string]string)

	if IsEmpty(form.Username) {
		errors["username"] = "username must not be empty"
	}
	if IsEmpty(form.Password) {
		errors["password"] = "password must not be empty"
	}

	return formResult(errors)
}

// ValidateActivityForm checks every activity field plus the schedule
// cross-checks: the end time must follow the start time and the start
// time must not be in the past.
func ValidateActivityForm(form ActivityForm) FormResult {
	errors := make(map[string]string)

	if r := ValidateActivityTitle(form.Title); !r.Valid {
		errors["title"] = r.Message
	}
	if r := ValidateActivityDescription(form.Description); !r.Valid {
		errors["description"] = r.Message
	}
	if r := ValidatePrice(form.Price); !r.Valid {
		errors["price"] = r.Message
	}
	if r := ValidateParticipantCount(form.MaxParticipants); !r.Valid {
		errors["max_participants"] = r.Message
	}

	if form.StartTime.IsZero() {
		errors["start_time"] = "start time must not be empty"
	}
	if form.EndTime.IsZero() {
		errors["end_time"] = "end time must not be empty"
	}
	if !form.StartTime.IsZero() && !form.EndTime.IsZero() {
		if !form.StartTime.Before(form.EndTime) {
			errors["end_time"] = "end time must be after start time"
		}
		if form.StartTime.Before(time.Now()) {
			errors["start_time"] = "start time must not be in the past"
		}
	}

	if IsEmpty(form.Location) {
		errors["location"] = "activity location must not be empty"
	}

	return formResult(errors)
}

// FieldError returns the message recorded for field, or "".
func FieldError(errors map[string]string, field string) string {
	return errors[field]
}

// HasFieldError reports whether a message is recorded for field.
func HasFieldError(errors map[string]string, field string) bool {
	_, found := errors[field]
	return found
}

// ClearFieldError removes the given fields from the error map, or every
// field when none are named.
func ClearFieldError(errors map[string]string, fields ...string) {
	if len(fields) == 0 {
		for k := range errors {
			delete(errors, k)
		}
		return
	}
	for _, f := range fields {
		delete(errors, f)
	}
}
