package validate

import (
	"strings"
	"testing"
	"time"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alice@example.com", true},
		{"a.b+c@sub.domain.cn", true},
		{"", false},
		{"alice@example", false},
		{"alice example@x.com", false},
		{"@example.com", false},
		{"alice@.com", false},
	}
	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"13812345678", true},
		{"19900000000", true},
		{"12812345678", false}, // prefix 12 not a mobile prefix
		{"1381234567", false},  // 10 digits
		{"138123456789", false},
		{"23812345678", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidPhone(tt.phone); got != tt.want {
			t.Errorf("IsValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"too short", "abc12", false},
		{"valid letters and digit", "abcdef1", true},
		{"no digit", "abcdefg", false},
		{"no letter", "1234567", false},
		{"too long", strings.Repeat("a1", 11), false},
		{"exactly 6", "abc123", true},
		{"exactly 20", "a123456789b123456789", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidatePassword(tt.password)
			if r.Valid != tt.valid {
				t.Errorf("ValidatePassword(%q) valid = %v, want %v (%s)",
					tt.password, r.Valid, tt.valid, r.Message)
			}
			if !r.Valid && r.Message == "" {
				t.Error("invalid result must carry a message")
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		username string
		valid    bool
	}{
		{"alice", true},
		{"al", false},
		{"a b", false}, // space not allowed
		{"alice_01", true},
		{"", false},
		{strings.Repeat("x", 21), false},
		{"alice!", false},
	}
	for _, tt := range tests {
		if r := ValidateUsername(tt.username); r.Valid != tt.valid {
			t.Errorf("ValidateUsername(%q) valid = %v, want %v", tt.username, r.Valid, tt.valid)
		}
	}
}

func TestValidateRealName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"张三", true},
		{"John Smith", true},
		{"张三 Wang", true},
		{"张", false}, // single rune
		{"", false},
		{"张三123", false},
		{strings.Repeat("张", 21), false},
		{strings.Repeat("张", 20), true}, // rune count, not byte count
	}
	for _, tt := range tests {
		if r := ValidateRealName(tt.name); r.Valid != tt.valid {
			t.Errorf("ValidateRealName(%q) valid = %v, want %v", tt.name, r.Valid, tt.valid)
		}
	}
}

func TestValidatePriceAndParticipants(t *testing.T) {
	if r := ValidatePrice(-1); r.Valid {
		t.Error("negative price should be invalid")
	}
	if r := ValidatePrice(10000.01); r.Valid {
		t.Error("price above 10000 should be invalid")
	}
	if r := ValidatePrice(0); !r.Valid {
		t.Error("zero price should be valid")
	}
	if r := ValidateParticipantCount(0); r.Valid {
		t.Error("zero participants should be invalid")
	}
	if r := ValidateParticipantCount(1001); r.Valid {
		t.Error("participants above 1000 should be invalid")
	}
	if r := ValidateParticipantCount(1); !r.Valid {
		t.Error("one participant should be valid")
	}
}

func TestValidateRegisterForm(t *testing.T) {
	valid := RegisterForm{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "abcdef1",
		ConfirmPassword: "abcdef1",
	}

	if r := ValidateRegisterForm(valid); !r.Valid {
		t.Fatalf("valid form rejected: %v", r.Errors)
	}

	t.Run("collects all failures without short-circuit", func(t *testing.T) {
		r := ValidateRegisterForm(RegisterForm{
			Username:        "a",
			Email:           "not-an-email",
			Password:        "short",
			ConfirmPassword: "different",
		})
		if r.Valid {
			t.Fatal("expected invalid")
		}
		for _, field := range []string{"username", "email", "password", "confirmPassword"} {
			if !HasFieldError(r.Errors, field) {
				t.Errorf("expected error for %s, got %v", field, r.Errors)
			}
		}
	})

	t.Run("optional fields only checked when set", func(t *testing.T) {
		form := valid
		r := ValidateRegisterForm(form)
		if !r.Valid {
			t.Fatalf("form without phone/real name rejected: %v", r.Errors)
		}
		form.Phone = "12345"
		form.RealName = "x"
		r = ValidateRegisterForm(form)
		if !HasFieldError(r.Errors, "phone") || !HasFieldError(r.Errors, "real_name") {
			t.Errorf("expected phone and real_name errors, got %v", r.Errors)
		}
	})
}

func TestValidateLoginForm(t *testing.T) {
	r := ValidateLoginForm(LoginForm{})
	if r.Valid || !HasFieldError(r.Errors, "username") || !HasFieldError(r.Errors, "password") {
		t.Errorf("empty login form should fail both fields: %v", r.Errors)
	}
	r = ValidateLoginForm(LoginForm{Username: "alice", Password: "pw"})
	if !r.Valid {
		t.Errorf("filled login form rejected: %v", r.Errors)
	}
}

func TestValidateActivityForm(t *testing.T) {
	now := time.Now()
	base := ActivityForm{
		Title:           "Morning tai chi session",
		Description:     strings.Repeat("A relaxing session. ", 3),
		Price:           88,
		MaxParticipants: 30,
		StartTime:       now.Add(24 * time.Hour),
		EndTime:         now.Add(26 * time.Hour),
		Location:        "Lakeside garden",
	}

	if r := ValidateActivityForm(base); !r.Valid {
		t.Fatalf("valid activity form rejected: %v", r.Errors)
	}

	t.Run("end before start", func(t *testing.T) {
		form := base
		form.StartTime = now.Add(2 * time.Hour)
		form.EndTime = now.Add(1 * time.Hour)
		r := ValidateActivityForm(form)
		if r.Valid || !HasFieldError(r.Errors, "end_time") {
			t.Errorf("expected end_time error, got %v", r.Errors)
		}
	})

	t.Run("start in the past", func(t *testing.T) {
		form := base
		form.StartTime = now.Add(-time.Hour)
		r := ValidateActivityForm(form)
		if r.Valid || !HasFieldError(r.Errors, "start_time") {
			t.Errorf("expected start_time error, got %v", r.Errors)
		}
	})

	t.Run("missing times", func(t *testing.T) {
		form := base
		form.StartTime = time.Time{}
		form.EndTime = time.Time{}
		r := ValidateActivityForm(form)
		if !HasFieldError(r.Errors, "start_time") || !HasFieldError(r.Errors, "end_time") {
			t.Errorf("expected both time errors, got %v", r.Errors)
		}
	})
}

func TestFieldErrorHelpers(t *testing.T) {
	errors := map[string]string{"username": "bad", "email": "bad"}
	if FieldError(errors, "username") != "bad" {
		t.Error("FieldError should return the message")
	}
	if FieldError(errors, "missing") != "" {
		t.Error("FieldError for absent field should be empty")
	}
	ClearFieldError(errors, "username")
	if HasFieldError(errors, "username") {
		t.Error("username error should be cleared")
	}
	ClearFieldError(errors)
	if len(errors) != 0 {
		t.Errorf("all errors should be cleared, got %v", errors)
	}
}
