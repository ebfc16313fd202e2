package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Ann", "ann@x.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Name != "Ann" {
		t.Errorf("Expected name Ann, got %s", user.Name)
	}

	if user.Email != "ann@x.com" {
		t.Errorf("Expected email ann@x.com, got %s", user.Email)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Empty name
	if _, err := NewUser("", "ann@x.com"); err != ErrEmptyUserName {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserName, err)
	}

	// Empty email
	if _, err := NewUser("Ann", ""); err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	validUser := User{
		ID:    uuid.New(),
		Name:  "Ann",
		Email: "ann@x.com",
	}

	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	missingID := validUser
	missingID.ID = uuid.Nil
	if err := missingID.Validate(); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	blankName := validUser
	blankName.Name = "   "
	if err := blankName.Validate(); err != ErrEmptyUserName {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserName, err)
	}
}

func TestValidateEmailFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		email string
		valid bool
	}{
		{"ann@x.com", true},
		{"bo@sub.example.org", true},
		{"no-at-sign", false},
		{"@x.com", false},
		{"ann@", false},
		{"ann@nodot", false},
		{"ann@.com", false},
		{"ann@x.", false},
	}

	for _, tc := range cases {
		if got := validateEmailFormat(tc.email); got != tc.valid {
			t.Errorf("validateEmailFormat(%q) = %v, want %v", tc.email, got, tc.valid)
		}
	}
}
