package validator

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"file-vault-api/internal/interface/api/rest/dto/auth"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 32
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

func ValidatePage(page string) (int, error) {
	if page == "" {
		return 1, nil
	}

	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		return 0, errors.New("page must be a positive integer")
	}

	return p, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ValidateRegister checks username and password shape. Usernames are
// case-sensitive and only trimmed, never lowercased.
func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	username := strings.TrimSpace(r.Username)
	password := r.Password

	if username == "" {
		errs["username"] = "username is required"
	} else if l := utf8.RuneCountInString(username); l < minUsernameLen || l > maxUsernameLen {
		errs["username"] = "username length must be 3–32 characters"
	} else if !usernameRe.MatchString(username) {
		errs["username"] = "allowed characters: letters, digits, '.', '_', '-'"
	}

	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateLogin only requires presence; anything beyond that fails later as
// a uniform auth failure so field shape leaks nothing about accounts.
func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = "username is required"
	}
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
