// internal/app/system/inputval/inputval.go
//
// Field-level validation for mutation payloads. Validation runs before any
// store call; a failure here means nothing was written.
package inputval

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	UsernameMin = 2
	UsernameMax = 30
	NameMin     = 2
	NameMax     = 50
	BioMax      = 1000
	ThreadMin   = 3
	ThreadMax   = 2000
)

// ErrInvalid is the root of every validation failure; callers classify with
// errors.Is(err, inputval.ErrInvalid).
var ErrInvalid = errors.New("invalid input")

var (
	ErrMissingUserID = fmt.Errorf("%w: user id is required", ErrInvalid)
	ErrMissingAuthor = fmt.Errorf("%w: author is required", ErrInvalid)
)

// Profile checks the update-profile fields after normalization. Image is not
// validated here: its shape (hosted URL vs inline bytes) is resolved by the
// image classifier, not by length rules.
func Profile(userID, username, name, bio string) error {
	if userID == "" {
		return ErrMissingUserID
	}
	if n := utf8.RuneCountInString(username); n < UsernameMin || n > UsernameMax {
		return fmt.Errorf("%w: username must be %d-%d characters", ErrInvalid, UsernameMin, UsernameMax)
	}
	for _, r := range username {
		if !usernameRune(r) {
			return fmt.Errorf("%w: username may only contain letters, digits, '.', '_' and '-'", ErrInvalid)
		}
	}
	if n := utf8.RuneCountInString(name); n < NameMin || n > NameMax {
		return fmt.Errorf("%w: name must be %d-%d characters", ErrInvalid, NameMin, NameMax)
	}
	if utf8.RuneCountInString(bio) > BioMax {
		return fmt.Errorf("%w: bio must be at most %d characters", ErrInvalid, BioMax)
	}
	return nil
}

// ThreadText checks the body of a new thread.
func ThreadText(author, text string) error {
	if author == "" {
		return ErrMissingAuthor
	}
	if n := utf8.RuneCountInString(text); n < ThreadMin || n > ThreadMax {
		return fmt.Errorf("%w: thread text must be %d-%d characters", ErrInvalid, ThreadMin, ThreadMax)
	}
	return nil
}

func usernameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.', r == '_', r == '-':
		return true
	}
	return false
}
