package contact

import (
	"regexp"
	"strings"
	"time"

	"addressbook/errs"
)

// BirthdayLayout is the textual form birthdays are parsed from and rendered
// to (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

var phonePattern = regexp.MustCompile(`^\d{10}$`)

var (
	ErrInvalidName     = errs.Errorf(errs.EINVALID, "name must not be blank")
	ErrInvalidPhone    = errs.Errorf(errs.EINVALID, "phone must contain exactly 10 digits")
	ErrInvalidBirthday = errs.Errorf(errs.EINVALID, "invalid date format, use DD.MM.YYYY")
)

// Name identifies a contact. The original casing is kept for display; the
// normalized form is the directory key. Always valid in memory — use NewName
// to construct.
type Name struct {
	value string
}

func NewName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, ErrInvalidName
	}
	return Name{value: raw}, nil
}

func (n Name) String() string { return n.value }

// Normalized returns the trimmed, case-folded form used as the directory key.
func (n Name) Normalized() string { return Normalize(n.value) }

// Normalize folds a raw name into directory-key form. It is applied uniformly
// before every directory access.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Phone is a ten-digit phone number. The zero value is the unset state;
// NewPhone never returns a partially valid instance.
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }
func (p Phone) IsZero() bool   { return p.value == "" }

// Birthday is a calendar date with no time component. The zero value is the
// unset state and renders as an empty string.
type Birthday struct {
	value time.Time
}

func NewBirthday(raw string) (Birthday, error) {
	d, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, ErrInvalidBirthday
	}
	return Birthday{value: d}, nil
}

func (b Birthday) String() string {
	if b.IsZero() {
		return ""
	}
	return b.value.Format(BirthdayLayout)
}

func (b Birthday) Date() time.Time { return b.value }
func (b Birthday) IsZero() bool    { return b.value.IsZero() }
