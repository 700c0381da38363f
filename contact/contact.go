package contact

import (
	"fmt"
	"strings"
)

// emptyPlaceholder stands in for missing phones or birthday in rendered
// records.
const emptyPlaceholder = "—"

// Record aggregates a contact's name, ordered phone list and optional
// birthday. Phones keep insertion order and may contain duplicates; searches
// match by exact string equality.
type Record struct {
	Name     Name
	Phones   []Phone
	Birthday Birthday
}

func NewRecord(name string) (Record, error) {
	n, err := NewName(name)
	if err != nil {
		return Record{}, err
	}
	return Record{Name: n}, nil
}

// AddPhone validates raw and appends it. Duplicates are allowed to
// accumulate.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, p)
	return nil
}

// RemovePhone removes the first phone equal to value. It reports whether a
// phone was removed; absence is not an error.
func (r *Record) RemovePhone(value string) bool {
	for i, p := range r.Phones {
		if p.value == value {
			r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
			return true
		}
	}
	return false
}

// EditPhone replaces the first phone equal to oldValue with newValue. It
// reports whether oldValue was found; a malformed newValue fails validation
// and leaves the list unchanged.
func (r *Record) EditPhone(oldValue, newValue string) (bool, error) {
	for i, p := range r.Phones {
		if p.value == oldValue {
			replacement, err := NewPhone(newValue)
			if err != nil {
				return true, err
			}
			r.Phones[i] = replacement
			return true, nil
		}
	}
	return false, nil
}

// FindPhone returns the first phone equal to value.
func (r Record) FindPhone(value string) (Phone, bool) {
	for _, p := range r.Phones {
		if p.value == value {
			return p, true
		}
	}
	return Phone{}, false
}

// SetBirthday validates raw and assigns it, overwriting any prior birthday.
func (r *Record) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.Birthday = b
	return nil
}

func (r Record) String() string {
	phones := emptyPlaceholder
	if len(r.Phones) > 0 {
		values := make([]string, len(r.Phones))
		for i, p := range r.Phones {
			values[i] = p.value
		}
		phones = strings.Join(values, "; ")
	}

	birthday := emptyPlaceholder
	if !r.Birthday.IsZero() {
		birthday = r.Birthday.String()
	}

	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s", r.Name, phones, birthday)
}
