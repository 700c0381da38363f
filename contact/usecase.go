package contact

import (
	"context"
	"time"

	"addressbook/errs"
)

type Service interface {
	AddContact(ctx context.Context, name, phone string) (created bool, err error)
	ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error
	RemovePhone(ctx context.Context, name, phone string) error
	ContactPhones(ctx context.Context, name string) ([]Phone, error)
	SetBirthday(ctx context.Context, name, birthday string) error
	ShowBirthday(ctx context.Context, name string) (Birthday, error)
	GetContact(ctx context.Context, name string) (Record, error)
	ListContacts(ctx context.Context) ([]Record, error)
	DeleteContact(ctx context.Context, name string) error
	UpcomingBirthdays(ctx context.Context, ref time.Time) ([]Congratulation, error)
}

// Repository is the directory the usecase operates on: one record per
// normalized name, last write wins, iteration in insertion order. Absence is
// reported as a value, not an error.
type Repository interface {
	Upsert(ctx context.Context, r Record) error
	Find(ctx context.Context, name string) (Record, bool, error)
	Delete(ctx context.Context, name string) error
	All(ctx context.Context) ([]Record, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

// AddContact appends phone to the named contact, creating the contact first
// when it does not exist yet. The phone is validated before any mutation.
// The returned flag reports whether a new contact was created.
func (uc *Usecase) AddContact(ctx context.Context, name, phone string) (bool, error) {
	p, err := NewPhone(phone)
	if err != nil {
		return false, err
	}

	rec, found, err := uc.r.Find(ctx, name)
	if err != nil {
		return false, err
	}
	if !found {
		rec, err = NewRecord(name)
		if err != nil {
			return false, err
		}
	}

	rec.Phones = append(rec.Phones, p)
	if err := uc.r.Upsert(ctx, rec); err != nil {
		return false, err
	}
	return !found, nil
}

func (uc *Usecase) ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error {
	rec, err := uc.get(ctx, name)
	if err != nil {
		return err
	}

	found, err := rec.EditPhone(oldPhone, newPhone)
	if err != nil {
		return err
	}
	if !found {
		return errs.Errorf(errs.ENOTFOUND, "phone %s not found", oldPhone)
	}
	return uc.r.Upsert(ctx, rec)
}

func (uc *Usecase) RemovePhone(ctx context.Context, name, phone string) error {
	rec, err := uc.get(ctx, name)
	if err != nil {
		return err
	}

	if !rec.RemovePhone(phone) {
		return errs.Errorf(errs.ENOTFOUND, "phone %s not found", phone)
	}
	return uc.r.Upsert(ctx, rec)
}

func (uc *Usecase) ContactPhones(ctx context.Context, name string) ([]Phone, error) {
	rec, err := uc.get(ctx, name)
	if err != nil {
		return nil, err
	}
	return rec.Phones, nil
}

func (uc *Usecase) SetBirthday(ctx context.Context, name, birthday string) error {
	rec, err := uc.get(ctx, name)
	if err != nil {
		return err
	}

	if err := rec.SetBirthday(birthday); err != nil {
		return err
	}
	return uc.r.Upsert(ctx, rec)
}

// ShowBirthday returns the contact's birthday. The zero Birthday means none
// is set; callers decide how to render that.
func (uc *Usecase) ShowBirthday(ctx context.Context, name string) (Birthday, error) {
	rec, err := uc.get(ctx, name)
	if err != nil {
		return Birthday{}, err
	}
	return rec.Birthday, nil
}

func (uc *Usecase) GetContact(ctx context.Context, name string) (Record, error) {
	return uc.get(ctx, name)
}

func (uc *Usecase) ListContacts(ctx context.Context) ([]Record, error) {
	return uc.r.All(ctx)
}

// DeleteContact removes the contact. Deleting an absent contact is a no-op.
func (uc *Usecase) DeleteContact(ctx context.Context, name string) error {
	return uc.r.Delete(ctx, name)
}

func (uc *Usecase) UpcomingBirthdays(ctx context.Context, ref time.Time) ([]Congratulation, error) {
	records, err := uc.r.All(ctx)
	if err != nil {
		return nil, err
	}
	return UpcomingBirthdays(records, ref), nil
}

func (uc *Usecase) get(ctx context.Context, name string) (Record, error) {
	rec, found, err := uc.r.Find(ctx, name)
	if err != nil {
		return Record{}, err
	}
	if !found {
		return Record{}, errs.Errorf(errs.ENOTFOUND, "contact %q not found", name)
	}
	return rec, nil
}
