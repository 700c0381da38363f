package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"addressbook/contact"
	"addressbook/errs"
)

const congratulationDateLayout = "2006-01-02"

// Bot is the read-eval loop of the assistant. It owns no contact state.
type Bot struct {
	svc contact.Service
	in  io.Reader
	out io.Writer
	now func() time.Time
}

func New(svc contact.Service, in io.Reader, out io.Writer) *Bot {
	return &Bot{
		svc: svc,
		in:  in,
		out: out,
		now: time.Now,
	}
}

// Run reads commands until close/exit or end of input.
func (b *Bot) Run(ctx context.Context) error {
	fmt.Fprintln(b.out, "Welcome to the assistant bot!")

	scanner := bufio.NewScanner(b.in)
	for {
		fmt.Fprint(b.out, "Enter a command ")
		if !scanner.Scan() {
			break
		}

		cmd := Parse(scanner.Text())
		if cmd.Kind == KindExit {
			fmt.Fprintln(b.out, "Good bye!")
			break
		}
		fmt.Fprintln(b.out, b.execute(ctx, cmd))
	}
	return scanner.Err()
}

func (b *Bot) execute(ctx context.Context, cmd Command) string {
	switch cmd.Kind {
	case KindHello:
		return "How can I help you?"
	case KindAdd:
		return b.addContact(ctx, cmd.Args)
	case KindChange:
		return b.changePhone(ctx, cmd.Args)
	case KindPhone:
		return b.showPhone(ctx, cmd.Args)
	case KindAll:
		return b.showAll(ctx)
	case KindAddBirthday:
		return b.addBirthday(ctx, cmd.Args)
	case KindShowBirthday:
		return b.showBirthday(ctx, cmd.Args)
	case KindBirthdays:
		return b.showUpcomingBirthdays(ctx)
	case KindBlank:
		return "Not enough arguments."
	default:
		return "Unknown command. Available: " + strings.Join(commandNames, ", ")
	}
}

func (b *Bot) addContact(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return "Format: add <name> <phone>"
	}

	created, err := b.svc.AddContact(ctx, args[0], args[1])
	if err != nil {
		return renderError(err)
	}
	if created {
		return "Contact added."
	}
	return "Contact updated."
}

func (b *Bot) changePhone(ctx context.Context, args []string) string {
	if len(args) < 3 {
		return "Format: change <name> <old_phone> <new_phone>"
	}

	if err := b.svc.ChangePhone(ctx, args[0], args[1], args[2]); err != nil {
		if errs.ErrorCode(err) == errs.ENOTFOUND && strings.HasPrefix(errs.ErrorMessage(err), "phone") {
			return "Old phone not found."
		}
		return renderError(err)
	}
	return "Contact updated."
}

func (b *Bot) showPhone(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return "Format: phone <name>"
	}

	phones, err := b.svc.ContactPhones(ctx, args[0])
	if err != nil {
		return renderError(err)
	}
	if len(phones) == 0 {
		return "No phones"
	}

	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return strings.Join(values, "; ")
}

func (b *Bot) showAll(ctx context.Context) string {
	records, err := b.svc.ListContacts(ctx)
	if err != nil {
		return renderError(err)
	}
	if len(records) == 0 {
		return "No contacts yet"
	}

	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = rec.String()
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) addBirthday(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return "Format: add-birthday <name> <DD.MM.YYYY>"
	}

	if err := b.svc.SetBirthday(ctx, args[0], args[1]); err != nil {
		return renderError(err)
	}
	return "Birthday added."
}

func (b *Bot) showBirthday(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return "Format: show-birthday <name>"
	}

	birthday, err := b.svc.ShowBirthday(ctx, args[0])
	if err != nil {
		return renderError(err)
	}
	if birthday.IsZero() {
		return "No birthday set."
	}
	return birthday.String()
}

func (b *Bot) showUpcomingBirthdays(ctx context.Context) string {
	items, err := b.svc.UpcomingBirthdays(ctx, b.now())
	if err != nil {
		return renderError(err)
	}
	if len(items) == 0 {
		return "No upcoming birthdays within 7 days."
	}

	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d. %s — %s", i+1, item.Name, item.Date.Format(congratulationDateLayout))
	}
	return strings.Join(lines, "\n")
}

// renderError turns application errors into the bot's user-facing text. The
// core never formats messages for the terminal.
func renderError(err error) string {
	switch errs.ErrorCode(err) {
	case errs.EINVALID:
		return errs.ErrorMessage(err)
	case errs.ENOTFOUND:
		return "No such contact in the address book."
	default:
		return "An unexpected error occurred. Please try again."
	}
}
