// Package cli is the interactive assistant bot: it translates user text into
// commands, dispatches them to the contact service and renders results as
// plain text. All directory logic lives behind contact.Service.
package cli

import "strings"

type Kind int

const (
	KindBlank Kind = iota
	KindUnknown
	KindHello
	KindAdd
	KindChange
	KindPhone
	KindAll
	KindAddBirthday
	KindShowBirthday
	KindBirthdays
	KindExit
)

// commandNames lists user-facing command names in help order.
var commandNames = []string{
	"hello", "add", "change", "phone", "all",
	"add-birthday", "show-birthday", "birthdays", "close", "exit",
}

// Command is a parsed line of user input. Unknown input is represented as
// KindUnknown, never dispatched to the service.
type Command struct {
	Kind Kind
	Args []string
}

// Parse resolves a raw input line into a Command. Command names are
// case-insensitive; arguments keep their original form.
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: KindBlank}
	}

	cmd := Command{Args: fields[1:]}
	switch strings.ToLower(fields[0]) {
	case "hello":
		cmd.Kind = KindHello
	case "add":
		cmd.Kind = KindAdd
	case "change":
		cmd.Kind = KindChange
	case "phone":
		cmd.Kind = KindPhone
	case "all":
		cmd.Kind = KindAll
	case "add-birthday":
		cmd.Kind = KindAddBirthday
	case "show-birthday":
		cmd.Kind = KindShowBirthday
	case "birthdays":
		cmd.Kind = KindBirthdays
	case "close", "exit":
		cmd.Kind = KindExit
	default:
		cmd.Kind = KindUnknown
	}
	return cmd
}
