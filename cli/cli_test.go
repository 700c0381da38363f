package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/cli"
	"addressbook/contact"
	"addressbook/memory"
)

func runScript(t *testing.T, script string) string {
	t.Helper()
	uc := contact.NewUsecase(memory.NewBook())
	var out bytes.Buffer
	bot := cli.New(uc, strings.NewReader(script), &out)

	require.NoError(t, bot.Run(context.Background()))
	return out.String()
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind cli.Kind
		args []string
	}{
		{name: "blank line", line: "   ", kind: cli.KindBlank},
		{name: "hello", line: "hello", kind: cli.KindHello},
		{name: "add with args", line: "add John 1234567890", kind: cli.KindAdd, args: []string{"John", "1234567890"}},
		{name: "case-insensitive command", line: "ADD John 1234567890", kind: cli.KindAdd, args: []string{"John", "1234567890"}},
		{name: "add-birthday", line: "add-birthday John 13.05.1985", kind: cli.KindAddBirthday, args: []string{"John", "13.05.1985"}},
		{name: "close", line: "close", kind: cli.KindExit},
		{name: "exit", line: "exit", kind: cli.KindExit},
		{name: "unknown", line: "frobnicate", kind: cli.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := cli.Parse(tt.line)

			assert.Equal(t, tt.kind, cmd.Kind)
			if tt.args != nil {
				assert.Equal(t, tt.args, cmd.Args)
			}
		})
	}
}

func TestBot_Run(t *testing.T) {
	t.Run("greets and says goodbye", func(t *testing.T) {
		out := runScript(t, "exit\n")

		assert.Contains(t, out, "Welcome to the assistant bot!")
		assert.Contains(t, out, "Good bye!")
	})

	t.Run("hello answers the greeting", func(t *testing.T) {
		out := runScript(t, "hello\nexit\n")

		assert.Contains(t, out, "How can I help you?")
	})

	t.Run("add creates then updates a contact", func(t *testing.T) {
		out := runScript(t, "add John 1234567890\nadd John 0987654321\nexit\n")

		assert.Contains(t, out, "Contact added.")
		assert.Contains(t, out, "Contact updated.")
	})

	t.Run("add rejects malformed phone", func(t *testing.T) {
		out := runScript(t, "add John 123\nexit\n")

		assert.Contains(t, out, "phone must contain exactly 10 digits")
	})

	t.Run("add without arguments prints usage", func(t *testing.T) {
		out := runScript(t, "add John\nexit\n")

		assert.Contains(t, out, "Format: add <name> <phone>")
	})

	t.Run("phone lists the contact's numbers", func(t *testing.T) {
		out := runScript(t, "add John 1234567890\nadd John 0987654321\nphone John\nexit\n")

		assert.Contains(t, out, "1234567890; 0987654321")
	})

	t.Run("phone for unknown contact", func(t *testing.T) {
		out := runScript(t, "phone Ghost\nexit\n")

		assert.Contains(t, out, "No such contact in the address book.")
	})

	t.Run("change replaces a phone", func(t *testing.T) {
		out := runScript(t, "add John 1234567890\nchange John 1234567890 5555555555\nphone John\nexit\n")

		assert.Contains(t, out, "5555555555")
		assert.NotContains(t, out, "Old phone not found.")
	})

	t.Run("change with unknown old phone", func(t *testing.T) {
		out := runScript(t, "add John 1234567890\nchange John 2222222222 5555555555\nexit\n")

		assert.Contains(t, out, "Old phone not found.")
	})

	t.Run("all renders every record", func(t *testing.T) {
		out := runScript(t, "add John 1234567890\nadd-birthday John 13.05.1985\nall\nexit\n")

		assert.Contains(t, out, "Contact name: John, phones: 1234567890, birthday: 13.05.1985")
	})

	t.Run("all on empty book", func(t *testing.T) {
		out := runScript(t, "all\nexit\n")

		assert.Contains(t, out, "No contacts yet")
	})

	t.Run("show-birthday when none is set", func(t *testing.T) {
		out := runScript(t, "add John 1234567890\nshow-birthday John\nexit\n")

		assert.Contains(t, out, "No birthday set.")
	})

	t.Run("show-birthday renders the stored date", func(t *testing.T) {
		out := runScript(t, "add John 1234567890\nadd-birthday John 13.05.1985\nshow-birthday John\nexit\n")

		assert.Contains(t, out, "13.05.1985")
	})

	t.Run("add-birthday rejects malformed date", func(t *testing.T) {
		out := runScript(t, "add John 1234567890\nadd-birthday John 1985-05-13\nexit\n")

		assert.Contains(t, out, "invalid date format, use DD.MM.YYYY")
	})

	t.Run("unknown command lists the available ones", func(t *testing.T) {
		out := runScript(t, "frobnicate\nexit\n")

		assert.Contains(t, out, "Unknown command. Available: hello, add, change")
	})

	t.Run("end of input stops the loop", func(t *testing.T) {
		out := runScript(t, "hello\n")

		assert.Contains(t, out, "How can I help you?")
	})
}

func TestBot_Birthdays(t *testing.T) {
	newBot := func(script string, out *bytes.Buffer) *cli.Bot {
		uc := contact.NewUsecase(memory.NewBook())
		bot := cli.New(uc, strings.NewReader(script), out)
		// 2024-05-10 is a Friday.
		bot.SetNow(func() time.Time {
			return time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
		})
		return bot
	}

	t.Run("lists numbered congratulation dates", func(t *testing.T) {
		var out bytes.Buffer
		bot := newBot("add John 1234567890\nadd-birthday John 13.05.1985\nbirthdays\nexit\n", &out)

		require.NoError(t, bot.Run(context.Background()))

		assert.Contains(t, out.String(), "1. John — 2024-05-13")
	})

	t.Run("reports an empty window", func(t *testing.T) {
		var out bytes.Buffer
		bot := newBot("add John 1234567890\nadd-birthday John 01.12.1985\nbirthdays\nexit\n", &out)

		require.NoError(t, bot.Run(context.Background()))

		assert.Contains(t, out.String(), "No upcoming birthdays within 7 days.")
	})
}
