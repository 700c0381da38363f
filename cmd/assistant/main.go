package main

import (
	"context"
	"fmt"
	"os"

	"addressbook/cli"
	"addressbook/contact"
	"addressbook/memory"
)

func main() {
	uc := contact.NewUsecase(memory.NewBook())
	bot := cli.New(uc, os.Stdin, os.Stdout)

	if err := bot.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
