package cli

import "time"

// SetNow overrides the bot's clock in tests.
func (b *Bot) SetNow(now func() time.Time) { b.now = now }
