package main

import (
	"github.com/lumapix/lumapix/internal/command"
	"github.com/lumapix/lumapix/internal/command/account"
	"github.com/lumapix/lumapix/internal/command/share"
)

func main() {
	command.Main(
		"lumapix-cli", "a lumapix client tool",
		share.Command(),
		account.Command(),
	)
}
