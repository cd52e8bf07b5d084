package errhandler

import (
	"errors"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/keasec/internal/ledgererr"
	"github.com/hance08/keasec/internal/store"
	"github.com/pterm/pterm"
)

// IsInterrupt reports whether the user aborted a prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// Message turns err into the line shown to the user.
func Message(err error) string {
	var prefix string
	switch ledgererr.KindOf(err) {
	case ledgererr.KindInvalidArgument:
		prefix = "Invalid input"
	case ledgererr.KindInvalidState:
		prefix = "Ledger state"
	case ledgererr.KindMergePlausibilityFailure:
		prefix = "Transactions do not match"
	default:
		switch {
		case errors.Is(err, store.ErrRecordNotFound):
			prefix = "Not found"
		case errors.Is(err, store.ErrAccountExists):
			prefix = "Duplicate account"
		}
	}

	if prefix == "" {
		return capitalize(err.Error())
	}
	return prefix + ": " + err.Error()
}

// HandleError prints err and returns the process exit code.
func HandleError(err error) int {
	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		return 0
	}

	if ledgererr.KindOf(err) == ledgererr.KindMergePlausibilityFailure {
		pterm.Warning.Println(Message(err))
		return 2
	}

	pterm.Error.Println(Message(err))
	return 1
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
