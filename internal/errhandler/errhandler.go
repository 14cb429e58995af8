package errhandler

import (
	"errors"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err comes from the user aborting a prompt.
func IsCancelled(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// HandleError reports err to the user. It returns false for cancellations so
// callers can go back to the previous menu quietly.
func HandleError(err error) bool {
	if err == nil {
		return true
	}
	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		return false
	}

	pterm.Error.Println(Capitalize(err.Error()))
	return true
}

// Capitalize upper-cases the first rune of an error message for display.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
