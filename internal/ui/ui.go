package ui

import (
	"fmt"
	"io"
	"strings"
)

const logo = `        / \     |_   _| | |  / _|                   | |
       /   \      | |   | | | |_   _ __    ___    __| |
      / / \ \     | |   | | |  _| | '__|  / _ \  / _` + "`" + ` |
     / _____ \   _| |_  | | | |   | |    |  __/ | (_| |
    /_/     \_\ |_____| |_| |_|   |_|     \___|  \__,_|`

const (
	divider     = "____________________________________________________________"
	errorPrefix = "☹ OOPS!!! "
)

// UI frames messages from the interpreter and writes them out.
type UI struct {
	out io.Writer
}

// New returns a UI writing to out.
func New(out io.Writer) *UI {
	return &UI{out: out}
}

// Greet prints the welcome banner.
func (u *UI) Greet() {
	u.Show("Hello! I am\n" + Bold(logo) + "\nYour personal assistant. What can I do for you?")
}

// Show prints msg between dividers. Done markers are highlighted.
func (u *UI) Show(msg string) {
	msg = strings.ReplaceAll(msg, "[X]", Green("[X]"))
	fmt.Fprintf(u.out, "%s\n%s\n%s\n", Faint(divider), msg, Faint(divider))
}

// ShowError prints err as an error message between dividers.
func (u *UI) ShowError(err error) {
	fmt.Fprintf(u.out, "%s\n%s\n%s\n", Faint(divider), Red(errorPrefix+err.Error()), Faint(divider))
}

// Prompt prints p without a trailing newline.
func (u *UI) Prompt(p string) {
	fmt.Fprint(u.out, p)
}
