package cli

import (
	"errors"
	"io"

	"github.com/manifoldco/promptui"
)

// ErrAborted means the user left the prompt (Ctrl-C, Ctrl-D or Esc).
var ErrAborted = errors.New("aborted")

// Prompter is the only way the flows talk to the user.
type Prompter interface {
	Select(label string, items []string) (int, error)
	Input(label string) (string, error)
	Confirm(label string) (bool, error)
}

var _ Prompter = (*TerminalPrompter)(nil)

// TerminalPrompter draws promptui widgets.
type TerminalPrompter struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

// NewTerminalPrompter uses the process terminal when stdin or stdout is nil.
func NewTerminalPrompter(stdin io.ReadCloser, stdout io.WriteCloser) *TerminalPrompter {
	return &TerminalPrompter{stdin: stdin, stdout: stdout}
}

func (p *TerminalPrompter) Select(label string, items []string) (int, error) {
	s := promptui.Select{
		Label:  label,
		Items:  items,
		Size:   len(items),
		Stdin:  p.stdin,
		Stdout: p.stdout,
	}
	i, _, err := s.Run()
	if err != nil {
		return 0, mapPromptErr(err)
	}
	return i, nil
}

func (p *TerminalPrompter) Input(label string) (string, error) {
	pr := promptui.Prompt{
		Label:  label,
		Stdin:  p.stdin,
		Stdout: p.stdout,
	}
	v, err := pr.Run()
	if err != nil {
		return "", mapPromptErr(err)
	}
	return v, nil
}

// Confirm answers false on "n" and ErrAborted when the prompt is left.
func (p *TerminalPrompter) Confirm(label string) (bool, error) {
	pr := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.stdin,
		Stdout:    p.stdout,
	}
	_, err := pr.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, mapPromptErr(err)
	}
}

func mapPromptErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return ErrAborted
	}
	return err
}
