package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"pomo/internal/ui/theme"
)

// Console is the line-oriented terminal shared by the menu and the
// break prompts so both read from one buffered stdin.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ReadLine returns the next trimmed line. A final line without a newline is
// returned before io.EOF.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Prompt prints label and reads until a non-empty answer arrives.
func (c *Console) Prompt(label string) (string, error) {
	for {
		_, _ = fmt.Fprintf(c.out, "%s: ", label)
		answer, err := c.ReadLine()
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
}

// Confirm asks a yes/no question. An empty answer takes the default and
// anything unrecognised asks again.
func (c *Console) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		_, _ = fmt.Fprintf(c.out, "%s %s: ", question, theme.Muted.Render(hint))
		answer, err := c.ReadLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		_, _ = fmt.Fprintln(c.out, theme.Bad.Render("Error: invalid input"))
	}
}

func (c *Console) Notify(message string) {
	style := theme.Good
	if strings.HasPrefix(message, "Couldn't") {
		style = theme.Bad
	}
	_, _ = fmt.Fprintf(c.out, "\n%s\n", style.Render(message))
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}
