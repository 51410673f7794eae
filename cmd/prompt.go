package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// consolePrompter implements investwise.FieldSource over an input stream.
// It is the interactive half of asset creation and editing.
type consolePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newConsolePrompter() *consolePrompter {
	return &consolePrompter{in: bufio.NewScanner(os.Stdin), out: os.Stdout}
}

func (p *consolePrompter) read(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *consolePrompter) String(prompt string) (string, error) {
	return p.read(prompt)
}

func (p *consolePrompter) Int(prompt string) (int, error) {
	s, err := p.read(prompt)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

func (p *consolePrompter) Decimal(prompt string) (decimal.Decimal, error) {
	s, err := p.read(prompt)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(s)
}

func (p *consolePrompter) Bool(prompt string) (bool, error) {
	s, err := p.read(prompt)
	if err != nil {
		return false, err
	}
	return strconv.ParseBool(s)
}
