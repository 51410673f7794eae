package investwise

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

func USD(v float64) Money { return M(v, "USD") }

var testDay = time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)

// scriptSource is a FieldSource replaying canned answers in order.
type scriptSource struct {
	answers []string
	next    int
}

func script(answers ...string) *scriptSource { return &scriptSource{answers: answers} }

func (s *scriptSource) pop() (string, error) {
	if s.next >= len(s.answers) {
		return "", fmt.Errorf("script exhausted after %d answers", len(s.answers))
	}
	a := s.answers[s.next]
	s.next++
	return a, nil
}

func (s *scriptSource) String(string) (string, error) { return s.pop() }

func (s *scriptSource) Int(string) (int, error) {
	a, err := s.pop()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(a)
}

func (s *scriptSource) Decimal(string) (decimal.Decimal, error) {
	a, err := s.pop()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(a)
}

func (s *scriptSource) Bool(string) (bool, error) {
	a, err := s.pop()
	if err != nil {
		return false, err
	}
	return strconv.ParseBool(a)
}
