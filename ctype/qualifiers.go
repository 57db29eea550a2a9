package ctype

import (
	"fmt"
	"strings"
)

// Qualifiers is a bit set of C type qualifiers.
type Qualifiers uint8

const (
	Const Qualifiers = 1 << iota
	Volatile
	Restrict
	Atomic

	AllQualifiers = Const | Volatile | Restrict | Atomic
)

var qualifierNames = []struct {
	q    Qualifiers
	name string
}{
	{Const, "const"},
	{Volatile, "volatile"},
	{Restrict, "restrict"},
	{Atomic, "_Atomic"},
}

// String renders the set as "const|volatile", or "none" when empty.
func (q Qualifiers) String() string {
	if q == 0 {
		return "none"
	}

	var parts []string

	for _, qn := range qualifierNames {
		if q&qn.q != 0 {
			parts = append(parts, qn.name)
		}
	}

	if rest := q &^ AllQualifiers; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}

	return strings.Join(parts, "|")
}

// Keywords returns the C keywords for the set in declaration order.
func (q Qualifiers) Keywords() []string {
	var out []string

	for _, qn := range qualifierNames {
		if q&qn.q != 0 {
			out = append(out, qn.name)
		}
	}

	return out
}

// ParseQualifier maps a C qualifier keyword to its bit.
func ParseQualifier(word string) (Qualifiers, bool) {
	for _, qn := range qualifierNames {
		if qn.name == word {
			return qn.q, true
		}
	}

	if word == "atomic" {
		return Atomic, true
	}

	return 0, false
}

func (q Qualifiers) validate() error {
	if q&^AllQualifiers != 0 {
		return fmt.Errorf("%w: expected Qualifiers, got 0x%x", ErrTypeMismatch, uint8(q))
	}

	return nil
}

func joinQualifiers(qs []Qualifiers) (Qualifiers, error) {
	var out Qualifiers

	for _, q := range qs {
		if err := q.validate(); err != nil {
			return 0, err
		}

		out |= q
	}

	return out, nil
}
