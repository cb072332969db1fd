package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SymbolKind discriminates the closed set of arrow score symbols.
type SymbolKind int

// Symbol kinds. A symbol is either a numeric face value, the inner-ring X,
// or a miss. There is no other state; malformed input parses to a miss.
const (
	SymbolNumeric SymbolKind = iota
	SymbolX
	SymbolMiss
)

// Symbol is one arrow's recorded value.
type Symbol struct {
	Kind  SymbolKind
	Value int // face value; meaningful only for SymbolNumeric
}

// Num builds a numeric symbol.
func Num(v int) Symbol { return Symbol{Kind: SymbolNumeric, Value: v} }

// X builds an inner-ring symbol.
func X() Symbol { return Symbol{Kind: SymbolX} }

// Miss builds a miss symbol.
func Miss() Symbol { return Symbol{Kind: SymbolMiss} }

// ParseSymbol maps a raw score token to a Symbol. Numeric strings pass
// through; "X" is the inner ring; "M"/"MISS" and anything unrecognized
// (including empty input) become a miss. Parsing never fails.
func ParseSymbol(raw string) Symbol {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch s {
	case "X":
		return X()
	case "", "M", "MISS":
		return Miss()
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return Miss()
	}
	return Num(v)
}

// String renders the symbol in its wire form.
func (s Symbol) String() string {
	switch s.Kind {
	case SymbolX:
		return "X"
	case SymbolMiss:
		return "M"
	default:
		return strconv.Itoa(s.Value)
	}
}

// MarshalJSON encodes numeric symbols as JSON numbers and X/miss as strings,
// matching the recorded wire shape.
func (s Symbol) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case SymbolX:
		return []byte(`"X"`), nil
	case SymbolMiss:
		return []byte(`"M"`), nil
	default:
		return []byte(strconv.Itoa(s.Value)), nil
	}
}

// UnmarshalJSON accepts numbers, numeric strings, "X" and "M"/"MISS".
// Unrecognized values decode to a miss rather than failing the record.
func (s *Symbol) UnmarshalJSON(data []byte) error {
	var num int
	if err := json.Unmarshal(data, &num); err == nil {
		if num < 0 {
			*s = Miss()
			return nil
		}
		*s = Num(num)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("symbol must be a number or string: %w", err)
	}
	*s = ParseSymbol(str)
	return nil
}

// ParseSymbols converts a slice of raw tokens.
func ParseSymbols(raw []string) []Symbol {
	out := make([]Symbol, len(raw))
	for i, r := range raw {
		out[i] = ParseSymbol(r)
	}
	return out
}
