package dnf

import (
	"fmt"
	"strings"

	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/world"
)

var relationNames = map[string]world.Relation{
	"leftof":   world.LeftOf,
	"rightof":  world.RightOf,
	"beside":   world.Beside,
	"inside":   world.Inside,
	"ontop":    world.OnTop,
	"under":    world.Under,
	"above":    world.Above,
	"holding":  world.HoldingRel,
	"anywhere": world.AnyLocation,
}

// Parse parses the textual grammar of the direct-formula escape hatch
// (§6): conjunctions separated by '|', literals separated by '&', each
// literal of the form R(arg1,arg2), R(arg), or -R(...) for negation. The
// interpretation stage is bypassed; only the §3 self-reference invariant
// is enforced, not §4.2 feasibility.
func Parse(text string) (Formula, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty dnf formula")
	}
	var conjunctions []Conjunction
	for _, conjText := range strings.Split(text, "|") {
		conj, err := parseConjunction(conjText)
		if err != nil {
			return nil, err
		}
		conjunctions = append(conjunctions, conj)
	}
	f := FilterSelfReferential(conjunctions)
	if len(f) == 0 {
		return nil, fmt.Errorf("no interpretation: every conjunction was self-referential")
	}
	return f, nil
}

func parseConjunction(text string) (Conjunction, error) {
	var conj Conjunction
	for _, litText := range strings.Split(text, "&") {
		lit, err := parseLiteral(litText)
		if err != nil {
			return nil, err
		}
		conj = append(conj, lit)
	}
	if len(conj) == 0 {
		return nil, fmt.Errorf("empty conjunction in dnf formula")
	}
	return conj, nil
}

func parseLiteral(text string) (Literal, error) {
	text = strings.TrimSpace(text)
	polarity := true
	if strings.HasPrefix(text, "-") {
		polarity = false
		text = text[1:]
	}
	open := strings.IndexByte(text, '(')
	if open < 0 || !strings.HasSuffix(text, ")") {
		return Literal{}, fmt.Errorf("malformed literal %q", text)
	}
	name := strings.TrimSpace(text[:open])
	rel, ok := relationNames[name]
	if !ok {
		return Literal{}, fmt.Errorf("unknown relation %q", name)
	}
	argsText := text[open+1 : len(text)-1]
	args := strings.Split(argsText, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	if len(args) != rel.Arity() {
		return Literal{}, fmt.Errorf("relation %q expects %d argument(s), got %d", name, rel.Arity(), len(args))
	}
	lit := Literal{Relation: rel, Polarity: polarity}
	lit.Args[0] = shrdlite.ObjectID(args[0])
	if rel.Arity() == 2 {
		lit.Args[1] = shrdlite.ObjectID(args[1])
	}
	return lit, nil
}
