package action

import (
	"math/rand"
	"strconv"
	"strings"
)

// NewParallel returns a composite whose children all start when the
// composite starts and run concurrently.
func NewParallel(objectID uint32, children ...*Action) *Action {
	a := New(objectID)
	a.Kind = KindParallel
	a.Children = children
	return a
}

// NewSerial returns a composite whose children run one after another, in
// order.
func NewSerial(objectID uint32, children ...*Action) *Action {
	a := New(objectID)
	a.Kind = KindSerial
	a.Children = children
	return a
}

// parallelDuration computes MxDSParallelAction::GetDuration: the latest
// point at which any child finishes, where a child's own finish point is
// its start offset plus its duration (or sustain time for an unbounded
// media child).
func parallelDuration(a *Action) int32 {
	var max int32
	for _, c := range a.Children {
		end := c.StartTime + c.elapsedDurationForComposite()
		if end > max {
			max = end
		}
	}
	return max
}

// serialDuration computes MxDSSerialAction::GetDuration: the sum of every
// child's own start offset plus its duration.
func serialDuration(a *Action) int32 {
	var total int32
	for _, c := range a.Children {
		total += c.StartTime + c.elapsedDurationForComposite()
	}
	return total
}

// VariableLookup resolves a named script variable to its current string
// value, mirroring the engine's global variable table consulted by
// MxDSSelectAction::Deserialize.
type VariableLookup func(name string) (string, bool)

// NewSelect builds a Select composite from a selector token (either a bare
// variable name, consulted via lookup, or a "RANDOM_n" token naming how
// many choices to pick uniformly among) plus the parallel choices array
// and their matching objects, then immediately resolves the selector down
// to exactly the one chosen child — matching MxDSSelectAction::Deserialize,
// which discards every choice but the one selected at load time.
func NewSelect(objectID uint32, selector string, choices []string, children []*Action, lookup VariableLookup) *Action {
	a := New(objectID)
	a.Kind = KindSelect

	idx, ok := resolveSelector(selector, choices, lookup)
	if ok && idx < len(children) {
		a.Children = []*Action{children[idx]}
	}
	return a
}

func resolveSelector(selector string, choices []string, lookup VariableLookup) (int, bool) {
	if n, ok := parseRandomToken(selector); ok {
		if n <= 0 {
			return 0, false
		}
		return rand.Intn(n), true
	}
	if lookup == nil {
		return 0, false
	}
	value, ok := lookup(selector)
	if !ok {
		return 0, false
	}
	for i, choice := range choices {
		if choice == value {
			return i, true
		}
	}
	return 0, false
}

// parseRandomToken reports whether selector is a "RANDOM_n" token and, if
// so, extracts n.
func parseRandomToken(selector string) (int, bool) {
	const prefix = "RANDOM_"
	if !strings.HasPrefix(selector, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(selector, prefix))
	if err != nil {
		return 0, false
	}
	return n, true
}
