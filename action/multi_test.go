package action

import "testing"

// TestSelectDeserializeKeepsOnlyMatchingVariableChoice checks the concrete
// example: a "colour" variable resolving to "red" keeps only the red
// child, dropping green and blue.
func TestSelectDeserializeKeepsOnlyMatchingVariableChoice(t *testing.T) {
	red := NewAnim(1, "red.flc")
	green := NewAnim(2, "green.flc")
	blue := NewAnim(3, "blue.flc")
	lookup := func(name string) (string, bool) {
		if name == "colour" {
			return "red", true
		}
		return "", false
	}

	sel := NewSelect(100, "colour", []string{"red", "green", "blue"}, []*Action{red, green, blue}, lookup)
	if len(sel.Children) != 1 {
		t.Fatalf(format, len(sel.Children), 1)
	}
	if sel.Children[0] != red {
		t.Errorf("expected the surviving child to be the one matching the resolved variable value")
	}
}

// TestSelectDeserializeRandomPicksWithinRange checks that a "RANDOM_n"
// selector keeps exactly one child, chosen from the first n.
func TestSelectDeserializeRandomPicksWithinRange(t *testing.T) {
	children := []*Action{NewAnim(1, "a.flc"), NewAnim(2, "b.flc"), NewAnim(3, "c.flc")}
	sel := NewSelect(100, "RANDOM_3", nil, children, nil)
	if len(sel.Children) != 1 {
		t.Fatalf(format, len(sel.Children), 1)
	}
	found := false
	for _, c := range children {
		if c == sel.Children[0] {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the surviving child to be one of the three original choices")
	}
}

// TestSelectDeserializeUnresolvedVariableKeepsNoChild checks that an
// unresolvable variable (not in the lookup) results in no surviving
// child rather than a panic or a guess.
func TestSelectDeserializeUnresolvedVariableKeepsNoChild(t *testing.T) {
	children := []*Action{NewAnim(1, "a.flc")}
	sel := NewSelect(100, "missing", []string{"x"}, children, func(string) (string, bool) { return "", false })
	if len(sel.Children) != 0 {
		t.Errorf(format, len(sel.Children), 0)
	}
}

// TestBuildProgressSequenceSerialOrdersChildTweens checks that a serial
// composite's progress sequence reports the first child as current until
// its own duration elapses, then advances to the second.
func TestBuildProgressSequenceSerialOrdersChildTweens(t *testing.T) {
	first := NewAnim(1, "a.flc")
	first.SetDuration(10)
	second := NewAnim(2, "b.flc")
	second.SetDuration(10)
	serial := NewSerial(3, first, second)

	seq := serial.BuildProgressSequence()
	_, _, index := seq.Update(5)
	if index != 0 {
		t.Errorf(format, index, 0)
	}
	_, _, index = seq.Update(10)
	if index != 1 {
		t.Errorf(format, index, 1)
	}
}
