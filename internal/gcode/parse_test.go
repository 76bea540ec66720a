// internal/gcode/parse_test.go
package gcode

import "testing"

func TestParseLine_Transaction(t *testing.T) {
	b, err := ParseLine("M101 D1 E3 P100 Q2")
	if err != nil {
		t.Fatalf("ParseLine err=%v", err)
	}

	if b.MCode != MCodeTransaction {
		t.Fatalf("expected M101, got M%d", b.MCode)
	}
	if !b.D.Set || b.D.Value != 1 {
		t.Fatalf("D word: %+v", b.D)
	}
	if !b.E.Set || b.E.Value != 3 {
		t.Fatalf("E word: %+v", b.E)
	}
	if !b.P.Set || b.P.Value != 100 {
		t.Fatalf("P word: %+v", b.P)
	}
	if !b.Q.Set || b.Q.Value != 2 {
		t.Fatalf("Q word: %+v", b.Q)
	}
	if b.R.Set {
		t.Fatalf("R should be absent")
	}
}

func TestParseLine_LowercaseAndComment(t *testing.T) {
	b, err := ParseLine("m102 d1 p5 q1 r2.5 ; wait for clamp")
	if err != nil {
		t.Fatalf("ParseLine err=%v", err)
	}
	if b.MCode != MCodeWaitInput {
		t.Fatalf("expected M102, got M%d", b.MCode)
	}
	if b.R.Value != 2.5 {
		t.Fatalf("R=%v", b.R.Value)
	}
}

func TestParseLine_Errors(t *testing.T) {
	for _, line := range []string{
		"",
		"; comment only",
		"D1 E3",     // no M word
		"M101 X5",   // unsupported letter
		"M101 D",    // no value
		"M101 Dtwo", // not a number
	} {
		if _, err := ParseLine(line); err == nil {
			t.Errorf("ParseLine(%q): expected error", line)
		}
	}
}

func TestWord_Int(t *testing.T) {
	if !(Word{Set: true, Value: 5}).Int() {
		t.Fatal("5 should be integer")
	}
	if (Word{Set: true, Value: 5.5}).Int() {
		t.Fatal("5.5 should not be integer")
	}
	if (Word{Set: false, Value: 5}).Int() {
		t.Fatal("absent word should not be integer")
	}
}
