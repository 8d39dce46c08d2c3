package a11y

import "testing"

func TestPriorityString(t *testing.T) {
	if Polite.String() != "polite" {
		t.Errorf("expected polite, got %s", Polite.String())
	}
	if Assertive.String() != "assertive" {
		t.Errorf("expected assertive, got %s", Assertive.String())
	}
}

func TestNopNeverFails(t *testing.T) {
	var a Announcer = Nop{}
	if err := a.Announce("scan complete", Polite); err != nil {
		t.Errorf("Nop.Announce returned error: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Errorf("Nop.Close returned error: %v", err)
	}
}
