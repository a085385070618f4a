package domain

import "testing"

func TestPaperStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to PaperStatus
		allowed  bool
	}{
		{PaperSubmitted, PaperUnderReview, true},
		{PaperSubmitted, PaperApproved, true},
		{PaperSubmitted, PaperRejected, true},
		{PaperSubmitted, PaperRevisionRequested, true},
		{PaperSubmitted, PaperPublished, false},
		{PaperUnderReview, PaperApproved, true},
		{PaperUnderReview, PaperRejected, true},
		{PaperUnderReview, PaperRevisionRequested, true},
		{PaperUnderReview, PaperSubmitted, false},
		{PaperRevisionRequested, PaperSubmitted, true},
		{PaperRevisionRequested, PaperApproved, false},
		{PaperApproved, PaperPublished, true},
		{PaperApproved, PaperRejected, false},
		{PaperPublished, PaperSubmitted, false},
		{PaperPublished, PaperRejected, false},
		{PaperRejected, PaperSubmitted, false},
		{PaperRejected, PaperUnderReview, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestPaperStatusValid(t *testing.T) {
	for _, s := range []PaperStatus{
		PaperSubmitted, PaperUnderReview, PaperRevisionRequested,
		PaperApproved, PaperRejected, PaperPublished,
	} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []PaperStatus{"", "draft", "archived", "SUBMITTED"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestPaperDomainValid(t *testing.T) {
	if len(PaperDomains) != 7 {
		t.Fatalf("expected 7 domains, got %d", len(PaperDomains))
	}
	if !DomainCSE.Valid() {
		t.Error("CSE should be valid")
	}
	if PaperDomain("Chemistry").Valid() {
		t.Error("Chemistry should be invalid")
	}
}
