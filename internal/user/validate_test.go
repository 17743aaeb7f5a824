package user

import "testing"

func TestValidateSignupAggregatesAllFailures(t *testing.T) {
	errs := ValidateSignup("not-an-email", "short", "abc")
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(errs), errs)
	}
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
		if e.Message == "" {
			t.Fatalf("empty message for field %s", e.Field)
		}
	}
	for _, f := range []string{"email", "password", "phone"} {
		if !fields[f] {
			t.Fatalf("missing error for field %s", f)
		}
	}
}

func TestValidateSignupAcceptsWellFormedInput(t *testing.T) {
	if errs := ValidateSignup("a@x.com", "secret1", "+46701234567"); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if errs := ValidateSignup("a@x.com", "secret1", "070-123 45 67"); len(errs) != 0 {
		t.Fatalf("unexpected errors for local phone format: %v", errs)
	}
}

func TestValidateLogin(t *testing.T) {
	if errs := ValidateLogin("a@x.com", "secret1"); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if errs := ValidateLogin("a@x.com", "12345"); len(errs) != 1 || errs[0].Field != "password" {
		t.Fatalf("expected a single password error, got %v", errs)
	}
	if errs := ValidateLogin("@x.com", "secret1"); len(errs) != 1 || errs[0].Field != "email" {
		t.Fatalf("expected a single email error, got %v", errs)
	}
}
