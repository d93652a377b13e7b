package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestTypeMismatchMessage(t *testing.T) {
	err := TypeMismatch("Fixnum", "String")

	want := "[convert] type_mismatch: expected Fixnum, got String"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestArgumentMissingMessage(t *testing.T) {
	err := ArgumentMissing("name", "RString", "friendly_greeting")

	want := "[args] argument_missing: argument 'name: RString' not found for method 'friendly_greeting'"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsMatchesOnPhaseAndKind(t *testing.T) {
	err := TypeMismatch("Hash", "NilClass")

	if !stderrors.Is(err, &Error{Phase: PhaseConvert, Kind: KindTypeMismatch}) {
		t.Error("Is() = false for matching phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseArgs, Kind: KindTypeMismatch}) {
		t.Error("Is() = true across phases")
	}
	if stderrors.Is(err, &Error{Phase: PhaseConvert, Kind: KindNotFound}) {
		t.Error("Is() = true across kinds")
	}
}

func TestBuilderAndUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := New(PhaseData, KindDataMismatch).
		Expected("Gorb/Server").
		Actual("Gorb/Client").
		Detail("retrieval through %s", "wrong registry").
		Cause(cause).
		Build()

	if !stderrors.Is(err, cause) {
		t.Error("Unwrap chain lost the cause")
	}
	msg := err.Error()
	for _, part := range []string{"data_mismatch", "Gorb/Server", "Gorb/Client", "wrong registry", "boom"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, missing %q", msg, part)
		}
	}
}

func TestExceptionCarriesClassAndMessage(t *testing.T) {
	err := Exception("TypeError", "no implicit conversion")

	if err.Kind != KindException || err.Phase != PhaseCall {
		t.Fatalf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	want := "[call] exception: TypeError - no implicit conversion"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}
