package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "yamlpalette.load",
		Kind: KindInvalidConfig,
		Path: "palettes/brand.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{
		Op:   "check.parse",
		Kind: KindInvalidColor,
		Path: "reports",
		Err:  errors.New("foreground"),
	}

	msg := err.Error()
	for _, want := range []string{"check.parse", "invalid_color", "path=reports", "foreground"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}

	var nilErr *OpError
	if nilErr.Error() != "<nil>" {
		t.Fatalf("expected <nil> for nil receiver")
	}
	if nilErr.Unwrap() != nil {
		t.Fatalf("expected nil unwrap for nil receiver")
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Kind: KindInvalidColor}
	wrapped := errors.Join(errors.New("context"), err)

	if !IsKind(wrapped, KindInvalidColor) {
		t.Fatalf("expected IsKind to match wrapped OpError")
	}
	if IsKind(wrapped, KindNotFound) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindInvalidColor) {
		t.Fatalf("expected IsKind=false for plain errors")
	}
}
