package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/contrastly/internal/domain"
)

func TestCheckContrast_BlackOnWhite(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	uc := NewCheckContrast(nil, WithClock(func() time.Time { return fixed }))

	rep, id, err := uc.Execute(context.Background(), CheckInput{
		Foreground: "#000000",
		Background: "rgb(255, 255, 255)",
		Font:       "Inter",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != "" {
		t.Fatalf("expected no id without store, got %q", id)
	}
	if rep.Level != domain.LevelAAA {
		t.Fatalf("expected AAA, got %q", rep.Level)
	}
	if !rep.Result.AANormal || !rep.Result.AAANormal || !rep.Result.AALarge || !rep.Result.AAALarge {
		t.Fatalf("expected all flags to pass: %+v", rep.Result)
	}
	if rep.Background.Hex != "#ffffff" || rep.Background.Input != "rgb(255, 255, 255)" {
		t.Fatalf("unexpected background: %+v", rep.Background)
	}
	if !rep.CreatedAt.Equal(fixed) || rep.CreatedAt.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp, got %v", rep.CreatedAt)
	}
}

func TestCheckContrast_SavesWhenStoreConfigured(t *testing.T) {
	store := &fakeStore{}
	uc := NewCheckContrast(store)

	rep, id, err := uc.Execute(context.Background(), CheckInput{Foreground: "#777777", Background: "#ffffff"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != "rep-123" || rep.ID != "rep-123" {
		t.Fatalf("expected id from store, got id=%q rep.ID=%q", id, rep.ID)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one saved report, got %d", len(store.saved))
	}
	if rep.Level != domain.LevelAALarge {
		t.Fatalf("expected AA Large, got %q", rep.Level)
	}
}

func TestCheckContrast_InvalidInputs(t *testing.T) {
	cases := []struct {
		name  string
		in    CheckInput
		which string
	}{
		{"bad foreground", CheckInput{Foreground: "not-a-color", Background: "#ffffff"}, "foreground"},
		{"bad background", CheckInput{Foreground: "#000000", Background: "rgb(300, 0, 0)"}, "background"},
		{"short hex", CheckInput{Foreground: "#fff", Background: "#000000"}, "foreground"},
		{"padded", CheckInput{Foreground: "#000000", Background: " #ffffff"}, "background"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			_, _, err := NewCheckContrast(store).Execute(context.Background(), tc.in)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindInvalidColor) {
				t.Fatalf("expected KindInvalidColor, got %v", err)
			}
			if !errors.Is(err, domain.ErrInvalidColor) {
				t.Fatalf("expected ErrInvalidColor in chain, got %v", err)
			}
			var oe *domain.OpError
			if !errors.As(err, &oe) || oe.Op != "check.parse" {
				t.Fatalf("expected check.parse OpError, got %v", err)
			}
			if got := err.Error(); !strings.Contains(got, tc.which) {
				t.Fatalf("expected error to name %q, got %q", tc.which, got)
			}
			if len(store.saved) != 0 {
				t.Fatalf("nothing should be saved on invalid input")
			}
		})
	}
}

func TestCheckContrast_StoreErrorKeepsReport(t *testing.T) {
	storeErr := errors.New("disk full")
	uc := NewCheckContrast(&fakeStore{err: storeErr})

	rep, id, err := uc.Execute(context.Background(), CheckInput{Foreground: "#000000", Background: "#ffffff"})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id, got %q", id)
	}
	if rep.Result.Ratio != 21 {
		t.Fatalf("expected evaluated report, got ratio %v", rep.Result.Ratio)
	}
}

func TestCheckContrast_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewCheckContrast(nil).Execute(ctx, CheckInput{Foreground: "#000000", Background: "#ffffff"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

