package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/aalvaropc/contrastly/internal/colormath"
	"github.com/aalvaropc/contrastly/internal/domain"
	"github.com/aalvaropc/contrastly/internal/ports"
)

// CheckInput is one foreground/background pair as typed by the user.
type CheckInput struct {
	Foreground string
	Background string
	Font       string
}

type CheckContrast struct {
	store ports.ReportStore
	now   func() time.Time
}

type CheckOption func(*CheckContrast)

// WithClock overrides the report timestamp source (useful for tests).
func WithClock(now func() time.Time) CheckOption {
	return func(uc *CheckContrast) {
		if now != nil {
			uc.now = now
		}
	}
}

// NewCheckContrast builds the use case. A nil store disables saving.
func NewCheckContrast(store ports.ReportStore, opts ...CheckOption) *CheckContrast {
	uc := &CheckContrast{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute parses both colors, evaluates them and saves the report when a store
// is configured. An unparseable input is reported as KindInvalidColor.
func (uc *CheckContrast) Execute(ctx context.Context, in CheckInput) (domain.Report, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, "", err
	}

	fg, ok := colormath.Parse(in.Foreground)
	if !ok {
		return domain.Report{}, "", invalidColor("foreground", in.Foreground)
	}
	bg, ok := colormath.Parse(in.Background)
	if !ok {
		return domain.Report{}, "", invalidColor("background", in.Background)
	}

	res := colormath.ContrastOf(fg, bg)
	rep := domain.Report{
		CreatedAt:  uc.now().UTC(),
		Foreground: domain.ColorInput{Input: in.Foreground, Hex: colormath.RGBToHex(fg)},
		Background: domain.ColorInput{Input: in.Background, Hex: colormath.RGBToHex(bg)},
		Result:     res,
		Level:      res.Level(),
		Font:       in.Font,
	}

	if uc.store == nil {
		return rep, "", nil
	}

	id, err := uc.store.SaveReport(rep)
	if err != nil {
		return rep, "", err
	}
	rep.ID = id
	return rep, id, nil
}

func invalidColor(which, text string) error {
	return &domain.OpError{
		Op:   "check.parse",
		Kind: domain.KindInvalidColor,
		Err:  fmt.Errorf("%s %q: %w", which, text, domain.ErrInvalidColor),
	}
}
