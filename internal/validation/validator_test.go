package validation_test

import (
	"errors"
	"strings"
	"testing"

	"cinelog/internal/validation"
)

type window struct {
	Min  int    `json:"min" validate:"gte=1800"`
	Max  int    `json:"max" validate:"gtefield=Min"`
	Mode string `json:"mode" validate:"omitempty,oneof=all favorites"`
}

func TestStructPasses(t *testing.T) {
	if err := validation.Struct(window{Min: 1990, Max: 1999, Mode: "all"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructCollectsEveryField(t *testing.T) {
	err := validation.Struct(window{Min: 1700, Max: 1600, Mode: "weird"})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %T", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(verr.Fields), verr)
	}
	msg := verr.Error()
	for _, want := range []string{"min must be greater than or equal to 1800", "max must not be below Min", "mode must be one of: all favorites"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}
