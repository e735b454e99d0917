// AngelaMos | 2026
// coach_test.go

package coach

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/carterperez-dev/taskhabit/internal/domain"
)

type stubGenerator struct {
	text   string
	err    error
	prompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

func quietCoach(gen Generator) *Coach {
	return New(gen, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestParseHabits(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Drink water|Read 5 pages|Walk", []string{"Drink water", "Read 5 pages", "Walk"}},
		{"  a | | b |", []string{"a", "b"}},
		{"", []string{}},
		{"single", []string{"single"}},
	}

	for _, tt := range tests {
		if got := ParseHabits(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseHabits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSuggestHabits(t *testing.T) {
	gen := &stubGenerator{text: "Stretch|Plan tomorrow"}
	got, generated := quietCoach(gen).SuggestHabits(context.Background(), domain.CategoryEmotional, "sleep better")

	if len(got) != 2 || !generated {
		t.Fatalf("habits = %q, generated = %v", got, generated)
	}
	if !strings.Contains(gen.prompt, "Emotional Health") || !strings.Contains(gen.prompt, "sleep better") {
		t.Errorf("prompt missing inputs: %s", gen.prompt)
	}
}

func TestFallbacks(t *testing.T) {
	ctx := context.Background()
	failing := quietCoach(&stubGenerator{err: errors.New("quota exceeded")})
	empty := quietCoach(&stubGenerator{text: "  "})

	got, generated := failing.SuggestHabits(ctx, domain.CategoryWork, "focus")
	if !reflect.DeepEqual(got, []string{HabitsUnavailable}) || generated {
		t.Errorf("habits on error = %q, generated = %v", got, generated)
	}
	if got, generated := empty.SuggestHabits(ctx, domain.CategoryWork, "focus"); len(got) != 0 || !generated {
		t.Errorf("habits on empty = %q, generated = %v", got, generated)
	}

	if got := failing.Motivate(ctx, 10, 2); got != MotivationFailed {
		t.Errorf("motivate on error = %q", got)
	}
	if got := empty.Motivate(ctx, 10, 2); got != MotivationEmpty {
		t.Errorf("motivate on empty = %q", got)
	}

	if got := failing.CategoryWisdom(ctx, domain.CategoryHome); got != WisdomFailed {
		t.Errorf("wisdom on error = %q", got)
	}
	if got := empty.CategoryWisdom(ctx, domain.CategoryHome); got != "Home is key to balance." {
		t.Errorf("wisdom on empty = %q", got)
	}
}

func TestDisabledCoachUsesFallbacks(t *testing.T) {
	c := quietCoach(nil)
	if _, generated := c.SuggestHabits(context.Background(), domain.CategoryHome, "tidy up"); generated {
		t.Error("disabled coach reported generated habits")
	}
	if got := c.Motivate(context.Background(), 0, 0); got != MotivationFailed {
		t.Errorf("disabled motivate = %q", got)
	}
}
