// AngelaMos | 2026
// coach.go

package coach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/carterperez-dev/taskhabit/internal/domain"
)

const (
	HabitsUnavailable = "Couldn't reach the AI coach. Please try again later."
	MotivationEmpty   = "Keep it up, you're doing great!"
	MotivationFailed  = "Success is the sum of small efforts!"
	WisdomFailed      = "Discipline is the bridge between goals and accomplishment."
)

var ErrDisabled = errors.New("coach disabled")

// Generator turns a prompt into free text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Coach never returns an error: any generator failure degrades to a fixed line.
type Coach struct {
	gen    Generator
	logger *slog.Logger
}

func New(gen Generator, logger *slog.Logger) *Coach {
	if gen == nil {
		gen = Disabled{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Coach{gen: gen, logger: logger}
}

// SuggestHabits reports generated=false when the list holds only the
// HabitsUnavailable line, which must not be adopted as a habit.
func (c *Coach) SuggestHabits(
	ctx context.Context,
	category domain.Category,
	goal string,
) (habits []string, generated bool) {
	prompt := fmt.Sprintf(`Act as an expert productivity coach.
The user wants to improve in the area: %q.
Their specific goal is: %q.

Generate 3 concrete, small and achievable habits they can start today.
Return ONLY a list separated by the "|" symbol, with no numbering or extra text.
Example: Drink a glass of water when you wake up|Read 5 pages|Walk for 10 minutes`,
		category.Label(), goal)

	text, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		c.logFailure(ctx, "habits", err)
		return []string{HabitsUnavailable}, false
	}
	return ParseHabits(text), true
}

func (c *Coach) Motivate(ctx context.Context, points, streak int) string {
	prompt := fmt.Sprintf(`The user has %d points and a %d day streak.
Write a very short (15 words max), energetic motivational sentence to keep them going.`,
		points, streak)

	text, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		c.logFailure(ctx, "motivation", err)
		return MotivationFailed
	}
	if text = strings.TrimSpace(text); text == "" {
		return MotivationEmpty
	}
	return text
}

func (c *Coach) CategoryWisdom(ctx context.Context, category domain.Category) string {
	prompt := fmt.Sprintf(`Give a short, powerful scientific or philosophical tip about %q to motivate someone to improve.
Mention well-known theories where they apply (Pareto, Pomodoro, Kaizen and so on).
30 words max.`,
		category.Label())

	text, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		c.logFailure(ctx, "wisdom", err)
		return WisdomFailed
	}
	if text = strings.TrimSpace(text); text == "" {
		return category.Label() + " is key to balance."
	}
	return text
}

func (c *Coach) logFailure(ctx context.Context, request string, err error) {
	if errors.Is(err, ErrDisabled) {
		c.logger.DebugContext(ctx, "coach disabled, using fallback", "request", request)
		return
	}
	c.logger.WarnContext(ctx, "coach request failed, using fallback",
		"request", request,
		"error", err,
	)
}

// ParseHabits splits a pipe-delimited reply, dropping blank entries.
func ParseHabits(text string) []string {
	parts := strings.Split(text, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Disabled is used when no API key is configured.
type Disabled struct{}

func (Disabled) Generate(context.Context, string) (string, error) {
	return "", ErrDisabled
}
