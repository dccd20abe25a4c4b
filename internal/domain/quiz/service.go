package quiz

import (
	apperrors "github.com/lookia/lookia/pkg/errors"
)

const (
	defaultStyle   = "casual"
	defaultPalette = "cool-soft"
)

// Service scores the style and color palette quizzes.
type Service interface {
	StyleQuestions() []Question
	Style(req AnswersRequest) (StyleProfile, error)
	PaletteQuestions() []Question
	Palette(req AnswersRequest) (Palette, error)
}

type service struct{}

// NewService returns the quiz scorer. It holds no state.
func NewService() Service {
	return service{}
}

func (service) StyleQuestions() []Question {
	return styleQuestions
}

func (service) PaletteQuestions() []Question {
	return paletteQuestions
}

func (service) Style(req AnswersRequest) (StyleProfile, error) {
	if len(req.Answers) > len(styleQuestions) {
		return StyleProfile{}, apperrors.Wrap(apperrors.CodeInvalidInput, "respostas demais para o quiz de estilo", nil)
	}
	return styleProfiles[ScoreStyle(req.Answers)], nil
}

func (service) Palette(req AnswersRequest) (Palette, error) {
	if len(req.Answers) > len(paletteQuestions) {
		return Palette{}, apperrors.Wrap(apperrors.CodeInvalidInput, "respostas demais para o quiz de cores", nil)
	}
	return palettes[ScorePalette(req.Answers)], nil
}

// ScoreStyle returns the most frequent known style. Ties go to the value that
// first appeared in the answers; no known answers yields casual.
func ScoreStyle(answers []string) string {
	counts := map[string]int{}
	order := []string{}
	for _, a := range answers {
		if _, ok := styleProfiles[a]; !ok {
			continue
		}
		if counts[a] == 0 {
			order = append(order, a)
		}
		counts[a]++
	}

	winner, best := defaultStyle, 0
	for _, key := range order {
		if counts[key] > best {
			winner, best = key, counts[key]
		}
	}
	return winner
}

// ScorePalette applies the undertone rule chain to the answers.
func ScorePalette(answers []string) string {
	counts := map[string]int{}
	for _, a := range answers {
		counts[a]++
	}
	switch {
	case counts["cool"] >= 2 && counts["cool-deep"] >= 1:
		return "cool-deep"
	case counts["cool"] >= 2:
		return "cool-soft"
	case counts["warm"] >= 2 && counts["bright"] >= 1:
		return "warm-bright"
	case counts["warm"] >= 2:
		return "warm-soft"
	case counts["winter"] >= 1:
		return "cool-deep"
	case counts["spring"] >= 1:
		return "warm-bright"
	case counts["autumn"] >= 1:
		return "warm-soft"
	}
	return defaultPalette
}
