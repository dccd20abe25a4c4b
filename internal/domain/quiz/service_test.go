package quiz

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/lookia/lookia/pkg/errors"
)

func TestScoreStyle(t *testing.T) {
	require.Equal(t, "casual", ScoreStyle(nil))
	require.Equal(t, "classic", ScoreStyle([]string{"classic", "casual", "classic"}))
	// tie: first value to appear wins
	require.Equal(t, "bohemian", ScoreStyle([]string{"bohemian", "minimal", "minimal", "bohemian"}))
	require.Equal(t, "minimal", ScoreStyle([]string{"unknown", "unknown", "minimal"}))
}

func TestScorePaletteRuleChain(t *testing.T) {
	cases := []struct {
		answers []string
		want    string
	}{
		{[]string{"cool-deep", "cool", "cool"}, "cool-deep"},
		{[]string{"cool", "cool", "spring"}, "cool-soft"},
		{[]string{"warm", "warm", "bright"}, "warm-bright"},
		{[]string{"warm", "warm", "winter"}, "warm-soft"},
		{[]string{"winter", "spring"}, "cool-deep"},
		{[]string{"neutral", "spring"}, "warm-bright"},
		{[]string{"autumn"}, "warm-soft"},
		{[]string{"summer", "neutral"}, "cool-soft"},
		{nil, "cool-soft"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ScorePalette(tc.answers), "%v", tc.answers)
	}
}

func TestServiceReturnsProfiles(t *testing.T) {
	svc := NewService()

	profile, err := svc.Style(AnswersRequest{Answers: []string{"minimal", "minimal"}})
	require.NoError(t, err)
	require.Equal(t, "Estilo Minimalista Moderno", profile.Name)

	palette, err := svc.Palette(AnswersRequest{Answers: []string{"autumn"}})
	require.NoError(t, err)
	require.Equal(t, "Outono Acolhedor", palette.Name)
	require.Equal(t, "#92400e", palette.Colors.Primary)

	require.Len(t, svc.StyleQuestions(), 7)
	require.Len(t, svc.PaletteQuestions(), 6)

	_, err = svc.Style(AnswersRequest{Answers: make([]string, 8)})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestEveryOptionMapsToKnownOrRuleValue(t *testing.T) {
	for _, q := range styleQuestions {
		for _, o := range q.Options {
			_, ok := styleProfiles[o.Value]
			require.True(t, ok, o.Value)
		}
	}
}
