package look

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorsAcceptStringOrArray(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{"cores":"azul"}`), &p))
	require.Equal(t, Colors{"azul"}, p.Cores)

	require.NoError(t, json.Unmarshal([]byte(`{"cores":["azul","preto"]}`), &p))
	require.Equal(t, Colors{"azul", "preto"}, p.Cores)
	require.Equal(t, "azul, preto", p.Cores.String())

	require.Error(t, json.Unmarshal([]byte(`{"cores":42}`), &p))
}

func TestMergeOverwritesOnlyKnownFields(t *testing.T) {
	base := Profile{Ocasiao: "festa", Cidade: "Recife", Cores: Colors{"verde"}}
	merged := base.Merge(Profile{Ocasiao: "trabalho", Restricoes: "saia curta"})

	require.Equal(t, "trabalho", merged.Ocasiao)
	require.Equal(t, "Recife", merged.Cidade)
	require.Equal(t, "saia curta", merged.Restricoes)
	require.Equal(t, Colors{"verde"}, merged.Cores)
	require.Equal(t, "festa", base.Ocasiao)
}

func TestMergeCopiesWeather(t *testing.T) {
	w := &Weather{Temperature: 20}
	merged := Profile{}.Merge(Profile{WeatherData: w})
	w.Temperature = 35
	require.Equal(t, 20, merged.WeatherData.Temperature)
}
