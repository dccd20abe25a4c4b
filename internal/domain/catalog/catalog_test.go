package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lookia/lookia/internal/domain/look"
)

const photoQuery = "?w=400&h=600&fit=crop&crop=center"

func TestImagesExactMatch(t *testing.T) {
	c := Default()
	imgs := c.Images("formal", "trabalho")
	require.Equal(t, "/api/v1/proxy-image/photo-1515372039744-b8f02a3ae446"+photoQuery, imgs[0])
	require.Len(t, imgs, 3)
}

func TestImagesFallsBackToFirstOccasionOfStyle(t *testing.T) {
	c := Default()
	// esportivo has no trabalho set; first occasion is passeio.
	imgs := c.Images("esportivo", "trabalho")
	require.Equal(t, "/api/v1/proxy-image/photo-1445205170230-053b83016050"+photoQuery, imgs[0])
}

func TestImagesUnknownValuesUseDefaults(t *testing.T) {
	c := Default()
	// unknown style resolves to casual, unknown occasion to passeio.
	require.Equal(t, c.Images("casual", "passeio"), c.Images("gótico", "lua"))
	require.Equal(t, c.Images("casual", "passeio"), c.Images("", ""))
}

func TestImagesStyleWithoutLooksUsesDefaultList(t *testing.T) {
	c := Default()
	c.Looks = nil
	imgs := c.Images("casual", "passeio")
	require.Len(t, imgs, len(c.DefaultPhotos))
	require.NotEmpty(t, imgs)
}

func TestImagesReturnsCopies(t *testing.T) {
	c := Default()
	imgs := c.Images("formal", "festa")
	imgs[0] = "mutated"
	require.NotEqual(t, "mutated", c.Images("formal", "festa")[0])
}

func TestTipsThresholds(t *testing.T) {
	c := Default()
	cold := c.Tips(look.Profile{WeatherData: &look.Weather{Temperature: 15, Condition: "clouds"}})
	require.Equal(t, []string{"🧥 Está friozinho! Use camadas para ficar aquecida e estilosa"}, cold)

	hot := c.Tips(look.Profile{WeatherData: &look.Weather{Temperature: 30, Condition: "clear"}})
	require.Equal(t, []string{"☀️ Calor! Prefira tecidos leves como linho e algodão"}, hot)

	rain := c.Tips(look.Profile{WeatherData: &look.Weather{Temperature: 22, Condition: "light rain"}})
	require.Equal(t, []string{"☔ Chovendo! Leve guarda-chuva e calçados impermeáveis"}, rain)

	mixed := c.Tips(look.Profile{EstiloDesejado: "ousado", WeatherData: &look.Weather{Temperature: 10, Condition: "rain"}})
	require.Len(t, mixed, 3)
	require.Equal(t, "💫 Aposte em cores vibrantes e peças statement", mixed[2])

	require.Empty(t, c.Tips(look.Profile{}))
}

func TestAccessoriesBranch(t *testing.T) {
	c := Default()
	require.Equal(t, "💼 Bolsa estruturada", c.Accessories(look.Profile{Formalidade: "formal"})[0])
	require.Equal(t, "🕶️ Óculos de sol", c.Accessories(look.Profile{Formalidade: "casual"})[0])
}

func TestVariations(t *testing.T) {
	c := Default()
	vs := c.Variations()
	require.Len(t, vs, 3)
	require.Equal(t, []string{"classic", "modern", "comfort"}, []string{vs[0].ID, vs[1].ID, vs[2].ID})
	require.Equal(t, []string{"elegante", "casual", "boho"}, []string{vs[0].Style, vs[1].Style, vs[2].Style})

	require.Equal(t, c.VariationTips("versão clássica"), c.VariationTips("desconhecida"))
	require.Equal(t, c.VariationAccessories("versão clássica"), c.VariationAccessories(""))
	require.Equal(t, c.VariationImages("casual"), c.VariationImages("neon"))
	require.Equal(t, c.VariationImages("boho"), c.VariationImages("BOHO"))
}

func TestLoadOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	doc := `
proxyPrefix: /img/
defaultPhotos: [a]
variations:
  - id: only
    label: única
variationPhotos:
  fallback: x
  styles:
    x: [b]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"/img/a"}, c.Images("casual", "passeio"))
	require.Equal(t, []string{"/img/b"}, c.VariationImages("y"))
}

func TestLoadRejectsEmptyDefaults(t *testing.T) {
	_, err := Parse([]byte("proxyPrefix: /x/\n"))
	require.Error(t, err)
}
