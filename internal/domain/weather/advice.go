package weather

import (
	"strings"

	"github.com/lookia/lookia/internal/domain/look"
)

// Advice groups clothing suggestions derived from a weather snapshot.
type Advice struct {
	Layers      []string `json:"layers"`
	Materials   []string `json:"materials"`
	Accessories []string `json:"accessories"`
	Footwear    []string `json:"footwear"`
	Tips        []string `json:"tips"`
}

// Advise derives clothing advice from temperature, condition, wind and humidity.
func Advise(w look.Weather) Advice {
	a := Advice{
		Layers:      []string{},
		Materials:   []string{},
		Accessories: []string{},
		Footwear:    []string{},
		Tips:        []string{},
	}

	switch {
	case w.Temperature <= 15:
		a.Layers = append(a.Layers, "casaco", "jaqueta", "suéter")
		a.Materials = append(a.Materials, "lã", "fleece", "couro")
		a.Accessories = append(a.Accessories, "cachecol", "gorro", "luvas")
		a.Footwear = append(a.Footwear, "botas", "tênis fechado")
		a.Tips = append(a.Tips, "Use camadas para se aquecer")
	case w.Temperature <= 25:
		a.Layers = append(a.Layers, "cardigan", "blazer leve")
		a.Materials = append(a.Materials, "algodão", "jeans", "tricot leve")
		a.Footwear = append(a.Footwear, "tênis", "sapatos fechados", "botas baixas")
		a.Tips = append(a.Tips, "Temperatura agradável para looks versáteis")
	default:
		a.Layers = append(a.Layers, "camiseta", "regata", "vestido leve")
		a.Materials = append(a.Materials, "linho", "algodão", "viscose")
		a.Accessories = append(a.Accessories, "óculos de sol", "chapéu")
		a.Footwear = append(a.Footwear, "sandálias", "tênis respirável", "sapatilhas")
		a.Tips = append(a.Tips, "Prefira tecidos leves e respiráveis")
	}

	if strings.Contains(w.Condition, "rain") || strings.Contains(w.Condition, "drizzle") {
		a.Accessories = append(a.Accessories, "guarda-chuva", "capa de chuva")
		a.Footwear = []string{"botas impermeáveis", "sapatos fechados"}
		a.Materials = append(a.Materials, "materiais impermeáveis")
		a.Tips = append(a.Tips, "Evite tecidos que demoram para secar")
	}

	if strings.Contains(w.Condition, "snow") {
		a.Layers = append(a.Layers, "casaco pesado", "segunda pele")
		a.Accessories = append(a.Accessories, "cachecol", "gorro", "luvas impermeáveis")
		a.Footwear = []string{"botas de neve", "calçados antiderrapantes"}
		a.Tips = append(a.Tips, "Proteja extremidades do corpo")
	}

	if w.WindSpeed > 20 {
		a.Tips = append(a.Tips, "Evite peças muito soltas devido ao vento")
		a.Accessories = append(a.Accessories, "presilhas para cabelo")
	}

	if w.Humidity > 80 {
		a.Materials = append(a.Materials, "tecidos que absorvem umidade")
		a.Tips = append(a.Tips, "Prefira tecidos respiráveis devido à umidade")
	}

	return a
}
