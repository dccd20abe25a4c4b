package look

import (
	"encoding/json"
	"errors"
	"strings"
)

// Weather is the normalized weather snapshot attached to a profile.
type Weather struct {
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
	FeelsLike   int    `json:"feelsLike"`
}

// Profile accumulates what is known about the user during a session.
// Every field is optional; the zero value is an empty profile.
type Profile struct {
	Clima           string   `json:"clima,omitempty"`
	Ocasiao         string   `json:"ocasiao,omitempty"`
	Cores           Colors   `json:"cores,omitempty"`
	Estilo          string   `json:"estilo,omitempty"`
	Orcamento       string   `json:"orcamento,omitempty"`
	ConfortoOusadia string   `json:"confortoOusadia,omitempty"`
	Personalidade   string   `json:"personalidade,omitempty"`
	Cidade          string   `json:"cidade,omitempty"`
	EstiloDesejado  string   `json:"estiloDesejado,omitempty"`
	Local           string   `json:"local,omitempty"`
	Formalidade     string   `json:"formalidade,omitempty"`
	Preferencias    string   `json:"preferencias,omitempty"`
	Restricoes      string   `json:"restricoes,omitempty"`
	Impacto         string   `json:"impacto,omitempty"`
	WeatherData     *Weather `json:"weatherData,omitempty"`
}

// Merge returns a copy of p where every non-empty field of updates replaces the
// corresponding field. Fields absent from updates are left untouched.
func (p Profile) Merge(updates Profile) Profile {
	out := p
	overwrite(&out.Clima, updates.Clima)
	overwrite(&out.Ocasiao, updates.Ocasiao)
	overwrite(&out.Estilo, updates.Estilo)
	overwrite(&out.Orcamento, updates.Orcamento)
	overwrite(&out.ConfortoOusadia, updates.ConfortoOusadia)
	overwrite(&out.Personalidade, updates.Personalidade)
	overwrite(&out.Cidade, updates.Cidade)
	overwrite(&out.EstiloDesejado, updates.EstiloDesejado)
	overwrite(&out.Local, updates.Local)
	overwrite(&out.Formalidade, updates.Formalidade)
	overwrite(&out.Preferencias, updates.Preferencias)
	overwrite(&out.Restricoes, updates.Restricoes)
	overwrite(&out.Impacto, updates.Impacto)
	if len(updates.Cores) > 0 {
		out.Cores = append(Colors(nil), updates.Cores...)
	}
	if updates.WeatherData != nil {
		w := *updates.WeatherData
		out.WeatherData = &w
	}
	return out
}

func overwrite(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// Recommendation is a generated look: description, images, tips and accessories.
// ID, Title and Style are only set for alternatives.
type Recommendation struct {
	ID         string   `json:"id,omitempty"`
	Title      string   `json:"title,omitempty"`
	Descricao  string   `json:"descricao"`
	Imagens    []string `json:"imagens"`
	Dicas      []string `json:"dicas"`
	Acessorios []string `json:"acessorios"`
	Style      string   `json:"style,omitempty"`
}

// Colors accepts either a JSON string or an array of strings.
type Colors []string

// UnmarshalJSON implements json.Unmarshaler.
func (c *Colors) UnmarshalJSON(raw []byte) error {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		*c = nil
		return nil
	}
	switch trimmed[0] {
	case '"':
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return err
		}
		if strings.TrimSpace(single) == "" {
			*c = nil
			return nil
		}
		*c = Colors{single}
		return nil
	case '[':
		var many []string
		if err := json.Unmarshal(raw, &many); err != nil {
			return err
		}
		*c = many
		return nil
	default:
		return errors.New("cores must be a string or an array of strings")
	}
}

// String joins the colors for prompts and templated sentences.
func (c Colors) String() string {
	return strings.Join(c, ", ")
}
