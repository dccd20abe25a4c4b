package stylist

import (
	"fmt"
	"strings"

	"github.com/lookia/lookia/internal/domain/look"
)

const notSpecified = "Não especificado"

func recommendationPrompt(p look.Profile) string {
	clima := notSpecified
	if w := p.WeatherData; w != nil {
		clima = fmt.Sprintf("%d°C, %s", w.Temperature, w.Description)
	}

	var b strings.Builder
	b.WriteString("Baseado nestas informações:\n")
	fmt.Fprintf(&b, "- Clima: %s\n", clima)
	fmt.Fprintf(&b, "- Ocasião: %s\n", or(p.Ocasiao, notSpecified))
	fmt.Fprintf(&b, "- Local: %s\n", or(p.Local, notSpecified))
	fmt.Fprintf(&b, "- Estilo: %s\n", or(p.EstiloDesejado, notSpecified))
	fmt.Fprintf(&b, "- Formalidade: %s\n", or(p.Formalidade, notSpecified))
	fmt.Fprintf(&b, "- Conforto/Ousadia: %s\n", or(p.ConfortoOusadia, notSpecified))
	fmt.Fprintf(&b, "- Preferências: %s\n", or(p.Preferencias, notSpecified))
	fmt.Fprintf(&b, "- Restrições: %s\n", or(p.Restricoes, "nenhuma"))
	fmt.Fprintf(&b, "- Impacto: %s\n", or(p.Impacto, notSpecified))
	b.WriteString(`
Gere uma descrição detalhada de look seguindo este formato:

"Show! 🎉 Aqui vai minha inspiração:

👖 Look principal: [descrição detalhada]

✨ Alternativa 1 (mais ousada): [descrição]

✨ Alternativa 2 (mais neutra): [descrição]

📌 Acessórios: [sugestões]

💄 Dica extra: [dica de estilo]

Gostou ou ajustamos?"`)
	return b.String()
}

func alternativePrompt(p look.Profile, variation string) string {
	weatherInfo := ""
	if w := p.WeatherData; w != nil {
		weatherInfo = fmt.Sprintf("Clima atual: %d°C, %s, umidade %d%%, vento %dkm/h.", w.Temperature, w.Condition, w.Humidity, w.WindSpeed)
	} else if p.Clima != "" {
		weatherInfo = "Clima: " + p.Clima
	}

	var b strings.Builder
	b.WriteString("Você é a Lookia, uma estilista IA super amigável e carinhosa! 💖\n\n")
	fmt.Fprintf(&b, "Crie uma %s do look para este perfil:\n", variation)
	fmt.Fprintf(&b, "- Ocasião: %s\n", or(p.Ocasiao, notSpecified))
	fmt.Fprintf(&b, "- Estilo: %s\n", or(p.Estilo, notSpecified))
	fmt.Fprintf(&b, "- Cores preferidas: %s\n", or(p.Cores.String(), notSpecified))
	fmt.Fprintf(&b, "- Conforto: %s\n", or(p.ConfortoOusadia, notSpecified))
	fmt.Fprintf(&b, "- Personalidade: %s\n", or(p.Personalidade, notSpecified))
	if weatherInfo != "" {
		b.WriteString(weatherInfo + "\n")
	}
	b.WriteString(`
Sua resposta deve ser:
- Muito amigável e carinhosa, usando emojis 💖✨🌟
- Explicar por que esta variação é especial
- Máximo 150 palavras
- Tom conversacional como se fosse sua melhor amiga

`)
	fmt.Fprintf(&b, "Variação solicitada: %s", variation)
	return b.String()
}
