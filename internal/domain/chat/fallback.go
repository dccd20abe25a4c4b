package chat

import (
	"fmt"
	"strings"

	"github.com/lookia/lookia/internal/domain/look"
)

const (
	unconfiguredReply = "Desculpe, não consegui processar sua mensagem agora. Tente novamente mais tarde."
	genericApology    = "Desculpe, tive um problema técnico. Pode repetir sua mensagem?"

	firstGreeting = "Olá! Sou sua assistente de moda pessoal! 👗✨\n\n" +
		"Para criar o look perfeito para você, me conte: para que ocasião você precisa se vestir hoje?\n\n" +
		"📍 **Ocasiões que posso ajudar:**\n" +
		"• Trabalho/reunião\n• Encontro romântico\n• Passeio casual\n• Festa/evento\n• Exercícios\n• Viagem\n• Ficar em casa"

	midGreeting = "Oi! Como posso ajudar você com seu look hoje? 😊\n\nMe conte para que ocasião você precisa se vestir!"

	workReply = "Perfeito! Para o trabalho, vou criar um look profissional e elegante para você! 💼\n\n" +
		"Me conte mais alguns detalhes:\n• Qual é o clima hoje?\n• Você prefere algo mais formal ou business casual?\n" +
		"• Tem alguma cor favorita ou que deve evitar?"

	dateReply = "Que romântico! 💕 Vou criar um look encantador para seu encontro!\n\n" +
		"Para personalizar melhor:\n• Onde será o encontro? (restaurante, cinema, parque...)\n" +
		"• Qual seu estilo preferido? (elegante, casual, boho...)\n• Tem alguma peça favorita no guarda-roupa?"

	partyReply = "Festa! 🎉 Vamos criar um look incrível para você arrasar!\n\n" +
		"Me ajude com os detalhes:\n• Que tipo de festa? (aniversário, casamento, balada...)\n" +
		"• É durante o dia ou à noite?\n• Tem dress code específico?"

	needMoreReply = "Entendi! Para criar o look ideal, preciso saber mais alguns detalhes:\n\n" +
		"• Para que ocasião você precisa se vestir?\n• Como está o clima hoje?\n• Qual seu estilo preferido?\n\n" +
		"Com essas informações, posso sugerir looks incríveis para você! ✨"

	completeLookTemplate = "## 👗 **Look Principal**\n\n**Para %s:**\n" +
		"• **Top:** Blusa social branca ou camisa de seda\n" +
		"• **Bottom:** Calça alfaiataria ou saia midi\n" +
		"• **Calçado:** Sapato fechado confortável ou scarpin baixo\n" +
		"• **Terceira peça:** Blazer estruturado\n\n---\n\n" +
		"## ✨ **Alternativas**\n\n" +
		"**Opção 2:** Vestido midi + cardigan + sapatilha\n" +
		"**Opção 3:** Calça jeans escura + blusa elegante + jaqueta\n\n---\n\n" +
		"## 👜 **Acessórios**\n• Bolsa estruturada pequena/média\n• Relógio delicado\n• Brincos discretos\n• Cinto fino (opcional)\n\n---\n\n" +
		"## 💡 **Dica Especial**\n\n" +
		"Para %s, lembre-se de levar uma peça extra para se adaptar à temperatura! " +
		"A confiança é o melhor acessório - use o que faz você se sentir bem! ✨\n\n" +
		"*Precisa de mais alguma coisa? Posso ajudar com outras ocasiões!*"
)

// cannedReply picks a situational reply when the model is rate limited or unavailable.
func cannedReply(message string, profile look.Profile, history []HistoryEntry) string {
	if len(history) == 0 {
		return firstGreeting
	}

	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, "oi", "olá"):
		return midGreeting
	case containsAny(lower, "trabalho", "reunião"):
		return workReply
	case containsAny(lower, "encontro", "romântico"):
		return dateReply
	case containsAny(lower, "festa", "evento"):
		return partyReply
	}

	condition := ""
	if profile.WeatherData != nil {
		condition = profile.WeatherData.Condition
	}
	if profile.Ocasiao != "" && (condition != "" || profile.EstiloDesejado != "") {
		return completeLook(profile.Ocasiao, condition)
	}
	return needMoreReply
}

func completeLook(occasion, weather string) string {
	if occasion == "" {
		occasion = "casual"
	}
	if weather == "" {
		weather = "ameno"
	}
	return fmt.Sprintf(completeLookTemplate, occasion, weather)
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
