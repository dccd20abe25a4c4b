package chat

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lookia/lookia/internal/domain/generation"
	"github.com/lookia/lookia/internal/domain/look"
	apperrors "github.com/lookia/lookia/pkg/errors"
)

const maxBubbleRunes = 180

var bubbleSeparator = regexp.MustCompile(`\n{2,}`)

// HistoryEntry is one prior turn of the conversation.
type HistoryEntry struct {
	IsUser bool   `json:"isUser"`
	Text   string `json:"text"`
}

// Request is the chat payload posted by the client.
type Request struct {
	Message             string         `json:"message"`
	ConversationHistory []HistoryEntry `json:"conversationHistory"`
	UserProfile         look.Profile   `json:"userProfile"`
}

// Response carries the reply bubbles and the merged profile.
type Response struct {
	Messages    []string     `json:"messages"`
	UserProfile look.Profile `json:"userProfile"`
}

// Runner executes a prompt and reports success or a failure kind.
type Runner interface {
	Run(ctx context.Context, prompt string) generation.Result
}

// Service drives the conversational loop.
type Service interface {
	Reply(ctx context.Context, req Request) (Response, error)
}

type service struct {
	runner Runner
	logger *slog.Logger
}

// NewService wires the chat domain.
func NewService(runner Runner, logger *slog.Logger) Service {
	return &service{
		runner: runner,
		logger: logger.With("component", "chat.service"),
	}
}

func (s *service) Reply(ctx context.Context, req Request) (Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "Mensagem é obrigatória.", nil)
	}

	profile := req.UserProfile.Merge(Extract(message))
	res := s.runner.Run(ctx, buildPrompt(message, profile, req.ConversationHistory))

	var messages []string
	switch {
	case res.OK():
		messages = Bubbles(res.Text)
		if len(messages) == 0 {
			messages = []string{genericApology}
		}
	case res.Failure == generation.FailureUnconfigured:
		messages = []string{unconfiguredReply}
	case res.Retryable():
		messages = []string{cannedReply(message, profile, req.ConversationHistory)}
	default:
		messages = []string{genericApology}
	}

	s.logger.Info("chat reply ready",
		"bubbles", len(messages),
		"failure", string(res.Failure),
		"history", len(req.ConversationHistory),
	)
	return Response{Messages: messages, UserProfile: profile}, nil
}

// Bubbles splits a reply on blank lines into display fragments of at most
// 180 characters, appending an ellipsis to truncated ones.
func Bubbles(text string) []string {
	parts := bubbleSeparator.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if utf8.RuneCountInString(part) > maxBubbleRunes {
			part = string([]rune(part)[:maxBubbleRunes]) + "..."
		}
		out = append(out, part)
	}
	return out
}

func buildPrompt(message string, p look.Profile, history []HistoryEntry) string {
	temperature, condition := "N/A", "N/A"
	if w := p.WeatherData; w != nil {
		if w.Temperature != 0 {
			temperature = strconv.Itoa(w.Temperature)
		}
		if w.Condition != "" {
			condition = w.Condition
		}
	}

	lines := make([]string, 0, len(history))
	for _, h := range history {
		speaker := "Assistente"
		if h.IsUser {
			speaker = "Usuário"
		}
		lines = append(lines, speaker+": "+h.Text)
	}

	r := strings.NewReplacer(
		"{temperature}", temperature,
		"{condition}", condition,
		"{city}", na(p.Cidade),
		"{occasion}", na(p.Ocasiao),
		"{style}", na(p.EstiloDesejado),
		"{history}", strings.Join(lines, "\n"),
		"{message}", message,
	)
	return r.Replace(chatPromptTemplate)
}

func na(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
