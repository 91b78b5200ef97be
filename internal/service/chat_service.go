package service

import (
	"context"
	"fmt"
	"strings"

	"finbuddy/internal/dto"

	"go.uber.org/zap"
)

// greetingTokens mark a conversation opener. Matched as substrings of the
// lowercased message, so capitalized greetings count too.
var greetingTokens = []string{"hi", "hey", "hello", "yo", "sup"}

const onboardingPrompt = `You are a warm, approachable financial buddy.
The user just started chatting — don't jump into their finances yet.
Keep it light, friendly, and human.
Example:
User: "Hey" → You: "Hey! How's it going? What's on your mind today?"
User: "What do you do?" → You: "I help you keep track of your money, goals, and spending — kind of like your finance buddy. Want me to show you how it works?"
Avoid talking about spending or data until the user brings it up.`

const behavioralCoda = `You are a calm, observant financial buddy — not a coach, not a teacher.
Speak like a thoughtful friend who's listening first and reflecting second.
Never rush to analyze everything at once — share ONE observation or question per message.
Keep responses short (2–4 sentences max).
Be conversational, never robotic or interrogative.`

// ChatService builds the persona prompt from caller-supplied expense and
// goal snapshots and relays the assembled conversation to the
// chat-completion API. It never reads the store.
type ChatService struct {
	llm    *GroqClient
	logger *zap.Logger
}

func NewChatService(llm *GroqClient, logger *zap.Logger) *ChatService {
	return &ChatService{
		llm:    llm,
		logger: logger,
	}
}

// Respond assembles the message sequence for the current turn and returns
// the model's reply.
func (s *ChatService) Respond(ctx context.Context, req *dto.ChatRequest) (string, error) {
	messages := s.BuildMessages(req)

	s.logger.Debug("Chat request assembled",
		zap.Int("history_len", len(req.History)),
		zap.Int("expense_count", len(req.Expenses)),
		zap.Bool("first_message", isFirstMessage(req.Message, len(req.Expenses))),
	)

	reply, err := s.llm.Complete(ctx, messages)
	if err != nil {
		return "", err
	}
	return sanitizeUTF8(reply), nil
}

// BuildMessages renders the system prompt and appends the full supplied
// history verbatim, then the current user message. No truncation or token
// accounting is applied.
func (s *ChatService) BuildMessages(req *dto.ChatRequest) []Message {
	systemPrompt := buildSystemPrompt(req) + "\n\n" + behavioralCoda

	messages := make([]Message, 0, len(req.History)+2)
	messages = append(messages, Message{Role: string(SystemRole), Content: systemPrompt})
	for _, turn := range req.History {
		messages = append(messages, Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, Message{Role: string(UserRole), Content: req.Message})

	return messages
}

// isFirstMessage classifies the turn as a conversation opener: no expense
// snapshot supplied, or the message contains a greeting token.
func isFirstMessage(message string, expenseCount int) bool {
	if expenseCount == 0 {
		return true
	}
	lowered := strings.ToLower(message)
	for _, token := range greetingTokens {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}

func buildSystemPrompt(req *dto.ChatRequest) string {
	if isFirstMessage(req.Message, len(req.Expenses)) {
		return onboardingPrompt
	}

	var total float64
	for _, exp := range req.Expenses {
		total += exp.Amount
	}

	breakdown := buildBreakdown(req.Expenses)

	breakdownLine := "- No expenses tracked yet"
	if len(breakdown) > 0 {
		parts := make([]string, 0, 3)
		for i, entry := range breakdown {
			if i == 3 {
				break
			}
			parts = append(parts, fmt.Sprintf("%s ₹%.0f", entry.Category, entry.Total))
		}
		breakdownLine = "- Spending breakdown: " + strings.Join(parts, ", ")
	}

	topLine := ""
	if top, amount, ok := topCategory(breakdown); ok {
		topLine = fmt.Sprintf("- Top spending category: %s (₹%.0f)", top, amount)
	}

	return fmt.Sprintf(`You are a calm, data-aware financial companion.
Your tone is friendly but balanced — you reflect on spending instead of telling users what to do.
USER'S CURRENT SITUATION:
- Total spent: ₹%.2f (%d transactions)
%s
- Goals: %d active
%s

CONVERSATION STYLE:
Speak like a calm, observant friend — not a coach or teacher.
→ Only make ONE reflection or gentle observation per reply.
→ At most ONE open-ended question if needed — never stack multiple questions.
→ Give the user time to think, don't rush with facts.`,
		total, len(req.Expenses), breakdownLine, len(req.Goals), topLine)
}

// buildBreakdown sums snapshot amounts per category by exact string match,
// preserving first-seen category order.
func buildBreakdown(expenses []dto.ExpenseSnapshot) []dto.CategoryTotal {
	index := make(map[string]int)
	breakdown := []dto.CategoryTotal{}

	for _, exp := range expenses {
		if i, ok := index[exp.Category]; ok {
			breakdown[i].Total += exp.Amount
			continue
		}
		index[exp.Category] = len(breakdown)
		breakdown = append(breakdown, dto.CategoryTotal{Category: exp.Category, Total: exp.Amount})
	}

	return breakdown
}

// topCategory picks the category with the highest summed total. Ties go to
// the first-seen category, so the result is deterministic.
func topCategory(breakdown []dto.CategoryTotal) (string, float64, bool) {
	if len(breakdown) == 0 {
		return "", 0, false
	}

	top := breakdown[0]
	for _, entry := range breakdown[1:] {
		if entry.Total > top.Total {
			top = entry
		}
	}
	return top.Category, top.Total, true
}
