package services

//go:generate mockgen -source=chat.go -destination=chat_mock.go -package=services

import (
	"context"
	"fmt"
	"strings"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// ChatSystemPrompt frames every chat exchange.
const ChatSystemPrompt = `You are a career assessment assistant with web search capabilities. Your role is to:
1. Help users identify their skills and interests
2. Provide career path suggestions based on their skills
3. Generate relevant quiz questions to assess their knowledge
4. Offer guidance on skill development
5. Keep responses concise and focused on career development
6. Use web search results to provide up-to-date information

When using web search results:
- Cite sources when providing information
- Summarize key points from multiple sources
- Focus on recent and relevant information
- Format your response with markdown for better readability

Format your responses in a friendly, conversational tone while maintaining professionalism.`

// WebSearcher looks up recent web results. Search degrades to an empty slice.
type WebSearcher interface {
	Configured() bool
	Search(ctx context.Context, query string) []models.SearchResult
}

// ChatGenerator is a Generator that can report a missing API key.
type ChatGenerator interface {
	Generator
	Configured() bool
}

// ChatService answers career questions with search-augmented prompts.
type ChatService struct {
	gen    ChatGenerator
	search WebSearcher
}

// NewChatService creates a new ChatService instance.
func NewChatService(gen ChatGenerator, search WebSearcher) *ChatService {
	return &ChatService{gen: gen, search: search}
}

// ChatPrompt assembles the system prompt, the user message and numbered search context.
func ChatPrompt(message string, results []models.SearchResult) string {
	var searchContext string
	if len(results) > 0 {
		entries := make([]string, len(results))
		for i, r := range results {
			entries[i] = fmt.Sprintf("[%d] %s\n%s\nSource: %s", i+1, r.Title, r.Snippet, r.Link)
		}
		searchContext = "\n\nRecent web search results:\n" + strings.Join(entries, "\n\n")
	}
	return ChatSystemPrompt + "\n\nUser: " + message + searchContext + "\n\nAssistant:"
}

// Chat replies to message and returns the search results the reply was grounded on.
func (svc *ChatService) Chat(ctx context.Context, message string) (string, []models.SearchResult, error) {
	if strings.TrimSpace(message) == "" {
		return "", nil, &models.ValidationError{Message: "Message is required"}
	}
	if !svc.gen.Configured() {
		return "", nil, &models.ConfigError{Key: "GEMINI_API_KEY"}
	}
	if !svc.search.Configured() {
		return "", nil, &models.ConfigError{Key: "SEARCH_API_KEY"}
	}

	results := svc.search.Search(ctx, message)

	text, err := svc.gen.Generate(ctx, ChatPrompt(message, results), models.ChatGenerationOptions())
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate chat reply", "err", err)
		return "", nil, err
	}

	return strings.TrimSpace(text), results, nil
}
