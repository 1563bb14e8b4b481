package facades

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/genai"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

const geminiService = "gemini"

// GeminiFacade sends prompts to the Gemini generateContent endpoint. Every
// attempt runs under its own timeout and transient failures are retried with
// exponential backoff; callers see a single error once the budget is spent.
type GeminiFacade struct {
	client     *genai.Client
	model      string
	timeout    time.Duration
	maxRetries uint64
	newBackOff func() backoff.BackOff
}

// GeminiOpt configures a GeminiFacade.
type GeminiOpt func(*GeminiFacade)

// WithGeminiTimeout sets the per-attempt timeout.
func WithGeminiTimeout(timeout time.Duration) GeminiOpt {
	return func(f *GeminiFacade) {
		f.timeout = timeout
	}
}

// WithGeminiMaxRetries sets how many times a retryable failure is retried.
func WithGeminiMaxRetries(n uint64) GeminiOpt {
	return func(f *GeminiFacade) {
		f.maxRetries = n
	}
}

// WithGeminiBackOff replaces the exponential backoff policy.
func WithGeminiBackOff(newBackOff func() backoff.BackOff) GeminiOpt {
	return func(f *GeminiFacade) {
		f.newBackOff = newBackOff
	}
}

// NewGeminiFacade creates a facade for model. With an empty apiKey the facade
// is still returned but every call fails with a *models.ConfigError.
// baseURL overrides the public endpoint when non-empty.
func NewGeminiFacade(ctx context.Context, apiKey, model, baseURL string, opts ...GeminiOpt) (*GeminiFacade, error) {
	f := &GeminiFacade{
		model:      model,
		timeout:    30 * time.Second,
		maxRetries: 2,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxInterval = 5 * time.Second
			return b
		},
	}
	for _, opt := range opts {
		opt(f)
	}

	if apiKey == "" {
		return f, nil
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	f.client = client
	return f, nil
}

// Configured reports whether an API key was supplied.
func (f *GeminiFacade) Configured() bool {
	return f.client != nil
}

// Generate sends prompt and returns the text of the first candidate.
func (f *GeminiFacade) Generate(ctx context.Context, prompt string, opts models.GenerationOptions) (string, error) {
	if f.client == nil {
		return "", &models.ConfigError{Key: "GEMINI_API_KEY"}
	}

	cfg := generateConfig(opts)
	attempt := 0
	op := func() (string, error) {
		attempt++
		text, err := f.generateOnce(ctx, prompt, cfg)
		if err == nil {
			return text, nil
		}
		var upErr *models.UpstreamError
		if errors.As(err, &upErr) && !retryable(upErr) {
			return "", backoff.Permanent(err)
		}
		logger.FromContext(ctx).Warnw("gemini attempt failed", "attempt", attempt, "error", err)
		return "", err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(f.newBackOff(), f.maxRetries), ctx)
	text, err := backoff.RetryWithData(op, b)
	if err != nil {
		logger.FromContext(ctx).Errorw("gemini generation failed", "attempts", attempt, "error", err)
		var upErr *models.UpstreamError
		if errors.As(err, &upErr) {
			return "", upErr
		}
		return "", &models.UpstreamError{Service: geminiService, Message: err.Error(), Err: err}
	}
	return text, nil
}

func (f *GeminiFacade) generateOnce(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.client.Models.GenerateContent(callCtx, f.model, genai.Text(prompt), cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &models.UpstreamError{
				Service:    geminiService,
				StatusCode: apiErr.Code,
				Message:    apiErr.Message,
				Err:        err,
			}
		}
		return "", &models.UpstreamError{Service: geminiService, Message: err.Error(), Err: err}
	}

	text := candidateText(resp)
	if text == "" {
		return "", &models.UpstreamError{Service: geminiService, Message: "no candidate text in response"}
	}
	return text, nil
}

func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// retryable reports whether another attempt may succeed: transport failures,
// empty candidates, throttling and server errors.
func retryable(err *models.UpstreamError) bool {
	return err.StatusCode == 0 ||
		err.StatusCode == http.StatusTooManyRequests ||
		err.StatusCode >= http.StatusInternalServerError
}

func generateConfig(opts models.GenerationOptions) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     opts.Temperature,
		TopK:            opts.TopK,
		TopP:            opts.TopP,
		MaxOutputTokens: opts.MaxOutputTokens,
	}
	if opts.SafetyFilters {
		for _, category := range []genai.HarmCategory{
			genai.HarmCategoryHarassment,
			genai.HarmCategoryHateSpeech,
			genai.HarmCategorySexuallyExplicit,
			genai.HarmCategoryDangerousContent,
		} {
			cfg.SafetySettings = append(cfg.SafetySettings, &genai.SafetySetting{
				Category:  category,
				Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
			})
		}
	}
	return cfg
}
