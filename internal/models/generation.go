package models

// GenerationOptions are the sampling parameters of one generation request.
// Nil pointers leave the upstream default in place.
type GenerationOptions struct {
	Temperature     *float32
	TopK            *float32
	TopP            *float32
	MaxOutputTokens int32
	SafetyFilters   bool // block medium-and-above harassment, hate, sexual and dangerous content
}

// ChatGenerationOptions are the parameters used for chat replies.
func ChatGenerationOptions() GenerationOptions {
	temperature, topK, topP := float32(0.7), float32(40), float32(0.95)
	return GenerationOptions{
		Temperature:     &temperature,
		TopK:            &topK,
		TopP:            &topP,
		MaxOutputTokens: 1024,
		SafetyFilters:   true,
	}
}
