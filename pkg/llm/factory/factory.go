package factory

import (
	"fmt"

	"ai-chartgen-be/pkg/llm"
	"ai-chartgen-be/pkg/llm/gemini"
	"ai-chartgen-be/pkg/llm/huggingface"
	"ai-chartgen-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL, hfKey, geminiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(hfKey, "", modelName), nil
	case "gemini":
		return gemini.NewGeminiProvider(geminiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
