package factory

import (
	"fmt"

	"dam-butler-be/pkg/llm"
	"dam-butler-be/pkg/llm/ollama"
	"dam-butler-be/pkg/llm/openai"
)

// NewLLMProvider builds a provider from config. An empty providerType
// returns (nil, nil): intent parsing then runs on pattern matching alone.
func NewLLMProvider(providerType, apiKey, modelName, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "":
		return nil, nil
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires an api key")
		}
		return openai.NewOpenAIProvider(apiKey, baseURL, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
