package agent

import (
	"context"
	"fmt"
	"sort"

	"deckgen/pkg/core/llm"
)

// Config selects LLM providers for the generation stages. Loaded from
// config/models.yaml at boot.
type Config struct {
	ActiveProvider string                 `yaml:"active_provider"`
	Stages         map[string]StageConfig `yaml:"stages"`
}

// StageConfig optionally pins a stage (e.g. "deck") to a specific provider.
type StageConfig struct {
	Provider    string `yaml:"provider"`
	Description string `yaml:"description"`
}

type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

func NewManager(config Config) *Manager {
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"gateway":  &llm.GatewayProvider{},
			"gemini":   &llm.GeminiProvider{},
			"deepseek": &llm.DeepSeekProvider{},
		},
	}
}

func (m *Manager) GetProvider(stage string) llm.Provider {
	// 1. Check for stage-specific override
	if stageCfg, ok := m.config.Stages[stage]; ok && stageCfg.Provider != "" {
		if p, ok := m.providers[stageCfg.Provider]; ok {
			return p
		}
	}

	// 2. Use global active provider
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}

	// 3. Fallback
	return m.providers["gateway"]
}

// ExecutePrompt handles instruction adaptation before sending to the model.
func (m *Manager) ExecutePrompt(ctx context.Context, stage string, rawPrompt string, rawSystemPrompt string, options map[string]interface{}) (string, error) {
	provider := m.GetProvider(stage)
	adaptedSystemPrompt := provider.AdaptInstructions(rawSystemPrompt)
	return provider.GenerateResponse(ctx, rawPrompt, adaptedSystemPrompt, options)
}

func (m *Manager) SetGlobalProvider(newProvider string) error {
	if _, ok := m.providers[newProvider]; !ok {
		return fmt.Errorf("provider %s not found", newProvider)
	}
	m.config.ActiveProvider = newProvider
	return nil
}

func (m *Manager) GetActiveProvider() string {
	return m.config.ActiveProvider
}

// Providers lists the configured provider names, sorted.
func (m *Manager) Providers() []string {
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
