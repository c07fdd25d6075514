package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8090" {
		t.Errorf("expected default port 8090, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.LLMModel != "gpt-4" {
		t.Errorf("expected default model gpt-4, got %s", cfg.LLMModel)
	}
	if cfg.LLMTimeoutSeconds != 20 {
		t.Errorf("expected default timeout 20s, got %d", cfg.LLMTimeoutSeconds)
	}
	if !cfg.IsDev() {
		t.Error("expected IsDev() to be true by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("LLM_MODEL", "gpt-4o-mini")
	t.Setenv("LLM_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.IsDev() {
		t.Error("expected IsDev() to be false for production")
	}
	if cfg.LLMModel != "gpt-4o-mini" {
		t.Errorf("expected model gpt-4o-mini, got %s", cfg.LLMModel)
	}
	if cfg.LLMTimeoutSeconds != 5 {
		t.Errorf("expected timeout 5s, got %d", cfg.LLMTimeoutSeconds)
	}
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := &Config{LLMTimeoutSeconds: 20}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing OPENAI_API_KEY")
	}
}

func TestValidate_BadTimeout(t *testing.T) {
	cfg := &Config{OpenAIAPIKey: "sk-test", LLMTimeoutSeconds: 0}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive LLM_TIMEOUT_SECONDS")
	}
}
