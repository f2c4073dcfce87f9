package config

const (
	KeyAPIKey          = "openai_api_key"
	KeyBaseURL         = "openai_base_url"
	KeyModel           = "model"
	KeyReasoningEffort = "reasoning_effort"
	KeySearchContext   = "search_context_size"
	KeyMaxRetries      = "max_retries"
	KeyRetryBaseDelay  = "retry_base_delay_ms"
	KeyCallTimeout     = "llm_call_timeout"
	KeyLogLevel        = "log_level"
)
