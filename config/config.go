package config

type AppConfig struct {
	PipelineConfig *PipelineConfig
}

func New() *AppConfig {
	return &AppConfig{
		PipelineConfig: NewPipelineConfig(),
	}
}
