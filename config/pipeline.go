package config

type PipelineConfig struct {
	// StreamBuffer is the capacity of the result stream between a
	// stage and its consumer.
	StreamBuffer int
}

func NewPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		StreamBuffer: 64,
	}
}
