package configs

// Tracing configures OpenTelemetry span export. Export is opt-in: with an
// empty Endpoint the global no-op provider stays in place.
type Tracing struct {
	Enabled     bool    `env:"ENABLED" envDefault:"true"`
	Endpoint    string  `env:"ENDPOINT"`
	ServiceName string  `env:"SERVICE_NAME" envDefault:"adsmarket"`
	SampleRatio float64 `env:"SAMPLE_RATIO" envDefault:"1"`
}

// Active reports whether spans should be exported.
func (t Tracing) Active() bool {
	return t.Enabled && t.Endpoint != ""
}
