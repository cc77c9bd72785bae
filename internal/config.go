package internal

// Config holds the environment-driven settings of the standalone binaries.
type Config struct {
	LogLevel string `env:"LOG_LEVEL,default=info"`
	// MaxRows caps how many records an inspection renders; 0 means no cap.
	MaxRows int `env:"MAX_ROWS,default=0"`
}
