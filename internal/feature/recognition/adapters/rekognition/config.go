package rekognition

import "os"

// Config holds configuration for the Amazon Rekognition client.
type Config struct {
	Region string // AWS region (e.g., "us-east-1"); empty falls back to the SDK default chain
}

// LoadConfig loads Rekognition configuration from environment variables.
func LoadConfig() Config {
	return Config{
		Region: os.Getenv("AWS_REGION"),
	}
}
