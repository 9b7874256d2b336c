package config

// ServerConfig holds configuration for the stand-in login application
type ServerConfig struct {
	Port         string
	TemplatesDir string
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig(getenv func(string) string) ServerConfig {
	port := getenv("PORT")
	if port == "" {
		port = "8080"
	}

	templatesDir := getenv("TEMPLATES_DIR")
	if templatesDir == "" {
		templatesDir = "templates"
	}

	return ServerConfig{
		Port:         port,
		TemplatesDir: templatesDir,
	}
}
