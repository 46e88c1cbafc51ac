package cliconfig

import "os"

// ApplyEnvConfig applies TENPIN_* environment variables that no explicit
// flag overrides. Env values take precedence over the config file.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv("TENPIN_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("TENPIN_LOG_FORMAT"), &cfg.LogFormat)
	s.setString("output", os.Getenv("TENPIN_OUTPUT"), &cfg.Output)
	s.setBoolFromString("frames", os.Getenv("TENPIN_FRAMES"), &cfg.Frames)
	s.setBoolFromString("strict", os.Getenv("TENPIN_STRICT"), &cfg.Strict)
}
