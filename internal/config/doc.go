// Package config provides configuration management for the claude2gemini CLI.
//
// Settings are read with github.com/spf13/viper from the first existing file
// of: the --config flag, ./claude2gemini.yaml, and
// <XDG config>/claude2gemini/config.yaml. Every key can be overridden with a
// CLAUDE2GEMINI_ environment variable (dots become underscores). The provider
// keys are also read from GEMINI_API_KEY and ANTHROPIC_API_KEY.
//
//	output: ../.gemini/skills
//	ai:
//	  provider: gemini        # or anthropic
//	  model: gemini-2.5-flash
//	  max_tokens: 8192
//	  timeout: 0s
//	  retry:
//	    attempts: 1
//	    delay: 1s
//
// [LoadDotEnv] loads the nearest .env file before configuration is read so
// credentials can live next to a project.
//
// # Validation
//
// [Load] validates the result; [Validate] can also be called directly:
//
//	errs := config.Validate(cfg)
//	for _, e := range errs {
//	    fmt.Println(e)
//	}
package config
