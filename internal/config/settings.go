package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"github.com/mitchellh/go-homedir"

	"github.com/ytget/dlshell/internal/platform"
)

// AppName names the per-user data directory
const AppName = "dlshell"

// Settings keys for Fyne preferences
const (
	KeyProgram     = "program"
	KeyHelpFlag    = "help_flag"
	KeyDataDir     = "data_directory"
	KeyWorkDir     = "working_directory"
	KeyLanguage    = "app_language"
	KeyHelpTimeout = "help_timeout_seconds"
)

// Default values
const (
	DefaultProgram     = "youtube-dl"
	DefaultHelpFlag    = "-h"
	DefaultLanguage    = "system"
	DefaultHelpTimeout = 30
	MinHelpTimeout     = 1
	MaxHelpTimeout     = 300
)

// Overrides come from flags or environment and apply to the current process only
type Overrides struct {
	Program  string
	HelpFlag string
	DataDir  string
	WorkDir  string
}

// Settings manages application configuration
type Settings struct {
	app       fyne.App
	overrides Overrides
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// SetOverrides installs process-wide overrides; empty fields are ignored
func (s *Settings) SetOverrides(o Overrides) {
	s.overrides = Overrides{
		Program:  strings.TrimSpace(o.Program),
		HelpFlag: strings.TrimSpace(o.HelpFlag),
		DataDir:  strings.TrimSpace(o.DataDir),
		WorkDir:  strings.TrimSpace(o.WorkDir),
	}
}

// GetProgram returns the name of the program to launch
func (s *Settings) GetProgram() string {
	if s.overrides.Program != "" {
		return s.overrides.Program
	}
	program := s.app.Preferences().String(KeyProgram)
	if program == "" {
		s.SetProgram(DefaultProgram)
		return DefaultProgram
	}
	return program
}

// SetProgram sets the program name
func (s *Settings) SetProgram(program string) {
	program = strings.TrimSpace(program)
	if program == "" {
		program = DefaultProgram
	}
	s.app.Preferences().SetString(KeyProgram, program)
}

// GetHelpFlag returns the flag used to fetch help text
func (s *Settings) GetHelpFlag() string {
	if s.overrides.HelpFlag != "" {
		return s.overrides.HelpFlag
	}
	flag := s.app.Preferences().String(KeyHelpFlag)
	if flag == "" {
		s.SetHelpFlag(DefaultHelpFlag)
		return DefaultHelpFlag
	}
	return flag
}

// SetHelpFlag sets the help flag
func (s *Settings) SetHelpFlag(flag string) {
	flag = strings.TrimSpace(flag)
	if flag == "" {
		flag = DefaultHelpFlag
	}
	s.app.Preferences().SetString(KeyHelpFlag, flag)
}

// GetDataDirectory returns the application data directory
func (s *Settings) GetDataDirectory() string {
	if s.overrides.DataDir != "" {
		return expand(s.overrides.DataDir)
	}
	dir := s.app.Preferences().String(KeyDataDir)
	if dir == "" {
		defaultDir, err := platform.GetUserDataDir(AppName)
		if err != nil {
			defaultDir = filepath.Join(os.TempDir(), AppName)
		}
		s.SetDataDirectory(defaultDir)
		return defaultDir
	}
	return expand(dir)
}

// SetDataDirectory sets the application data directory
func (s *Settings) SetDataDirectory(dir string) {
	s.app.Preferences().SetString(KeyDataDir, dir)
}

// GetWorkingDirectory returns the directory the program runs in
func (s *Settings) GetWorkingDirectory() string {
	if s.overrides.WorkDir != "" {
		return expand(s.overrides.WorkDir)
	}
	dir := s.app.Preferences().String(KeyWorkDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = os.TempDir()
		}
		s.SetWorkingDirectory(defaultDir)
		return defaultDir
	}
	return expand(dir)
}

// SetWorkingDirectory sets the working directory
func (s *Settings) SetWorkingDirectory(dir string) {
	s.app.Preferences().SetString(KeyWorkDir, dir)
}

// GetHelpTimeout returns how long a help run may take
func (s *Settings) GetHelpTimeout() time.Duration {
	value := s.app.Preferences().Int(KeyHelpTimeout)
	if value <= 0 {
		s.SetHelpTimeoutSeconds(DefaultHelpTimeout)
		value = DefaultHelpTimeout
	}
	return time.Duration(value) * time.Second
}

// SetHelpTimeoutSeconds sets the help timeout
func (s *Settings) SetHelpTimeoutSeconds(seconds int) {
	if seconds < MinHelpTimeout {
		seconds = MinHelpTimeout
	}
	if seconds > MaxHelpTimeout {
		seconds = MaxHelpTimeout
	}
	s.app.Preferences().SetInt(KeyHelpTimeout, seconds)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// expand resolves a leading ~ to the home directory
func expand(dir string) string {
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return dir
	}
	return expanded
}
