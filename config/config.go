package config

import (
	_ "embed"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("PORTAL_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("PORTAL_DEBUG") == "true"
}

// GetListenAddr returns the address the web server binds to.
func GetListenAddr() string {
	listen := os.Getenv("PORTAL_LISTEN")
	port := os.Getenv("PORTAL_PORT")
	if port == "" {
		port = "3000"
	}
	if _, err := strconv.Atoi(port); err != nil {
		port = "3000"
	}
	return listen + ":" + port
}

// GetSessionSecret returns the secret used to sign session tokens.
// Empty means no secret is configured and the caller must generate one.
func GetSessionSecret() string {
	return os.Getenv("JWT_SECRET")
}
