package main

import (
	"os"
	"strings"
)

const (
	EnvLogLevel  = "TST_LOG_LEVEL"
	EnvLogFormat = "TST_LOG_FORMAT"
	EnvCorpus    = "TST_CORPUS"
	EnvVerify    = "TST_VERIFY"
)

// envStr returns string env var or fallback.
func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envBool returns bool env var or fallback.
func envBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return fallback
}
