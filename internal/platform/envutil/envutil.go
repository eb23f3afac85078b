package envutil

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/logger"
)

func lookup(name string, log *logger.Logger) (string, bool) {
	v, ok := os.LookupEnv(name)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		if log != nil {
			log.Debug("Environment variable not found, using default", "env_var", name)
		}
		return "", false
	}
	return v, true
}

func String(name, def string, log *logger.Logger) string {
	v, ok := lookup(name, log)
	if !ok {
		return def
	}
	return v
}

func Int(name string, def int, log *logger.Logger) int {
	v, ok := lookup(name, log)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		if log != nil {
			log.Warn("Invalid integer environment variable, using default", "env_var", name, "default", def)
		}
		return def
	}
	return i
}

func Bool(name string, def bool, log *logger.Logger) bool {
	v, ok := lookup(name, log)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		if log != nil {
			log.Warn("Invalid boolean environment variable, using default", "env_var", name, "default", def)
		}
		return def
	}
}

// Duration accepts Go duration strings ("750ms", "10s") or a bare number of
// seconds.
func Duration(name string, def time.Duration, log *logger.Logger) time.Duration {
	v, ok := lookup(name, log)
	if !ok {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	if log != nil {
		log.Warn("Invalid duration environment variable, using default", "env_var", name, "default", def.String())
	}
	return def
}

// List splits a comma separated variable, dropping empty entries.
func List(name string, def []string, log *logger.Logger) []string {
	v, ok := lookup(name, log)
	if !ok {
		return def
	}
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func Float(name string, def float64, log *logger.Logger) float64 {
	v, ok := lookup(name, log)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		if log != nil {
			log.Warn("Invalid float environment variable, using default", "env_var", name, "default", def)
		}
		return def
	}
	return f
}
