// ABOUTME: Environment handling: ${VAR} expansion in config strings and credential lookup
// ABOUTME: The access token comes from config, then ACCESS_TOKEN, then PARTICLE_ACCESS_TOKEN

package config

import (
	"errors"
	"os"
	"regexp"
)

// Environment variables consulted for the access token, in order.
const (
	EnvAccessToken         = "ACCESS_TOKEN"
	EnvParticleAccessToken = "PARTICLE_ACCESS_TOKEN"
)

// ErrNoToken is returned when no access token is configured.
var ErrNoToken = errors.New("no access token: set " + EnvAccessToken + " or access_token in " + fileName)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.AccessToken = expandEnv(s.AccessToken)
	s.APIURL = expandEnv(s.APIURL)
	s.Device = expandEnv(s.Device)
	s.Event = expandEnv(s.Event)
	s.Title = expandEnv(s.Title)
	s.CancelTitle = expandEnv(s.CancelTitle)
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Token returns the access token to use with s.
func Token(s *Settings, getenv func(string) string) (string, error) {
	if s != nil && s.AccessToken != "" {
		return s.AccessToken, nil
	}
	for _, name := range []string{EnvAccessToken, EnvParticleAccessToken} {
		if v := getenv(name); v != "" {
			return v, nil
		}
	}
	return "", ErrNoToken
}
