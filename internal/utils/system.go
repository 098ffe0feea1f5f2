package utils

import (
	"fmt"
	"os"
	"os/user"
)

// GetUsername returns the name of the current user. When the user database
// cannot be read, as in some minimal containers, it falls back to $USER or
// %USERNAME%.
func GetUsername() (string, error) {
	u, err := user.Current()
	if err == nil && u.Username != "" {
		return u.Username, nil
	}
	for _, env := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(env); name != "" {
			return name, nil
		}
	}
	if err == nil {
		err = fmt.Errorf("empty username")
	}
	return "", fmt.Errorf("failed to determine current user: %w", err)
}

// GetHostname returns the system hostname.
func GetHostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("failed to get hostname: %w", err)
	}
	return name, nil
}
