package creds

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Credentials authenticate build-trigger calls to the Jenkins instance.
type Credentials struct {
	User     string
	Password string
}

// Options describes where credentials may come from, in priority order:
// explicit flag values, then the environment, then an optional TOML
// credentials file.
type Options struct {
	User     string
	Password string
	// File is an optional path to a TOML file with `user` and `password`
	// keys, consulted only for values the flags and environment left
	// blank.
	File string
}

// ErrMissing is returned when resolution finishes with an incomplete
// user/password pair.
var ErrMissing = errors.New("jenkins credentials missing: set --user/--password or JENKINS_USER/JENKINS_PASSWORD")

type fileCreds struct {
	User     string `toml:"user"`
	Password string `toml:"password"`
}

// Resolve produces a complete credential pair from the given options or
// fails with ErrMissing.
func Resolve(opts Options) (Credentials, error) {
	c := Credentials{User: opts.User, Password: opts.Password}

	if c.User == "" {
		c.User = os.Getenv("JENKINS_USER")
	}
	if c.Password == "" {
		c.Password = os.Getenv("JENKINS_PASSWORD")
	}

	if opts.File != "" && (c.User == "" || c.Password == "") {
		fc, err := loadFile(opts.File)
		if err != nil {
			return c, err
		}
		if c.User == "" {
			c.User = fc.User
		}
		if c.Password == "" {
			c.Password = fc.Password
		}
	}

	if c.User == "" || c.Password == "" {
		return c, ErrMissing
	}
	return c, nil
}

func loadFile(path string) (fileCreds, error) {
	var fc fileCreds

	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("reading credentials file: %w", err)
	}

	if _, err := toml.Decode(string(data), &fc); err != nil {
		return fc, fmt.Errorf("parsing credentials file: %w", err)
	}
	return fc, nil
}
