// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvKey and EnvToken are the environment variables CredentialsFromEnv
// reads.
const (
	EnvKey   = "TRELLO_KEY"
	EnvToken = "TRELLO_TOKEN"
)

// Credentials are the developer key and member token that authenticate
// every request.
type Credentials struct {
	Key   string `yaml:"key"`
	Token string `yaml:"token"`
}

// Validate checks that both credential parts are present.
func (credentials Credentials) Validate() error {
	var errs []error
	if credentials.Key == "" {
		errs = append(errs, fmt.Errorf("trello: credentials: key is required"))
	}
	if credentials.Token == "" {
		errs = append(errs, fmt.Errorf("trello: credentials: token is required"))
	}
	return errors.Join(errs...)
}

// LoadCredentials reads credentials from a YAML file with key and
// token fields.
func LoadCredentials(path string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("trello: reading credentials file: %w", err)
	}

	var credentials Credentials
	if err := yaml.Unmarshal(data, &credentials); err != nil {
		return Credentials{}, fmt.Errorf("trello: parsing credentials file %s: %w", path, err)
	}

	if err := credentials.Validate(); err != nil {
		return Credentials{}, err
	}
	return credentials, nil
}

// CredentialsFromEnv reads credentials from TRELLO_KEY and
// TRELLO_TOKEN. A .env file in the working directory supplies
// variables that are not already set; its absence is not an error.
func CredentialsFromEnv() (Credentials, error) {
	_ = godotenv.Load()

	credentials := Credentials{
		Key:   os.Getenv(EnvKey),
		Token: os.Getenv(EnvToken),
	}

	var missing []string
	if credentials.Key == "" {
		missing = append(missing, EnvKey)
	}
	if credentials.Token == "" {
		missing = append(missing, EnvToken)
	}
	if len(missing) > 0 {
		return Credentials{}, fmt.Errorf("trello: credentials not found in environment (set %s)", strings.Join(missing, " and "))
	}
	return credentials, nil
}
