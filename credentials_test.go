// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearCredentialEnv unsets the credential variables for the duration
// of the test. t.Setenv registers the restore; the explicit unset is
// what actually clears inherited values.
func clearCredentialEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvKey, EnvToken} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoadCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	contents := "key: k3y\ntoken: t0ken\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	credentials, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("LoadCredentials: %v", err)
	}
	if credentials.Key != "k3y" || credentials.Token != "t0ken" {
		t.Errorf("credentials = %+v, want key k3y and token t0ken", credentials)
	}
}

func TestLoadCredentialsRejectsIncompleteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	if err := os.WriteFile(path, []byte("key: k3y\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := LoadCredentials(path)
	if err == nil {
		t.Fatal("LoadCredentials accepted a file without a token")
	}
	if !strings.Contains(err.Error(), "token is required") {
		t.Errorf("error = %q, want mention of the missing token", err)
	}
}

func TestLoadCredentialsMissingFile(t *testing.T) {
	_, err := LoadCredentials(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	if err == nil {
		t.Fatal("LoadCredentials succeeded on a missing file")
	}
}

func TestCredentialsValidate(t *testing.T) {
	err := Credentials{}.Validate()
	if err == nil {
		t.Fatal("empty credentials validated")
	}
	if !strings.Contains(err.Error(), "key is required") || !strings.Contains(err.Error(), "token is required") {
		t.Errorf("error = %q, want both missing parts named", err)
	}

	if err := (Credentials{Key: "k", Token: "t"}).Validate(); err != nil {
		t.Errorf("complete credentials failed validation: %v", err)
	}
}

// chdir changes into dir for the duration of the test, standing in for
// t.Chdir on toolchains older than Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestCredentialsFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvKey, "envkey")
	t.Setenv(EnvToken, "envtoken")

	credentials, err := CredentialsFromEnv()
	if err != nil {
		t.Fatalf("CredentialsFromEnv: %v", err)
	}
	if credentials.Key != "envkey" || credentials.Token != "envtoken" {
		t.Errorf("credentials = %+v, want the environment values", credentials)
	}
}

func TestCredentialsFromEnvMissing(t *testing.T) {
	chdir(t, t.TempDir())
	clearCredentialEnv(t)

	_, err := CredentialsFromEnv()
	if err == nil {
		t.Fatal("CredentialsFromEnv succeeded with nothing set")
	}
	if !strings.Contains(err.Error(), EnvKey) || !strings.Contains(err.Error(), EnvToken) {
		t.Errorf("error = %q, want both variable names", err)
	}
}

func TestCredentialsFromEnvReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := "TRELLO_KEY=dotkey\nTRELLO_TOKEN=dottoken\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	chdir(t, dir)
	clearCredentialEnv(t)

	credentials, err := CredentialsFromEnv()
	if err != nil {
		t.Fatalf("CredentialsFromEnv: %v", err)
	}
	if credentials.Key != "dotkey" || credentials.Token != "dottoken" {
		t.Errorf("credentials = %+v, want the .env values", credentials)
	}
}
