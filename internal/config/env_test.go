package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("LAUNDRY_TEST_SET", "value")
	if got := GetEnv("LAUNDRY_TEST_SET", "fb"); got != "value" {
		t.Fatalf("GetEnv set = %q, want value", got)
	}
	if got := GetEnv("LAUNDRY_TEST_UNSET_XYZ", "fb"); got != "fb" {
		t.Fatalf("GetEnv unset = %q, want fb", got)
	}
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("LAUNDRY_TEST_INT", "42")
	t.Setenv("LAUNDRY_TEST_FLOAT", "0.25")
	t.Setenv("LAUNDRY_TEST_DUR", "16ms")
	t.Setenv("LAUNDRY_TEST_I64", "-7")

	n, err := GetEnvInt("LAUNDRY_TEST_INT", 1)
	if err != nil || n != 42 {
		t.Fatalf("GetEnvInt = %d, %v", n, err)
	}
	f, err := GetEnvFloat("LAUNDRY_TEST_FLOAT", 1)
	if err != nil || f != 0.25 {
		t.Fatalf("GetEnvFloat = %f, %v", f, err)
	}
	d, err := GetEnvDuration("LAUNDRY_TEST_DUR", time.Second)
	if err != nil || d != 16*time.Millisecond {
		t.Fatalf("GetEnvDuration = %v, %v", d, err)
	}
	i, err := GetEnvInt64("LAUNDRY_TEST_I64", 0)
	if err != nil || i != -7 {
		t.Fatalf("GetEnvInt64 = %d, %v", i, err)
	}
}

func TestTypedGetterErrorKeepsFallback(t *testing.T) {
	t.Setenv("LAUNDRY_TEST_BAD", "twelve")
	n, err := GetEnvInt("LAUNDRY_TEST_BAD", 3)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if n != 3 {
		t.Fatalf("fallback = %d, want 3", n)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("LAUNDRY_TEST_DOTENV=loaded\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("LAUNDRY_TEST_DOTENV") })

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("LAUNDRY_TEST_DOTENV"); got != "loaded" {
		t.Fatalf("LAUNDRY_TEST_DOTENV = %q, want loaded", got)
	}
}
