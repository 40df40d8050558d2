package config

import (
	"encoding/json"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v3"
)

func TestSecretString_Marshal(t *testing.T) {
	tests := []struct {
		name     string
		input    SecretString
		wantJSON string
		wantYAML any
	}{
		{"empty", "", "null", nil},
		{"token", "Bearer abc", `"` + SecretStringValue + `"`, SecretStringValue},
		{"single char", "x", `"` + SecretStringValue + `"`, SecretStringValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(got) != tt.wantJSON {
				t.Errorf("MarshalJSON() = %s, want %s", got, tt.wantJSON)
			}

			y, err := tt.input.MarshalYAML()
			if err != nil {
				t.Fatalf("MarshalYAML() error = %v", err)
			}
			if y != tt.wantYAML {
				t.Errorf("MarshalYAML() = %v, want %v", y, tt.wantYAML)
			}
		})
	}
}

func TestSecretString_NoLeakage(t *testing.T) {
	const secret = "Bearer do-not-print-me"
	src := SourceConfig{CacheSize: 1, Concurrency: 1, Authorization: secret}

	j, err := json.Marshal(src)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	y, err := yaml.Marshal(src)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	for name, out := range map[string]string{"json": string(j), "yaml": string(y)} {
		if strings.Contains(out, "do-not-print-me") {
			t.Errorf("%s output leaked secret: %s", name, out)
		}
		if !strings.Contains(out, SecretStringValue) {
			t.Errorf("%s output does not contain mask: %s", name, out)
		}
	}
}
