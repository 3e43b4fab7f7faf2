package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

type Secrets struct {
	Alpaca AlpacaSecrets `json:"alpaca"`
}

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
	Endpoint  string `json:"endpoint"`
}

func (a AlpacaSecrets) Configured() bool {
	return a.ApiKey != "" && a.ApiSecret != ""
}

// LoadSecrets reads the optional secrets file, then lets env vars win. Yahoo
// needs no credentials, so an empty config is a working config.
func LoadSecrets() (*Secrets, error) {
	// best effort - a missing .env just means plain process env
	_ = godotenv.Load()

	secrets := Secrets{}

	secretsFile := "secrets.json"
	if os.Getenv("STOCKHEALTH_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	}
	if f, err := os.ReadFile(secretsFile); err == nil {
		if err := json.Unmarshal(f, &secrets); err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", secretsFile, err)
		}
	}

	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		secrets.Alpaca.ApiKey = v
	}
	if v := os.Getenv("ALPACA_API_SECRET"); v != "" {
		secrets.Alpaca.ApiSecret = v
	}
	if v := os.Getenv("ALPACA_ENDPOINT"); v != "" {
		secrets.Alpaca.Endpoint = v
	}

	return &secrets, nil
}
