package internal

import (
	"encoding/json"
	"fmt"
	"os"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

type Secrets struct {
	Llm         LlmSecrets    `json:"llm"`
	Alpaca      AlpacaSecrets `json:"alpaca"`
	SES         SESSecrets    `json:"ses"`
	Db          DbSecrets     `json:"db"`
	Report      ReportSecrets `json:"report"`
	Jwt         string        `json:"jwt"`
	AdminEmails []string      `json:"adminEmails"`
}

// LlmSecrets points the narrative model at any OpenAI-compatible endpoint.
type LlmSecrets struct {
	ApiKey  string `json:"apiKey"`
	BaseUrl string `json:"baseUrl"`
	Model   string `json:"model"`
}

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
	Endpoint  string `json:"endpoint"`
}

type SESSecrets struct {
	Region    string `json:"region"`
	FromEmail string `json:"fromEmail"`
}

type DbSecrets struct {
	Path string `json:"path"`
}

// ReportSecrets locates the monthly report job config and the directory
// the institution flow CSVs are dropped in.
type ReportSecrets struct {
	ConfigPath string `json:"configPath"`
	FlowsDir   string `json:"flowsDir"`
}

func (t DbSecrets) ToDsn() string {
	// busy_timeout keeps concurrent request logging from tripping SQLITE_BUSY
	return fmt.Sprintf("file:%s?_busy_timeout=5000", t.Path)
}

func LoadSecrets() (*Secrets, error) {
	secretsFile := "/go/src/app/secrets.json"
	if os.Getenv("FUNDTRACKER_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("FUNDTRACKER_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open secrets.json: %w", err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}

	return &secrets, nil
}
