package devops

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ServiceConfig is the deployed service configuration, stored as a YAML
// payload in SSM Parameter Store.
type ServiceConfig struct {
	DSN           string `yaml:"dsn"`
	SigningSecret string `yaml:"signingSecret"`
	PhotoBucket   string `yaml:"photoBucket"`
	Addr          string `yaml:"addr"`
}

var (
	once    sync.Once
	svcCfg  ServiceConfig
	loadErr error
)

// LoadServiceConfig reads the "attendo" SSM parameter once per process. Local
// development bypasses SSM entirely by setting DSN in the environment
// (typically via a .env file).
func LoadServiceConfig(ctx context.Context) (ServiceConfig, error) {
	once.Do(func() {
		if dsn := os.Getenv("DSN"); dsn != "" {
			svcCfg = ServiceConfig{
				DSN:           dsn,
				SigningSecret: os.Getenv("ATTENDO_SIGNING_SECRET"),
				PhotoBucket:   os.Getenv("ATTENDO_PHOTO_BUCKET"),
				Addr:          os.Getenv("ATTENDO_ADDR"),
			}
			return
		}

		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			loadErr = fmt.Errorf("load aws config: %w", err)
			return
		}

		client := ssm.NewFromConfig(cfg)

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String("attendo"),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}

		var parsed ServiceConfig
		if err := yaml.Unmarshal([]byte(*out.Parameter.Value), &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		svcCfg = parsed
	})

	if svcCfg.Addr == "" {
		svcCfg.Addr = "0.0.0.0:8090"
	}

	return svcCfg, loadErr
}
