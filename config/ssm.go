package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ParameterGetter is the part of the SSM client used to read secrets.
type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NewSSMClient builds an SSM client from the default AWS credential chain.
func NewSSMClient(ctx context.Context) (*ssm.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("config: load aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// SSMParamKey is the variable naming the parameter that holds key's value.
func SSMParamKey(key string) string {
	return key + "_SSM_PARAM"
}

// ResolveSecret returns the value of key. When <key>_SSM_PARAM is set the
// value is read, decrypted, from that SSM parameter instead.
func ResolveSecret(ctx context.Context, config map[string]string, key string, getter ParameterGetter) (string, error) {
	param := GetString(config, SSMParamKey(key), "")
	if param == "" {
		return GetString(config, key, ""), nil
	}
	if getter == nil {
		return "", fmt.Errorf("config: %s is set but no SSM client is available", SSMParamKey(key))
	}

	out, err := getter.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(param),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("config: read ssm parameter %s: %w", param, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("config: ssm parameter %s has no value", param)
	}
	return aws.ToString(out.Parameter.Value), nil
}
