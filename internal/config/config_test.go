package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Dataset:   Dataset{Source: DatasetSourcePostgres},
		Analytics: Analytics{DominanceThreshold: 0.5, TopDecileFraction: 0.1},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:   "Configuração padrão é válida",
			mutate: func(c *Config) {},
		},
		{
			name: "Fonte em arquivo com caminho",
			mutate: func(c *Config) {
				c.Dataset.Source = DatasetSourceFile
				c.Dataset.Path = "data/dataset.json"
			},
		},
		{
			name: "Fonte em arquivo sem caminho",
			mutate: func(c *Config) {
				c.Dataset.Source = DatasetSourceFile
			},
			wantErr: true,
		},
		{
			name: "Fonte desconhecida",
			mutate: func(c *Config) {
				c.Dataset.Source = "s3"
			},
			wantErr: true,
		},
		{
			name: "Limite de dominância zerado",
			mutate: func(c *Config) {
				c.Analytics.DominanceThreshold = 0
			},
			wantErr: true,
		},
		{
			name: "Fração do decil acima de 1",
			mutate: func(c *Config) {
				c.Analytics.TopDecileFraction = 1.5
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
