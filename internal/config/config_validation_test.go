package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero ttl", mutate: func(c *StructuredConfig) { c.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "negative ttl", mutate: func(c *StructuredConfig) { c.App.TokenDuration = -1 }, wantErr: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "negative pool", mutate: func(c *StructuredConfig) { c.Storage.DB.MaxConns = -1 }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "relative prefix", mutate: func(c *StructuredConfig) { c.Server.APIPrefix = "api" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
