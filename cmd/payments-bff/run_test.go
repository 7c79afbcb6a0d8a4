package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/payments-bff/internal/pkg/config"
)

func TestLoadConfig_FlagsOverride(t *testing.T) {
	cfg, err := loadConfig(options{transport: "grpc", transportSet: true, addr: ":9999", addrSet: true})
	require.NoError(t, err)
	assert.Equal(t, config.TransportGRPC, cfg.Payment.Transport)
	assert.Equal(t, ":9999", cfg.HTTP.Addr)

	_, err = loadConfig(options{transport: "carrier-pigeon", transportSet: true})
	assert.Error(t, err)
}

func TestNewGateway(t *testing.T) {
	for _, transport := range []string{config.TransportHTTP, config.TransportGRPC} {
		t.Run(transport, func(t *testing.T) {
			cfg, err := loadConfig(options{transport: transport, transportSet: true})
			require.NoError(t, err)

			gw, closeGateway, err := newGateway(cfg)
			require.NoError(t, err)
			assert.Equal(t, transport, gw.Name())
			assert.NoError(t, closeGateway())
		})
	}
}

func TestNewPriceResolver_Memory(t *testing.T) {
	cfg, err := loadConfig(options{})
	require.NoError(t, err)

	prices, err := newPriceResolver(cfg)
	require.NoError(t, err)
	price, err := prices.Resolve(t.Context(), "12eb9101-6cd5-4378-8283-8924a64ddb05", "GBP")
	require.NoError(t, err)
	assert.Equal(t, int64(11), price)
}
