package sndprobe

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hadi77ir/go-sndprobe/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "10.0.0.2:1234", cfg.LocalAddr)
	require.Equal(t, "10.0.0.8:1235", cfg.RemoteAddr)
	require.Equal(t, 1316, cfg.PacketSize)
	require.Equal(t, 20000, cfg.RequestedSendBuffer)
	require.Equal(t, 199, cfg.PacketCount)
	require.False(t, cfg.ForceSendBuffer)
	require.Zero(t, cfg.Timeout)
}

func TestConfigValidate(t *testing.T) {
	var tooMany uint64 = math.MaxUint32 + 1
	for _, tc := range []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{"tcp network", func(c *Config) { c.Network = "tcp" }, types.ErrUnknownNetwork},
		{"missing local", func(c *Config) { c.LocalAddr = "" }, types.ErrMissingAddr},
		{"missing remote", func(c *Config) { c.RemoteAddr = "" }, types.ErrMissingAddr},
		{"packet too small", func(c *Config) { c.PacketSize = 3 }, types.ErrInvalidPacketSize},
		{"no packets", func(c *Config) { c.PacketCount = 0 }, types.ErrInvalidPacketCount},
		{"too many packets", func(c *Config) { c.PacketCount = int(tooMany) }, types.ErrInvalidPacketCount},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			require.ErrorIs(t, cfg.Validate(), tc.err)
		})
	}

	cfg := DefaultConfig()
	cfg.Timeout = -time.Second
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.RequestedSendBuffer = -1
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Network = ""
	cfg.PacketSize = seqLen
	require.NoError(t, cfg.Validate())
}
