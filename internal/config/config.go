// Package config resolves driver settings: defaults, then an optional .env
// file, then the process environment. Flags are applied by the commands.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/yourorg/healthproof/internal/logger"
	"github.com/yourorg/healthproof/pkg/proof"
)

const (
	EnvProofLatency  = "HEALTHPROOF_PROOF_LATENCY"
	EnvVerifyLatency = "HEALTHPROOF_VERIFY_LATENCY"
	EnvQRSize        = "HEALTHPROOF_QR_SIZE"
	EnvQRMargin      = "HEALTHPROOF_QR_MARGIN"
	EnvNetworkFeeWei = "HEALTHPROOF_NETWORK_FEE_WEI"
	EnvStrictPairing = "HEALTHPROOF_STRICT_PAIRING"
	EnvLogLevel      = "HEALTHPROOF_LOG_LEVEL"
	EnvLogFormat     = "HEALTHPROOF_LOG_FORMAT"
)

type Config struct {
	ProofLatency  time.Duration
	VerifyLatency time.Duration
	QRSize        int
	QRMargin      int
	NetworkFeeWei *big.Int
	StrictPairing bool
	Log           logger.Config
}

func Default() Config {
	return Config{
		ProofLatency:  1500 * time.Millisecond,
		VerifyLatency: 1000 * time.Millisecond,
		QRSize:        200,
		QRMargin:      2,
		NetworkFeeWei: new(big.Int).Set(proof.DefaultNetworkFee),
		Log: logger.Config{
			Level:  zerolog.InfoLevel,
			Format: logger.FormatConsole,
		},
	}
}

// Load reads envFile when it exists and overlays the environment on the
// defaults. A missing envFile is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv overlays the variables found by lookup on the defaults.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{EnvProofLatency, &cfg.ProofLatency},
		{EnvVerifyLatency, &cfg.VerifyLatency},
	}
	for _, d := range durations {
		if v, ok := lookup(d.key); ok {
			parsed, err := time.ParseDuration(v)
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", d.key, err)
			}
			if parsed < 0 {
				return Config{}, fmt.Errorf("%s: negative duration %s", d.key, v)
			}
			*d.dst = parsed
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvQRSize, &cfg.QRSize},
		{EnvQRMargin, &cfg.QRMargin},
	}
	for _, i := range ints {
		if v, ok := lookup(i.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", i.key, err)
			}
			*i.dst = n
		}
	}

	if v, ok := lookup(EnvNetworkFeeWei); ok {
		fee, ok := new(big.Int).SetString(v, 10)
		if !ok || fee.Sign() < 0 {
			return Config{}, fmt.Errorf("%s: invalid wei amount %q", EnvNetworkFeeWei, v)
		}
		cfg.NetworkFeeWei = fee
	}

	if v, ok := lookup(EnvStrictPairing); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvStrictPairing, err)
		}
		cfg.StrictPairing = b
	}

	if v, ok := lookup(EnvLogLevel); ok {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.Log.Level = lvl
	}
	if v, ok := lookup(EnvLogFormat); ok {
		f, err := logger.ParseFormat(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogFormat, err)
		}
		cfg.Log.Format = f
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.QRSize <= 0 {
		return fmt.Errorf("qr size must be positive, got %d", c.QRSize)
	}
	if c.QRMargin < 0 {
		return fmt.Errorf("qr margin must not be negative, got %d", c.QRMargin)
	}
	return nil
}
