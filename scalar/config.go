package scalar

import (
	"errors"
	"fmt"
	"io"

	"git.gammaspectra.live/P2Pool/zkn/scalar/aes"
	"git.gammaspectra.live/P2Pool/zkn/utils"
)

var ErrInvalidXLen = errors.New("xlen must be 32 or 64")

// Config is fixed for the lifetime of a Core
type Config struct {
	// XLen register width in bits, 32 or 64
	XLen int `json:"xlen"`
	// SBox AES byte substitution implementation, "table" or "algebraic"
	SBox aes.SBoxMode `json:"sbox"`
}

func DefaultConfig() Config {
	return Config{
		XLen: 64,
		SBox: aes.SBoxTable,
	}
}

func (c Config) Verify() error {
	if c.XLen != 32 && c.XLen != 64 {
		return fmt.Errorf("%w, got %d", ErrInvalidXLen, c.XLen)
	}
	if _, err := c.SBox.Func(); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads a JSON configuration. Missing fields keep their DefaultConfig value.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := utils.NewJSONDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}
	if err := cfg.Verify(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
