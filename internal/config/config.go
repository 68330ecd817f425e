package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Infinity is the textual form of the point at infinity.
const Infinity = "inf"

// Config describes the curve y^2 = x^3 + a*x + b over the integers modulo
// Prime.
type Config struct {
	Prime uint64 `json:"prime"`
	A     uint64 `json:"a"`
	B     uint64 `json:"b"`
}

func GetDefaultConfig() *Config {
	return &Config{}
}

func (c *Config) VerifyRequired() error {
	if c.Prime == 0 {
		return errors.New("required prime missing")
	}
	return nil
}

func ConfigFromFile(configPath string) (*Config, error) {
	config := GetDefaultConfig()
	log.Debugf("ConfigPath=%s", configPath)
	f, err := os.Open(configPath)
	if err != nil {
		log.WithError(err).Error("OpenConfigFile")
		return nil, err
	}
	defer f.Close()

	err = json.NewDecoder(f).Decode(config)
	if err != nil {
		log.WithError(err).Error("DecodeConfig")
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	return config, nil
}

// ConfigFromJSON decodes a Config from raw JSON.
func ConfigFromJSON(data []byte) (*Config, error) {
	config := GetDefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	return config, nil
}

// Coefficients returns a and b as field elements.
func (c *Config) Coefficients() (a, b ecc.FieldElement, err error) {
	if err = c.VerifyRequired(); err != nil {
		return a, b, err
	}
	if a, err = ecc.NewFieldElement(c.A, c.Prime); err != nil {
		return a, b, err
	}
	b, err = ecc.NewFieldElement(c.B, c.Prime)
	return a, b, err
}

// ParsePoint parses "x,y" or "inf" into a point on the configured curve.
func (c *Config) ParsePoint(s string) (ecc.Point, error) {
	a, b, err := c.Coefficients()
	if err != nil {
		return ecc.Point{}, err
	}

	s = strings.TrimSpace(s)
	if strings.EqualFold(s, Infinity) {
		return ecc.Infinity(a, b)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return ecc.Point{}, fmt.Errorf("cannot parse point %q: want \"x,y\" or %q", s, Infinity)
	}
	x, err := c.parseElement(parts[0])
	if err != nil {
		return ecc.Point{}, err
	}
	y, err := c.parseElement(parts[1])
	if err != nil {
		return ecc.Point{}, err
	}
	return ecc.NewPoint(&x, &y, a, b)
}

// FormatPoint renders p in the form accepted by ParsePoint.
func FormatPoint(p ecc.Point) string {
	x, ok := p.X()
	if !ok {
		return Infinity
	}
	y, _ := p.Y()
	return fmt.Sprintf("%d,%d", x.Num(), y.Num())
}

func (c *Config) parseElement(s string) (ecc.FieldElement, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return ecc.FieldElement{}, fmt.Errorf("cannot parse coordinate %q: %w", s, err)
	}
	return ecc.NewFieldElement(n, c.Prime)
}
