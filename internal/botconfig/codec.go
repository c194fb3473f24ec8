package botconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNotObject = errors.New("document is not an object")

// Marshal encodes cfg as the indented JSON document stored on disk.
func Marshal(cfg BotConfiguration) ([]byte, error) {
	return json.MarshalIndent(cfg, "", "  ")
}

// Unmarshal decodes a configuration document. Every section is decoded over
// its defaults, so absent sections and absent keys keep their default values.
// Unknown keys inside a section and unknown risk levels are errors.
func Unmarshal(data []byte) (BotConfiguration, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return BotConfiguration{}, fmt.Errorf("decode document: %w", err)
	}
	if doc == nil {
		return BotConfiguration{}, errNotObject
	}

	cfg := Default()

	sections := []struct {
		key string
		dst any
	}{
		{key: "trading", dst: &cfg.Trading},
		{key: "martingale", dst: &cfg.Martingale},
		{key: "risk_management", dst: &cfg.Risk},
		{key: "telegram", dst: &cfg.Notifications},
	}
	for _, s := range sections {
		raw, ok := doc[s.key]
		if !ok {
			continue
		}
		if err := decodeStrict(raw, s.dst); err != nil {
			return BotConfiguration{}, fmt.Errorf("decode %q: %w", s.key, err)
		}
	}

	if raw, ok := doc["risk_level"]; ok {
		var level string
		if err := json.Unmarshal(raw, &level); err != nil {
			return BotConfiguration{}, fmt.Errorf("decode %q: %w", "risk_level", err)
		}
		l, err := ParseRiskLevel(level)
		if err != nil {
			return BotConfiguration{}, err
		}
		cfg.RiskLevel = l
	}

	return cfg, nil
}

func decodeStrict(raw json.RawMessage, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
