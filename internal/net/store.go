package net

import (
	"encoding/json"
	"fmt"
	"os"
)

// logisticRecord is the persisted shape of the linear model.
// The learning rate and penalty are optional on read and fall back
// to the package defaults when absent.
type logisticRecord struct {
	Type    Type      `json:"type"`
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
	LR      *float64  `json:"lr,omitempty"`
	L2      *float64  `json:"l2,omitempty"`
}

// stumpsRecord is the persisted shape of the boosted ensemble.
type stumpsRecord struct {
	Type   Type    `json:"type"`
	Rounds int     `json:"n_rounds"`
	Stumps []Stump `json:"stumps"`
}

// Encode serializes the network into its self-describing record.
func Encode(n Network) ([]byte, error) {
	switch m := n.(type) {
	case *LogisticModel:
		return json.Marshal(logisticRecord{
			Type:    Logistic,
			Weights: m.Weights,
			Bias:    m.Bias,
			LR:      &m.LR,
			L2:      &m.L2,
		})
	case *AdaBoostModel:
		return json.Marshal(stumpsRecord{
			Type:   AdaBoostStumps,
			Rounds: m.Rounds,
			Stumps: m.Stumps,
		})
	default:
		return nil, fmt.Errorf("unknown network type: %T", n)
	}
}

// Decode deserializes a record into the network variant named by its type
// tag. An unrecognized or missing tag is an error, never a silent
// misinterpretation of the record as the wrong variant.
func Decode(data []byte) (Network, error) {
	var head struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("could not read model record: %w", err)
	}

	switch head.Type {
	case Logistic:
		var record logisticRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("could not read %s record: %w", Logistic, err)
		}
		if record.Weights == nil {
			return nil, fmt.Errorf("incomplete %s record: no weights", Logistic)
		}
		m := NewLogistic(len(record.Weights))
		m.Weights = record.Weights
		m.Bias = record.Bias
		if record.LR != nil {
			m.LR = *record.LR
		}
		if record.L2 != nil {
			m.L2 = *record.L2
		}
		return m, nil
	case AdaBoostStumps:
		var record stumpsRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("could not read %s record: %w", AdaBoostStumps, err)
		}
		if record.Stumps == nil {
			return nil, fmt.Errorf("incomplete %s record: no stumps", AdaBoostStumps)
		}
		m := NewAdaBoost(record.Rounds)
		m.Stumps = record.Stumps
		return m, nil
	default:
		return nil, fmt.Errorf("unknown model type tag: '%s'", head.Type)
	}
}

// Save writes the network record to the given file.
func Save(path string, n Network) error {
	data, err := Encode(n)
	if err != nil {
		return fmt.Errorf("could not encode model: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write model to '%s': %w", path, err)
	}
	return nil
}

// Load reads a network record from the given file.
func Load(path string) (Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read model from '%s': %w", path, err)
	}
	return Decode(data)
}
