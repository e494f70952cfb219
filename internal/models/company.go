package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrMalformedCompany = errors.New("malformed company record")

// Company is one company's quote snapshot. Only Symbol is part of the
// contract; every other provider field is carried in Fields and stored
// inline at the top level of the document.
type Company struct {
	Id     primitive.ObjectID `bson:"_id,omitempty"`
	Symbol string             `bson:"symbol"`
	Fields bson.M             `bson:",inline"`
}

// UnmarshalJSON accepts one element of the upstream tops array.
func (c *Company) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCompany, err)
	}
	if raw == nil {
		return fmt.Errorf("%w: null element", ErrMalformedCompany)
	}

	symbol, ok := raw["symbol"].(string)
	if !ok || symbol == "" {
		return fmt.Errorf("%w: missing symbol", ErrMalformedCompany)
	}
	delete(raw, "symbol")
	// never let the provider pick our ids
	delete(raw, "_id")

	fields := make(bson.M, len(raw))
	for k, v := range raw {
		fields[k] = normalizeNumbers(v)
	}

	c.Symbol = symbol
	c.Fields = fields
	return nil
}

// MarshalJSON flattens Fields back next to symbol, the shape the provider
// sent.
func (c Company) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Fields)+2)
	for k, v := range c.Fields {
		out[k] = v
	}
	out["symbol"] = c.Symbol
	if !c.Id.IsZero() {
		out["id"] = c.Id.Hex()
	}
	return json.Marshal(out)
}

// normalizeNumbers turns json.Number into int64 when integral, float64
// otherwise, so numbers are stored as BSON numbers rather than strings.
func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		for k, inner := range val {
			val[k] = normalizeNumbers(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = normalizeNumbers(inner)
		}
		return val
	default:
		return v
	}
}

// DecodeCompanies parses the upstream response body: a JSON array of
// company objects. Anything else, or any malformed element, is an error.
func DecodeCompanies(body []byte) ([]Company, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformedCompany)
	}

	var companies []Company
	if err := json.Unmarshal(trimmed, &companies); err != nil {
		if errors.Is(err, ErrMalformedCompany) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return companies, nil
}
