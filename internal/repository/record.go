package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"resume-relevance/internal/storage"

	"github.com/mitchellh/mapstructure"
)

// decodeRecord maps a raw store record onto a typed model. Records reloaded
// from disk carry float64 numbers and RFC3339 timestamp strings, so decoding
// is weakly typed with a string-to-time hook.
func decodeRecord[T any](rec storage.Record) (*T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return nil, fmt.Errorf("build record decoder: %w", err)
	}
	if err := dec.Decode(rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &out, nil
}

func decodeRecords[T any](recs []storage.Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		item, err := decodeRecord[T](rec)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, nil
}

// structToRecord flattens a model into the store's map shape. The store
// overwrites id and timestamps on Add, so leaving them in is harmless.
func structToRecord(v any) (storage.Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var rec storage.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode record fields: %w", err)
	}
	return rec, nil
}
