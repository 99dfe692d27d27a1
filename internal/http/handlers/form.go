package handlers

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"
)

// dateLayouts are the date formats accepted from forms and JSON bodies.
var dateLayouts = []string{"2006-01-02", "2006-01-02T15:04", time.RFC3339}

// decodeInput fills dst from a urlencoded form or a JSON object, depending
// on the request content type. Empty values are treated as absent.
func decodeInput(w http.ResponseWriter, r *http.Request, dst any) error {
	values := map[string]any{}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := readJSON(w, r, &values); err != nil {
			return err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("failed to parse form: %w", err)
		}
		for k, v := range r.PostForm {
			if len(v) > 0 {
				values[k] = v[0]
			}
		}
	}

	for k, v := range values {
		if s, ok := v.(string); v == nil || ok && strings.TrimSpace(s) == "" {
			delete(values, k)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToDateHook,
			toDecimalHook,
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(values)
}

// parseDate returns the calendar day written in s as midnight UTC. Every
// date column stores a day, so any time of day is dropped.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func stringToDateHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(time.Time{}) || from.Kind() != reflect.String {
		return data, nil
	}
	return parseDate(data.(string))
}

func toDecimalHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(decimal.Decimal{}) {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return decimal.NewFromString(strings.TrimSpace(v))
	case fmt.Stringer:
		return decimal.NewFromString(v.String())
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	}
	return nil, errors.New("invalid decimal value")
}

// badInput answers 400 with a single validation entry describing a
// decoding failure.
func badInput(w http.ResponseWriter, err error) {
	_ = writeJSON(w, http.StatusBadRequest, []ValidationError{{Field: "", Description: err.Error()}})
}
