// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// formatScalar renders decoded keyword value as plain inline text. Strings are
// returned as is, other scalars in their JSON spelling, composites as one-line JSON.
func formatScalar(value any) string {
	switch typed := value.(type) {
	case nil:
		return "null"
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case uint64:
		return strconv.FormatUint(typed, 10)
	case float32:
		return formatNumber(float64(typed))
	case float64:
		return formatNumber(typed)
	case time.Time:
		return typed.Format(time.RFC3339Nano)
	default:
		return mustJSONInline(value)
	}
}

// formatNumber renders float without exponent and trailing zeros.
func formatNumber(value float64) string {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}

// toFloat converts decoded numeric keyword value into float64.
func toFloat(value any) (float64, bool) {
	switch typed := value.(type) {
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case uint64:
		return float64(typed), true
	case float32:
		return float64(typed), true
	case float64:
		return typed, true
	case string:
		number, err := strconv.ParseFloat(typed, 64)
		if err != nil {
			return 0, false
		}

		return number, true
	default:
		return 0, false
	}
}

// mustJSONInline marshals value as single-line JSON text. HTML characters are
// kept verbatim.
func mustJSONInline(value any) string {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// quote renders text as JSON string literal.
func quote(text string) string {
	return mustJSONInline(text)
}

// FormatValue renders decoded keyword value (default, enum entry) as inline text.
func FormatValue(value any) string {
	return formatScalar(value)
}
