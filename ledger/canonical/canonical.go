// Package canonical renders JSON-like values in a key order independent form and digests them.
//
// The output is not JSON. Its only contract is that values equal by content, whatever their
// original key order, produce byte identical strings.
package canonical

import (
	"bytes"
	"crypto/sha1" //nolint:gosec // fingerprint only
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"
)

// ErrInvalidInput is returned by Digest for anything but a non-null object or array
var ErrInvalidInput = errors.New("canonical: digest input must be an object")

// UnsupportedTypeError is returned for values without a canonical form
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return "canonical: unsupported type " + e.Type
}

// Serialize renders v canonically.
// Arrays are [e1,e2]; objects are {<sorted key list as JSON>v1,v2,} with values in key order;
// strings, numbers and booleans are JSON literals.
func Serialize(v interface{}) (string, error) {
	var sb strings.Builder
	if err := write(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func write(sb *strings.Builder, v interface{}) error {
	switch x := v.(type) {
	case nil:
		return &UnsupportedTypeError{Type: "null"}
	case map[string]interface{}:
		return writeObject(sb, x)
	case []interface{}:
		return writeArray(sb, len(x), func(i int) interface{} { return x[i] })
	case json.Number:
		f, err := strconv.ParseFloat(x.String(), 64)
		if err != nil {
			return &UnsupportedTypeError{Type: "json.Number(" + x.String() + ")"}
		}
		return writeNumber(sb, f)
	case float64:
		return writeNumber(sb, x)
	case string, bool,
		float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return writeLiteral(sb, x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return &UnsupportedTypeError{Type: rv.Type().String()}
		}
		if rv.IsNil() {
			return &UnsupportedTypeError{Type: "null"}
		}
		m := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return writeObject(sb, m)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return &UnsupportedTypeError{Type: "null"}
		}
		return writeArray(sb, rv.Len(), func(i int) interface{} { return rv.Index(i).Interface() })
	case reflect.String:
		return writeLiteral(sb, rv.String())
	case reflect.Bool:
		return writeLiteral(sb, rv.Bool())
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return &UnsupportedTypeError{Type: "null"}
		}
		return write(sb, rv.Elem().Interface())
	default:
		return &UnsupportedTypeError{Type: rv.Kind().String()}
	}
}

func writeObject(sb *strings.Builder, m map[string]interface{}) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return lessUTF16(keys[i], keys[j]) })

	sb.WriteByte('{')
	list := make([]interface{}, len(keys))
	for i, k := range keys {
		list[i] = k
	}
	if err := writeJSON(sb, list); err != nil {
		return err
	}
	for _, k := range keys {
		if err := write(sb, m[k]); err != nil {
			return fmt.Errorf("%q: %w", k, err)
		}
		sb.WriteByte(',')
	}
	sb.WriteByte('}')
	return nil
}

func writeArray(sb *strings.Builder, n int, at func(int) interface{}) error {
	sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		if err := write(sb, at(i)); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	sb.WriteByte(']')
	return nil
}

// writeNumber spells numbers the way JavaScript does, so 12, 12.0 and 1.2e1 agree
func writeNumber(sb *strings.Builder, f float64) error {
	if f == 0 {
		f = 0 // -0
	}
	return writeJSON(sb, f)
}

// writeLiteral fails for NaN and infinities, which have no JSON form
func writeLiteral(sb *strings.Builder, v interface{}) error {
	return writeJSON(sb, v)
}

// writeJSON encodes without HTML escaping, matching what JSON producers in other runtimes emit
func writeJSON(sb *strings.Builder, v interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return &UnsupportedTypeError{Type: fmt.Sprintf("%T", v)}
	}
	sb.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return nil
}

// lessUTF16 orders strings by UTF-16 code units, the order sort() gives in JavaScript
func lessUTF16(a, b string) bool {
	ua, ub := utf16.Encode([]rune(a)), utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}
	return len(ua) < len(ub)
}

// Digest fingerprints v for the device identified by provider
func Digest(v interface{}, provider DeviceIDProvider) (string, error) {
	deviceID, err := provider.DeviceID()
	if err != nil {
		return "", err
	}
	return DigestWithDeviceID(v, deviceID)
}

// DigestWithDeviceID is hex(SHA1(hex(SHA1(Serialize(v))) + "+" + deviceID))
func DigestWithDeviceID(v interface{}, deviceID string) (string, error) {
	if !isObject(v) {
		return "", ErrInvalidInput
	}
	s, err := Serialize(v)
	if err != nil {
		return "", err
	}
	first := sha1.Sum([]byte(s))
	second := sha1.Sum([]byte(hex.EncodeToString(first[:]) + "+" + deviceID))
	return hex.EncodeToString(second[:]), nil
}

func isObject(v interface{}) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		return !rv.IsNil()
	case reflect.Array:
		return true
	case reflect.Ptr:
		return !rv.IsNil() && isObject(rv.Elem().Interface())
	default:
		return false
	}
}
