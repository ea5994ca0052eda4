package mapping

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"catalog-sync/core/catalog"
	"catalog-sync/core/utils"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var pkgLogger atomic.Pointer[zap.Logger]

// SetLogger sets the logger used for lenient-decoding warnings.
func SetLogger(l *zap.Logger) {
	pkgLogger.Store(l)
}

func log() *zap.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return zap.L()
}

// coercion converts a caller value. ok=false drops the field from the payload.
type coercion func(field string, raw any) (value any, ok bool, err error)

// Rule maps one generic field to its destination key.
type Rule struct {
	Field     string
	Key       string
	KeepEmpty bool
	coerce    coercion
}

// Rules is the field sync table, applied in order. sku is deliberately absent.
var Rules = []Rule{
	{Field: "name", Key: "name", coerce: asString},
	{Field: "price", Key: "price", coerce: asPrice},
	{Field: "brand", Key: "brand_name", coerce: asString},
	{Field: "description", Key: "description", coerce: asString},
	{Field: "mpn", Key: "mpn", coerce: asString},
	{Field: "upc", Key: "upc", coerce: asString},
	{Field: "gtin", Key: "gtin", coerce: asString},
	{Field: "weight", Key: "weight", coerce: asFloat},
	{Field: "width", Key: "width", coerce: asFloat},
	{Field: "height", Key: "height", coerce: asFloat},
	{Field: "depth", Key: "depth", coerce: asFloat},
	{Field: "availability", Key: "availability", coerce: asString},
	{Field: "visible", Key: "is_visible", KeepEmpty: true, coerce: asBool},
	{Field: "custom_fields", Key: "custom_fields", coerce: asStructure},
	{Field: "images", Key: "images", coerce: asStructure},
}

// UpdatePayload builds a partial update from the selected fields. Values
// missing for a selected field are skipped, as are values that coerce to
// empty (except booleans).
func UpdatePayload(sel Selection, values map[string]any) (catalog.Payload, error) {
	payload := catalog.Payload{}
	known := make(map[string]struct{}, len(Rules))

	for _, rule := range Rules {
		known[rule.Field] = struct{}{}
		if !sel.Has(rule.Field) {
			continue
		}
		raw, present := values[rule.Field]
		if !present {
			continue
		}
		value, ok, err := rule.coerce(rule.Field, raw)
		if err != nil {
			return nil, &FieldCoercionError{Field: rule.Field, Value: raw, Err: err}
		}
		if !ok && !rule.KeepEmpty {
			continue
		}
		payload[rule.Key] = value
	}

	for _, f := range sel.Fields() {
		if _, ok := known[f]; !ok {
			log().Debug("Ignoring unsyncable field", zap.String("field", f))
		}
	}

	return payload, nil
}

func asString(_ string, raw any) (any, bool, error) {
	s := utils.ToString(raw)
	return s, s != "", nil
}

func asPrice(_ string, raw any) (any, bool, error) {
	var d decimal.Decimal
	switch v := raw.(type) {
	case decimal.Decimal:
		d = v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false, fmt.Errorf("%v is not a finite number", v)
		}
		d = decimal.NewFromFloat(v)
	default:
		s := strings.TrimSpace(utils.ToString(raw))
		if s == "" {
			return nil, false, nil
		}
		parsed, err := decimal.NewFromString(s)
		if err != nil {
			return nil, false, err
		}
		d = parsed
	}
	return d.String(), true, nil
}

func asFloat(_ string, raw any) (any, bool, error) {
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		return nil, false, nil
	}
	f, err := utils.ToFloatE(raw)
	if err != nil {
		return nil, false, err
	}
	return f, f != 0, nil
}

func asBool(_ string, raw any) (any, bool, error) {
	b, err := utils.ToBoolE(raw)
	if err != nil {
		return nil, false, err
	}
	return b, b, nil
}

// asStructure decodes JSON text. Malformed text is passed through unchanged.
func asStructure(field string, raw any) (any, bool, error) {
	s, isText := raw.(string)
	if !isText {
		return raw, !isEmptyStructure(raw), nil
	}
	if strings.TrimSpace(s) == "" {
		return nil, false, nil
	}

	var decoded any
	if err := json.UnmarshalFromString(s, &decoded); err != nil {
		log().Warn("Field is not valid JSON, sending raw text",
			zap.String("field", field),
			zap.Error(err),
		)
		return s, true, nil
	}
	return decoded, !isEmptyStructure(decoded), nil
}

func isEmptyStructure(v any) bool {
	if v == nil {
		return true
	}
	if items, err := cast.ToSliceE(v); err == nil {
		return len(items) == 0
	}
	if m, err := cast.ToStringMapE(v); err == nil {
		return len(m) == 0
	}
	return false
}
