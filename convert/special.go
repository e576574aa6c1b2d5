package convert

import (
	"encoding"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"propath/options"
)

var (
	decimalType         = reflect.TypeFor[decimal.Decimal]()
	uuidType            = reflect.TypeFor[uuid.UUID]()
	bytesType           = reflect.TypeFor[[]byte]()
	stringerType        = reflect.TypeFor[fmt.Stringer]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// special handles decimal.Decimal and uuid.UUID on either side.
func (m *Manager) special(src reflect.Value, dst reflect.Type) (reflect.Value, bool, error) {
	switch {
	case dst == decimalType && m.categories.Has(options.CategoryDecimal):
		d, ok, err := toDecimal(src)
		if !ok {
			return reflect.Value{}, false, nil
		}

		return reflect.ValueOf(d), true, err

	case src.Type() == decimalType && m.categories.Has(options.CategoryDecimal):
		return fromDecimal(src.Interface().(decimal.Decimal), dst)

	case dst == uuidType && m.categories.Has(options.CategoryUUID):
		u, ok, err := toUUID(src)
		if !ok {
			return reflect.Value{}, false, nil
		}

		return reflect.ValueOf(u), true, err

	case src.Type() == uuidType && m.categories.Has(options.CategoryUUID):
		u := src.Interface().(uuid.UUID)

		switch {
		case dst.Kind() == reflect.String:
			return reflect.ValueOf(u.String()).Convert(dst), true, nil
		case dst == bytesType:
			return reflect.ValueOf(append([]byte(nil), u[:]...)), true, nil
		}
	}

	return reflect.Value{}, false, nil
}

func toDecimal(src reflect.Value) (decimal.Decimal, bool, error) {
	switch {
	case src.CanInt():
		return decimal.NewFromInt(src.Int()), true, nil
	case src.CanUint():
		return decimal.NewFromBigInt(new(big.Int).SetUint64(src.Uint()), 0), true, nil
	case src.CanFloat():
		return decimal.NewFromFloat(src.Float()), true, nil
	case src.Kind() == reflect.String:
		d, err := decimal.NewFromString(strings.TrimSpace(src.String()))
		return d, true, err
	}

	return decimal.Decimal{}, false, nil
}

func fromDecimal(d decimal.Decimal, dst reflect.Type) (reflect.Value, bool, error) {
	switch dst.Kind() {
	case reflect.String:
		return reflect.ValueOf(d.String()).Convert(dst), true, nil
	case reflect.Float32, reflect.Float64:
		return reflect.ValueOf(d.InexactFloat64()).Convert(dst), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !d.IsInteger() {
			return reflect.Value{}, true, fmt.Errorf("%w: %s is not an integer", ErrTypeConversion, d)
		}

		if d.IsNegative() && dst.Kind() >= reflect.Uint {
			return reflect.Value{}, true, fmt.Errorf("%w: %s is negative", ErrTypeConversion, d)
		}

		return reflect.ValueOf(d.IntPart()).Convert(dst), true, nil
	}

	return reflect.Value{}, false, nil
}

func toUUID(src reflect.Value) (uuid.UUID, bool, error) {
	switch {
	case src.Kind() == reflect.String:
		u, err := uuid.Parse(strings.TrimSpace(src.String()))
		return u, true, err
	case src.Type() == bytesType:
		u, err := uuid.FromBytes(src.Bytes())
		return u, true, err
	case src.Kind() == reflect.Array && src.Type().ConvertibleTo(uuidType):
		return src.Convert(uuidType).Interface().(uuid.UUID), true, nil
	}

	return uuid.UUID{}, false, nil
}

// text converts strings into encoding.TextUnmarshaler implementations and
// fmt.Stringer or encoding.TextMarshaler implementations into strings.
func (m *Manager) text(src reflect.Value, dst reflect.Type) (reflect.Value, bool, error) {
	if !m.categories.Has(options.CategoryText) {
		return reflect.Value{}, false, nil
	}

	if src.Kind() == reflect.String && reflect.PointerTo(dst).Implements(textUnmarshalerType) {
		out := reflect.New(dst)
		if err := out.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(src.String())); err != nil {
			return reflect.Value{}, true, err
		}

		return out.Elem(), true, nil
	}

	if dst.Kind() != reflect.String {
		return reflect.Value{}, false, nil
	}

	switch {
	case src.Type().Implements(textMarshalerType):
		text, err := src.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return reflect.Value{}, true, err
		}

		return reflect.ValueOf(string(text)).Convert(dst), true, nil

	case src.Type().Implements(stringerType):
		return reflect.ValueOf(src.Interface().(fmt.Stringer).String()).Convert(dst), true, nil
	}

	return reflect.Value{}, false, nil
}
