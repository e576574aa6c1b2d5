package primitive

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"propath/utils"
)

var (
	ErrNotPrimitive = errors.New("not a primitive type")
	ErrNotAllowed   = errors.New("conversion category is not allowed")
	ErrInvalidValue = errors.New("invalid value")
)

type convertFunc func(src reflect.Value, dst reflect.Type) (reflect.Value, error)

var (
	converters map[ConversionPair]convertFunc

	validator = reflect.TypeFor[interface{ IsValid() bool }]()
)

func init() {
	converters = map[ConversionPair]convertFunc{}

	// CategorySafeNumber
	// CategoryUnsafeNumber
	for fromKind := KindEnum(0); int(fromKind) < KindTotal; fromKind++ {
		if !fromKind.IsNumber() {
			continue
		}

		for toKind := KindEnum(0); int(toKind) < KindTotal; toKind++ {
			if toKind.IsNumber() {
				converters[ConversionPair{fromKind, toKind}] = castNumber
			}
		}
	}

	// CategoryTextNumber
	for numberKind := KindEnum(0); int(numberKind) < KindTotal; numberKind++ {
		switch {
		case numberKind.IsSigned():
			converters[ConversionPair{numberKind, KindString}] = formatSigned
			converters[ConversionPair{KindString, numberKind}] = parseSigned(numberKind.Bits())
		case numberKind.IsUnsigned():
			converters[ConversionPair{numberKind, KindString}] = formatUnsigned
			converters[ConversionPair{KindString, numberKind}] = parseUnsigned(numberKind.Bits())
		case numberKind.IsFloat():
			converters[ConversionPair{numberKind, KindString}] = formatFloat(numberKind.Bits())
			converters[ConversionPair{KindString, numberKind}] = parseFloat(numberKind.Bits())
		}
	}

	// CategoryNumericBool
	for fromKind := KindEnum(0); int(fromKind) < KindTotal; fromKind++ {
		if !fromKind.IsInteger() {
			continue
		}

		converters[ConversionPair{fromKind, KindBool}] = numberToBool
		converters[ConversionPair{KindBool, fromKind}] = boolToNumber
	}

	// CategoryTextualBool
	converters[ConversionPair{KindString, KindBool}] = textToBool
	converters[ConversionPair{KindBool, KindString}] = func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
		return reflect.ValueOf(strconv.FormatBool(src.Bool())).Convert(dst), nil
	}

	// CategoryDatetime
	converters[ConversionPair{KindString, KindTime}] = func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
		t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(src.String()))
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(t).Convert(dst), nil
	}
	converters[ConversionPair{KindTime, KindString}] = func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
		return reflect.ValueOf(asTime(src).Format(time.RFC3339Nano)).Convert(dst), nil
	}

	// CategoryTimestamp
	for numberKind := KindEnum(0); int(numberKind) < KindTotal; numberKind++ {
		if !numberKind.IsInteger() {
			continue
		}

		converters[ConversionPair{numberKind, KindTime}] = func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
			return reflect.ValueOf(time.Unix(src.Convert(int64Type).Int(), 0)).Convert(dst), nil
		}
		converters[ConversionPair{KindTime, numberKind}] = func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
			return reflect.ValueOf(asTime(src).Unix()).Convert(dst), nil
		}
	}

	// CategoryDuration
	converters[ConversionPair{KindString, KindDuration}] = func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
		d, err := time.ParseDuration(strings.TrimSpace(src.String()))
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(d).Convert(dst), nil
	}
	converters[ConversionPair{KindDuration, KindString}] = func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
		return reflect.ValueOf(time.Duration(src.Int()).String()).Convert(dst), nil
	}

	// CategoryNanoseconds
	for numberKind := KindEnum(0); int(numberKind) < KindTotal; numberKind++ {
		if !numberKind.IsInteger() {
			continue
		}

		converters[ConversionPair{numberKind, KindDuration}] = castNumber
		converters[ConversionPair{KindDuration, numberKind}] = castNumber
	}

	// CategorySeconds
	for _, floatKind := range []KindEnum{KindFloat32, KindFloat64} {
		converters[ConversionPair{floatKind, KindDuration}] = func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
			return reflect.ValueOf(time.Duration(src.Float() * float64(time.Second))).Convert(dst), nil
		}
		converters[ConversionPair{KindDuration, floatKind}] = func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
			return reflect.ValueOf(time.Duration(src.Int()).Seconds()).Convert(dst), nil
		}
	}
}

var int64Type = reflect.TypeFor[int64]()

// Convert converts src into a value of type dst when both are primitives
// and the pair of kinds is permitted by allowed. Values of the same kind
// are converted directly. A destination implementing IsValid() bool is
// validated after the conversion.
func Convert(src reflect.Value, dst reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	from, to := Of(src.Type()), Of(dst)
	if from == 0 || to == 0 {
		return reflect.Value{}, fmt.Errorf("%w: %s -> %s", ErrNotPrimitive, src.Type(), dst)
	}

	if (IsEnum(src.Type()) || IsEnum(dst)) && src.Type() != dst && allowed&CategoryEnumString == 0 {
		return reflect.Value{}, fmt.Errorf("%w: %s -> %s", ErrNotAllowed, src.Type(), dst)
	}

	var (
		res reflect.Value
		err error
	)

	if from == to {
		res = src.Convert(dst)
	} else {
		if !Allowed(from, to, allowed) {
			return reflect.Value{}, fmt.Errorf("%w: %s -> %s", ErrNotAllowed, from, to)
		}

		res, err = converters[ConversionPair{from, to}](src, dst)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %s -> %s: %w", ErrInvalidValue, src.Type(), dst, err)
		}
	}

	if dst.Implements(validator) && !res.Interface().(interface{ IsValid() bool }).IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %v is not a valid value for %s", ErrInvalidValue, res.Interface(), dst)
	}

	return res, nil
}

func castNumber(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	return src.Convert(dst), nil
}

func formatSigned(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	return reflect.ValueOf(strconv.FormatInt(src.Int(), 10)).Convert(dst), nil
}

func formatUnsigned(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	return reflect.ValueOf(strconv.FormatUint(src.Uint(), 10)).Convert(dst), nil
}

func formatFloat(bits int) convertFunc {
	return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
		return reflect.ValueOf(strconv.FormatFloat(src.Float(), 'f', -1, bits)).Convert(dst), nil
	}
}

func parseSigned(bits int) convertFunc {
	return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(src.String()), 10, bits)
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(n).Convert(dst), nil
	}
}

func parseUnsigned(bits int) convertFunc {
	return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
		n, err := strconv.ParseUint(strings.TrimSpace(src.String()), 10, bits)
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(n).Convert(dst), nil
	}
}

func parseFloat(bits int) convertFunc {
	return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(src.String()), bits)
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(f).Convert(dst), nil
	}
}

// 0, 1 - valid, other numbers is error
func numberToBool(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	n := src.Convert(int64Type).Int()
	if src.CanUint() && src.Uint() > 1 || !utils.IsInRange(0, n, 1) {
		return reflect.Value{}, fmt.Errorf("only numbers 0 and 1 are allowed for bool, got: %v", src.Interface())
	}

	return reflect.ValueOf(n == 1).Convert(dst), nil
}

func boolToNumber(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	n := 0
	if src.Bool() {
		n = 1
	}

	return reflect.ValueOf(n).Convert(dst), nil
}

func textToBool(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	switch strings.ToLower(strings.TrimSpace(src.String())) {
	default:
		return reflect.Value{}, fmt.Errorf("only strings true/false, yes/no, on/off are allowed for bool, got: %s", src.String())
	case "true", "yes", "on":
		return reflect.ValueOf(true).Convert(dst), nil
	case "false", "no", "off":
		return reflect.ValueOf(false).Convert(dst), nil
	}
}

func asTime(v reflect.Value) time.Time {
	return v.Convert(timeType).Interface().(time.Time)
}
