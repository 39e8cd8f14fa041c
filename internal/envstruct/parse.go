package envstruct

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var (
	ErrEnvNotSet    = errors.New("environment variable not set")
	ErrInvalidValue = errors.New("v must be a pointer to a struct")
)

//nolint:gochecknoglobals // reflect type used for comparison.
var durationType = reflect.TypeFor[time.Duration]()

// Populate populates the fields of the pointer to struct v with values from the environment.
//
// lookupEnv is used to look up environment variables. It has the same signature as [os.LookupEnv].
// Fields in the struct v must be tagged with `env:"ENV_VAR"` where ENV_VAR is the name of the environment variable.
// Supported field types are string, bool, int and [time.Duration].
//
// If no environment variable matching ENV_VAR is provided, the field must be tagged with default value
// `envDefault:"value"` or else ErrEnvNotSet is returned.
func Populate(v any, lookupEnv func(string) (string, bool)) error {
	return walk(v, lookupEnv, true)
}

// Overlay sets only the fields whose environment variable is set and leaves the rest untouched. Use it after
// reading a configuration file so that the environment keeps precedence over the file.
func Overlay(v any, lookupEnv func(string) (string, bool)) error {
	return walk(v, lookupEnv, false)
}

func walk(v any, lookupEnv func(string) (string, bool), useDefaults bool) error {
	ptrRef := reflect.ValueOf(v)
	if ptrRef.Kind() != reflect.Ptr {
		return fmt.Errorf("%w: not pointer: %v", ErrInvalidValue, v)
	}
	ref := ptrRef.Elem()
	if ref.Kind() != reflect.Struct {
		return fmt.Errorf("%w: not struct: %v", ErrInvalidValue, v)
	}

	refType := ref.Type()

	var errorList []error

	for i := range refType.NumField() {
		refField := ref.Field(i)
		refTypeField := refType.Field(i)
		tag := refTypeField.Tag

		envVarName, ok := tag.Lookup("env")
		if !ok {
			continue
		}
		if !refField.CanSet() {
			errorList = append(errorList, fmt.Errorf("%w: cannot set field: %s",
				ErrInvalidValue, refTypeField.Name))
			continue
		}
		if !supported(refField) {
			errorList = append(errorList, fmt.Errorf("%w: unsupported type - field: %s, type: %s, env: %s",
				ErrInvalidValue, refTypeField.Name, refField.Type().String(), envVarName))
			continue
		}

		val, found := lookupEnv(envVarName)
		if !found {
			if !useDefaults {
				continue
			}
			if val, found = tag.Lookup("envDefault"); !found {
				errorList = append(errorList, fmt.Errorf("%w: %s", ErrEnvNotSet, envVarName))
				continue
			}
		}

		if err := set(refField, val); err != nil {
			errorList = append(errorList, fmt.Errorf("%w: field: %s, env: %s: %w",
				ErrInvalidValue, refTypeField.Name, envVarName, err))
		}
	}

	// Join the errors into a single error.
	return errors.Join(errorList...)
}

func supported(field reflect.Value) bool {
	if field.Type() == durationType {
		return true
	}
	switch field.Kind() { //nolint:exhaustive // everything else is unsupported
	case reflect.String, reflect.Bool, reflect.Int:
		return true
	default:
		return false
	}
}

func set(field reflect.Value, val string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("parse duration: %w", err)
		}
		field.SetInt(int64(d))
		return nil
	}
	switch field.Kind() { //nolint:exhaustive // guarded by supported
	case reflect.Bool:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("parse bool: %w", err)
		}
		field.SetBool(b)
	case reflect.Int:
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("parse int: %w", err)
		}
		field.SetInt(int64(n))
	default:
		field.SetString(val)
	}
	return nil
}
