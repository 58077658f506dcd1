package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/joho/godotenv"
)

// GetEnv loads the .env file (if any) and populates Config from the
// environment. Fields with an envDefault tag fall back to the default when
// the variable is unset; fields without one are required.
func GetEnv() (config *Config, er error) {
	err := godotenv.Load()
	if err != nil {
		_ = godotenv.Load("../../.env")
	}

	config = &Config{}
	v := reflect.ValueOf(config).Elem()
	t := v.Type()

	for i := range make([]struct{}, v.NumField()) {
		field := t.Field(i)
		envTag := field.Tag.Get("env")

		if envTag != "" {
			value, exists := os.LookupEnv(envTag)
			if !exists {
				defaultValue, hasDefault := field.Tag.Lookup("envDefault")
				if !hasDefault {
					er = fmt.Errorf("environment variable %s not set", envTag)
					return nil, er
				}
				value = defaultValue
			}

			switch field.Type.Kind() {
			case reflect.String:
				v.Field(i).SetString(value)
			case reflect.Int:
				intValue, err := strconv.Atoi(value)
				if err != nil {
					er = fmt.Errorf("invalid value for %s: %v", envTag, err)
					return nil, er
				}
				v.Field(i).SetInt(int64(intValue))
			case reflect.Bool:
				boolValue, err := strconv.ParseBool(value)
				if err != nil {
					er = fmt.Errorf("invalid boolean value for %s: %v", envTag, err)
					return nil, er
				}
				v.Field(i).SetBool(boolValue)
			default:
				panic("unhandled default case")
			}
		}
	}

	if !config.AppEnv.IsValid() {
		return nil, fmt.Errorf("invalid value for APP_ENV: %q", config.AppEnv)
	}

	return config, nil
}
