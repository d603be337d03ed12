package url

import (
	"net/url"
	"strconv"
)

func ParseInt(name string, values url.Values, result *int) (err error) {
	intStr := values.Get(name)
	if intStr != "" {
		*result, err = strconv.Atoi(intStr)
		return err
	}
	return
}

func ParseBool(name string, values url.Values, result *bool) (err error) {
	boolStr := values.Get(name)
	if boolStr != "" {
		*result, err = strconv.ParseBool(boolStr)
		return err
	}
	return
}

func ParseString(name string, values url.Values, result *string) {
	if str := values.Get(name); str != "" {
		*result = str
	}
}

// ParseSeed leaves present false when the parameter is absent.
func ParseSeed(name string, values url.Values, result *uint32, present *bool) error {
	seedStr := values.Get(name)
	if seedStr == "" {
		return nil
	}
	seed, err := strconv.ParseUint(seedStr, 0, 32)
	if err != nil {
		return err
	}
	*result, *present = uint32(seed), true
	return nil
}
