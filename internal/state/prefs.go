package state

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kallmejoe/Pulseyapp/internal/store"
)

// Display preferences. Pure presentation state stored as raw strings beside
// the domain documents; the core never reads them back.

var preferenceValues = map[string][]string{
	"theme":          {"light", "dark"},
	"colorTheme":     {"rhythm", "energy", "chill", "focus"},
	"animationLevel": {"minimal", "moderate", "full"},
	"visualsMode":    {"on", "off"},
}

var preferenceDefaults = map[string]string{
	"theme":          "light",
	"colorTheme":     "rhythm",
	"animationLevel": "moderate",
	"visualsMode":    "off",
}

func PreferenceKeys() []string {
	keys := make([]string, 0, len(preferenceValues))
	for key := range preferenceValues {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func SetPreference(kv *store.Store, key, value string) error {
	allowed, ok := preferenceValues[key]
	if !ok {
		return fmt.Errorf("unknown preference %q (valid: %s)", key, strings.Join(PreferenceKeys(), ", "))
	}
	for _, v := range allowed {
		if v == value {
			return kv.Set(key, value)
		}
	}
	return fmt.Errorf("invalid %s value %q (valid: %s)", key, value, strings.Join(allowed, ", "))
}

// GetPreference returns the stored value, or the documented default when the
// key has never been set.
func GetPreference(kv *store.Store, key string) (string, error) {
	fallback, ok := preferenceDefaults[key]
	if !ok {
		return "", fmt.Errorf("unknown preference %q (valid: %s)", key, strings.Join(PreferenceKeys(), ", "))
	}
	value, found, err := kv.Get(key)
	if err != nil {
		return "", err
	}
	if !found {
		return fallback, nil
	}
	return value, nil
}

func ListPreferences(kv *store.Store) (map[string]string, error) {
	out := make(map[string]string, len(preferenceDefaults))
	for key := range preferenceDefaults {
		value, err := GetPreference(kv, key)
		if err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, nil
}
