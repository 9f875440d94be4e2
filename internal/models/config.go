package models

import "strconv"

// BasicConfig is a loosely typed configuration block, as unmarshalled by
// viper for the `salesforce` section. Accessors report whether the key was
// present with a usable type.
type BasicConfig map[string]any

func (pc *BasicConfig) GetString(key string) (string, bool) {
	if pc == nil {
		return "", false
	}
	if value, ok := (*pc)[key]; ok {
		if strValue, ok := value.(string); ok {
			return strValue, true
		}
	}
	return "", false
}

func (pc *BasicConfig) GetStringWithDefault(key string, defaultValue string) string {
	if pc == nil {
		return defaultValue
	}
	if value, ok := (*pc)[key]; ok {
		if strValue, ok := value.(string); ok {
			return strValue
		}
	}
	return defaultValue
}

// GetBool accepts native booleans as well as string forms such as "true",
// since values bound from environment variables arrive as strings.
func (pc *BasicConfig) GetBool(key string) (bool, bool) {
	if pc == nil {
		return false, false
	}
	if value, ok := (*pc)[key]; ok {
		if boolValue, ok := value.(bool); ok {
			return boolValue, true
		}
		if stringValue, ok := value.(string); ok {
			if boolValue, err := strconv.ParseBool(stringValue); err == nil {
				return boolValue, true
			}
		}
	}
	return false, false
}

func (pc *BasicConfig) SetKeyWithValue(key string, value any) {
	if pc == nil {
		return
	}
	if *pc == nil {
		*pc = BasicConfig{}
	}
	(*pc)[key] = value
}

func (pc *BasicConfig) AsMap() map[string]any {
	if pc == nil {
		return map[string]any{}
	}
	return map[string]any(*pc)
}
