package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJSON serializa in com indentação, para logs de depuração
func PrettyJSON(in any) string {
	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return err.Error()
	}

	return string(buffer)
}
