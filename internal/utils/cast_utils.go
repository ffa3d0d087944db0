package utils

import (
	"strconv"
	"strings"
)

func StrToInt(str string, defaultValue int) int {
	result, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return defaultValue
	}
	return result
}
