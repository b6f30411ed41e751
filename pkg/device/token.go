package device

import (
	"errors"
	"regexp"
)

var ErrMalformedToken = errors.New("push token carries no device id segment")

// Push tokens look like ExponentPushToken[xxxxxxxx]; the bracketed
// segment is the stable per-device identifier.
var tokenPattern = regexp.MustCompile(`\[(.*?)\]`)

func ExtractID(token string) (string, error) {
	match := tokenPattern.FindStringSubmatch(token)
	if match == nil || match[1] == "" {
		return "", ErrMalformedToken
	}
	return match[1], nil
}
