package util

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const base64Marker = "base64,"

// StripBase64Prefix drops a data-URI header ("data:image/jpeg;base64,").
// Everything up to and including the last "base64," is removed.
func StripBase64Prefix(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndex(s, base64Marker); i >= 0 {
		return s[i+len(base64Marker):]
	}
	return s
}

func MakeDataURL(mime, b64 string) string {
	return "data:" + mime + ";" + base64Marker + b64
}

// DecodeBase64 принимает стандартный base64, без паддинга или URL-safe.
func DecodeBase64(s string) ([]byte, error) {
	s = StripBase64Prefix(s)
	b, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return b, nil
	}
	if b2, err2 := base64.RawStdEncoding.DecodeString(s); err2 == nil {
		return b2, nil
	}
	if b3, err3 := base64.URLEncoding.DecodeString(s); err3 == nil {
		return b3, nil
	}
	return nil, err
}

// PickMIME берём явный MIME, иначе детектим по байтам.
func PickMIME(explicit string, data []byte) string {
	if exp := strings.TrimSpace(explicit); exp != "" {
		return exp
	}
	if len(data) > 0 {
		if m := http.DetectContentType(data); strings.HasPrefix(m, "image/") {
			return m
		}
	}
	return "image/jpeg"
}
