package model

import "encoding/json"

func marshalQuoted(s string) ([]byte, error) { return json.Marshal(s) }

func unmarshalQuoted(b []byte) (string, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", err
	}
	return s, nil
}

func marshalPair(a, b string) ([]byte, error) {
	return json.Marshal([2]string{a, b})
}

func unmarshalPair(raw []byte) (string, string, error) {
	var pair [2]string
	if err := json.Unmarshal(raw, &pair); err != nil {
		return "", "", err
	}
	return pair[0], pair[1], nil
}
