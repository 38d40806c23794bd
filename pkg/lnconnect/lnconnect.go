// Package lnconnect parses lightning node connection strings of the form
// "type=lnd-rest;server=https://host:8080/;macaroonhex=0201..;allowinsecure=true".
package lnconnect

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const TypeLNDRest = "lnd-rest"

var (
	ErrEmpty           = errors.New("empty connection string")
	ErrUnknownType     = errors.New("unknown connection type")
	ErrMissingServer   = errors.New("connection string has no server")
	ErrMissingMacaroon = errors.New("connection string has no macaroon")
)

// Settings is a parsed lightning node connection string.
type Settings struct {
	Type          string
	Server        *url.URL
	Macaroon      []byte
	MacaroonHex   string
	AllowInsecure bool
}

// Parse splits a semicolon separated key=value connection string into
// Settings. Keys are case-insensitive, unknown keys are rejected.
func Parse(raw string) (Settings, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Settings{}, ErrEmpty
	}

	var s Settings

	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return Settings{}, fmt.Errorf("malformed pair %q", part)
		}

		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "type":
			s.Type = strings.ToLower(value)
		case "server":
			u, err := url.Parse(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parse server url: %w", err)
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return Settings{}, fmt.Errorf("server url %q: scheme must be http or https", value)
			}
			s.Server = u
		case "macaroonhex":
			mac, err := hex.DecodeString(value)
			if err != nil {
				return Settings{}, fmt.Errorf("decode macaroon hex: %w", err)
			}
			s.Macaroon = mac
			s.MacaroonHex = strings.ToLower(value)
		case "allowinsecure":
			s.AllowInsecure = strings.EqualFold(value, "true")
		default:
			return Settings{}, fmt.Errorf("unknown key %q", key)
		}
	}

	if s.Type != TypeLNDRest {
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownType, s.Type)
	}
	if s.Server == nil {
		return Settings{}, ErrMissingServer
	}
	if len(s.Macaroon) == 0 {
		return Settings{}, ErrMissingMacaroon
	}
	if s.Server.Scheme == "http" && !s.AllowInsecure {
		return Settings{}, fmt.Errorf("server url %q is insecure, set allowinsecure=true to permit it", s.Server)
	}

	return s, nil
}
