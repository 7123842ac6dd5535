package utils

import (
	"strings"

	"timegrid/core/constants"

	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateEventID returns the random share id embedded in event URLs.
func GenerateEventID() string {
	id, err := gonanoid.Generate(idAlphabet, constants.EventIDLength)
	if err != nil {
		return ""
	}
	return id
}

// GenerateSlug builds a readable share slug from an event title, e.g.
// "Team Lunch!" -> "team-lunch-x8Kq". The nanoid suffix keeps slugs
// unique without a lookup.
func GenerateSlug(title string) string {
	base := slug.Make(title)
	if base == "" {
		base = "event"
	}
	suffix, err := gonanoid.Generate(idAlphabet, 4)
	if err != nil {
		return base
	}
	return strings.Join([]string{base, suffix}, "-")
}
