/*
Package fontlang handles the language side of font selection.

Font selection requests carry a prioritized list of BCP-47 language tags
("en-US,zh-Hans"). This package parses such lists, scores how well a font
family's declared language serves a requested one, and detects the system
locale for use as a default request.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontlang

import (
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces with key 'fontfall.lang'.
func tracer() tracing.Trace {
	return tracing.Select("fontfall.lang")
}

// ParseList parses a comma-separated list of BCP-47 tags into language tags,
// preserving order. Empty entries are dropped; malformed entries parse to
// their best-effort tag, as is usual for BCP-47 consumers.
func ParseList(spec string) []language.Tag {
	if spec == "" {
		return nil
	}
	parts := strings.Split(spec, ",")
	tags := make([]language.Tag, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, language.Make(p))
	}
	return tags
}

// Match scores how well a family's declared language serves a requested one,
// on a scale from 0 (unrelated) to 3 (exact). An undetermined tag on either
// side scores 0: no language information means no language preference.
func Match(requested, declared language.Tag) int {
	if requested == language.Und || declared == language.Und {
		return 0
	}
	return int(language.Comprehends(requested, declared))
}

// System returns the system locale as a BCP-47 tag string, falling back to
// "en-US" when the environment does not reveal one.
func System() string {
	locale, err := jj.DetectIETF()
	if err != nil || locale == "" {
		tracer().Infof("no system locale detected, defaulting to en-US")
		return "en-US"
	}
	tracer().Debugf("detected system locale %s", locale)
	return locale
}
