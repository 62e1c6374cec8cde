package rasqal

import "slices"

// sniffLimit caps how much content a recognizer sees, so a large
// document (say HTML with embedded examples) never costs a full scan.
const sniffLimit = 1024

// sniffInput carries the signals available to a format recognizer.
// Content is at most sniffLimit bytes and must not be modified.
type sniffInput struct {
	content    []byte
	identifier string
	suffix     string
	mimeType   string
}

// extractSuffix returns the lowercased filename suffix of identifier:
// the text after the final '.', accepted only if every character is
// alphanumeric. Anything else discards the suffix entirely.
func extractSuffix(identifier string) string {
	dot := -1
	for i := len(identifier) - 1; i >= 0; i-- {
		if identifier[i] == '.' {
			dot = i
			break
		}
	}
	if dot < 0 {
		return ""
	}
	suffix := []byte(identifier[dot+1:])
	for i, c := range suffix {
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
			suffix[i] = c - 'A' + 'a'
		default:
			return ""
		}
	}
	return string(suffix)
}

// GuessFormatName identifies the best-matching format for content from
// partial, possibly conflicting signals: a syntax URI, a MIME type, a
// content sample, and/or a content identifier (typically a filename or
// URI). It returns the canonical format name, or "" if nothing matched.
//
// An exact MIME match with quality 10 or an exact URI match selects a
// format outright. Otherwise every format is scored: the matched MIME
// quality plus the format's own recognition of the content sample and
// filename suffix, clamped to 10. The best score wins; ties go to the
// earlier-registered format.
func (w *World) GuessFormatName(uri, mimeType string, content []byte, identifier string) string {
	type syntaxScore struct {
		score  int
		format *Format
	}

	var suffix string
	if identifier != "" {
		suffix = extractSuffix(identifier)
	}
	bounded := content
	if len(bounded) > sniffLimit {
		bounded = bounded[:sniffLimit]
	}

	var chosen *Format
	scores := make([]syntaxScore, 0, len(w.formats))
	for _, fm := range w.formats {
		score := -1
		if mimeType != "" {
			for _, mt := range fm.desc.MimeTypes {
				if mt.Type == mimeType {
					score = mt.Q
					break
				}
			}
		}
		if score >= 10 {
			// Authoritative MIME match.
			chosen = fm
			break
		}
		if uri != "" && slices.Contains(fm.desc.URIs, uri) {
			chosen = fm
			break
		}
		if fm.recognize != nil {
			score += fm.recognize(fm, &sniffInput{
				content:    bounded,
				identifier: identifier,
				suffix:     suffix,
				mimeType:   mimeType,
			})
		}
		scores = append(scores, syntaxScore{score: min(score, 10), format: fm})
	}

	if chosen == nil {
		// Stable sort keeps registration order as the tie-break.
		slices.SortStableFunc(scores, func(a, b syntaxScore) int {
			return b.score - a.score
		})
		if len(scores) > 0 && scores[0].score >= 0 {
			chosen = scores[0].format
		}
	}
	if chosen == nil {
		return ""
	}
	return chosen.desc.Names[0]
}
