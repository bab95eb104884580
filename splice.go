package main

import "strings"

const baseSectionName = "base"

// sectionKey names the README section that holds the help output for
// subcommand. The empty subcommand is the top-level command.
func sectionKey(subcommand string) string {
	if subcommand == "" {
		subcommand = baseSectionName
	}
	return subcommand + "-command-help"
}

// sectionMarkers returns the start and end marker lines for key.
func sectionMarkers(key string) (start, end string) {
	return "<!-- START_SECTION:" + key + " -->", "<!-- END_SECTION:" + key + " -->"
}

func fenceBlock(snapshot string) string {
	return "\n```\n" + snapshot + "\n```\n"
}

// spliceSection replaces everything between the markers for key with a
// fenced copy of snapshot. The markers themselves are kept verbatim. The
// replacement is all or nothing: unless both a start and an end marker were
// seen, doc is returned unchanged.
//
// Only whole lines match a marker. A start marker inside an open region is
// swallowed like any other line of the old content.
func spliceSection(key, doc, snapshot string) string {
	start, end := sectionMarkers(key)

	lines := strings.Split(doc, "\n")
	trailingNewline := strings.HasSuffix(doc, "\n")
	if trailingNewline {
		lines = lines[:len(lines)-1]
	}

	out := make([]string, 0, len(lines)+1)
	var inside, startSeen, endSeen bool
	for _, line := range lines {
		text := strings.TrimSuffix(line, "\r")
		switch {
		case inside:
			if text == end {
				out = append(out, text)
				inside = false
				endSeen = true
			}
		case text == start:
			out = append(out, text, fenceBlock(snapshot))
			inside = true
			startSeen = true
		default:
			out = append(out, line)
		}
	}
	if !startSeen || !endSeen {
		return doc
	}

	spliced := strings.Join(out, "\n")
	if trailingNewline {
		spliced += "\n"
	}
	return spliced
}
