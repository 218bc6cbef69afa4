package oop

import "strings"

// FindLabel scans data for a "\r:NAME" (or leading ":NAME" at offset 0)
// label and returns the offset of the character just past the label line,
// or -1 if not found. Labels are matched case-insensitively, and a label
// prefixed with "'" (a "zapped" label, produced by #ZAP) never matches
// (spec §4.5 "labels").
func FindLabel(data []byte, name string) int {
	name = strings.ToUpper(name)
	for i := 0; i < len(data); i++ {
		if data[i] != ':' {
			continue
		}
		if i > 0 && data[i-1] != '\n' && data[i-1] != '\r' {
			continue
		}
		word, next := OopReadWord(data, i+1)
		if word == name {
			return lineEnd(data, next)
		}
	}
	return -1
}

// RestoreLabel un-zaps the first zapped ("'NAME) occurrence of name,
// turning it back into a live label (spec §4.5 "#RESTORE"). It returns
// true if a zapped label was found and restored.
func RestoreLabel(data []byte, name string) bool {
	name = strings.ToUpper(name)
	for i := 0; i < len(data); i++ {
		if data[i] != '\'' {
			continue
		}
		if i > 0 && data[i-1] != '\n' && data[i-1] != '\r' {
			continue
		}
		word, _ := OopReadWord(data, i+1)
		if word == name {
			data[i] = ':'
			return true
		}
	}
	return false
}

// ZapLabel zaps the first live (":NAME") occurrence of name, turning it
// into "'NAME" so FindLabel skips it until RestoreLabel undoes this
// (spec §4.5 "#ZAP").
func ZapLabel(data []byte, name string) bool {
	name = strings.ToUpper(name)
	for i := 0; i < len(data); i++ {
		if data[i] != ':' {
			continue
		}
		if i > 0 && data[i-1] != '\n' && data[i-1] != '\r' {
			continue
		}
		word, _ := OopReadWord(data, i+1)
		if word == name {
			data[i] = '\''
			return true
		}
	}
	return false
}

func lineEnd(data []byte, pos int) int {
	for pos < len(data) && data[pos] != '\r' && data[pos] != '\n' {
		pos++
	}
	if pos < len(data) {
		pos++
	}
	return pos
}
