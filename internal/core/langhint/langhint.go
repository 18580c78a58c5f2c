// Package langhint provides coarse script detection for log summaries
package langhint

import "unicode"

// Script names returned by Profile.Script
const (
	ScriptNone   = "none"
	ScriptArabic = "arabic"
	ScriptLatin  = "latin"
	ScriptMixed  = "mixed"
	ScriptOther  = "other"
)

// Profile counts letters by script and marks over one text
type Profile struct {
	Letters int // all letters
	Arabic  int // Arabic script letters
	Latin   int // Latin letters
	Marks   int // combining marks, harakat included
}

// Scan builds the profile of s
func Scan(s string) Profile {
	var p Profile
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
			p.Marks++
		case !unicode.IsLetter(r):
		case unicode.Is(unicode.Arabic, r):
			p.Letters++
			p.Arabic++
		case unicode.Is(unicode.Latin, r):
			p.Letters++
			p.Latin++
		default:
			p.Letters++
		}
	}
	return p
}

// Script is the dominant script; a script needs 80% of letters to dominate
func (p Profile) Script() string {
	switch {
	case p.Letters == 0:
		return ScriptNone
	case p.Arabic*5 >= p.Letters*4:
		return ScriptArabic
	case p.Latin*5 >= p.Letters*4:
		return ScriptLatin
	case p.Arabic+p.Latin > 0:
		return ScriptMixed
	default:
		return ScriptOther
	}
}

// Vocalized reports whether more than half the Arabic letters carry a mark
func (p Profile) Vocalized() bool { return p.Arabic > 0 && p.Marks*2 > p.Arabic }
