package search

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseFolder maps a rune to the form used for case-insensitive comparison.
// Folding is rune-for-rune so offsets in the folded text line up with the
// original buffer.
type CaseFolder interface {
	Fold(r rune) rune
}

// FoldFunc adapts a plain function to CaseFolder.
type FoldFunc func(rune) rune

func (f FoldFunc) Fold(r rune) rune {
	return f(r)
}

var (
	// SimpleFolder lower-cases with the Unicode default mapping.
	SimpleFolder CaseFolder = FoldFunc(unicode.ToLower)

	// ExactFolder leaves runes untouched.
	ExactFolder CaseFolder = FoldFunc(func(r rune) rune { return r })
)

type localeFolder struct {
	caser cases.Caser
}

// LocaleFolder lower-cases using the rules of the given language, e.g.
// Turkish dotless i. A rune whose lower-case form is not a single rune falls
// back to unicode.ToLower. The returned folder is not safe for concurrent use.
func LocaleFolder(tag language.Tag) CaseFolder {
	return &localeFolder{caser: cases.Lower(tag)}
}

func (f *localeFolder) Fold(r rune) rune {
	s := f.caser.String(string(r))
	out, size := utf8.DecodeRuneInString(s)
	if out == utf8.RuneError || size != len(s) {
		return unicode.ToLower(r)
	}
	return out
}

// FolderForLocale resolves a BCP 47 language name to a folder. An empty name
// selects SimpleFolder.
func FolderForLocale(name string) (CaseFolder, error) {
	if name == "" {
		return SimpleFolder, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("invalid case folding locale %q: %w", name, err)
	}
	return LocaleFolder(tag), nil
}

func foldRunes(f CaseFolder, in []rune) []rune {
	out := make([]rune, len(in))
	for i, r := range in {
		out[i] = f.Fold(r)
	}
	return out
}
