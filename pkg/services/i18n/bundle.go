package i18n

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/ini.v1"
)

const (
	// DefaultBasename is the file prefix of locale files: explanation.ini, explanation_en_US.ini, ...
	DefaultBasename = "explanation"

	sectionText      = "text"
	sectionImage     = "image"
	sectionDimension = "dimension"
	sectionUnit      = "unit"
)

var loadOptions = ini.LoadOptions{
	KeyValueDelimiters:  "=",
	IgnoreInlineComment: true,
}

// Bundle holds the locale files of one basename, keyed by locale suffix
// ("" for the root file, "en", "en_US", ...).
type Bundle struct {
	basename string
	files    map[string]*ini.File
}

// LoadBundle reads every <basename>*.ini file from dir.
func LoadBundle(dir, basename string) (*Bundle, error) {
	return LoadBundleFS(os.DirFS(dir), basename)
}

// LoadBundleFS reads every <basename>*.ini file at the root of fsys.
func LoadBundleFS(fsys fs.FS, basename string) (*Bundle, error) {
	if basename == "" {
		basename = DefaultBasename
	}
	paths, err := fs.Glob(fsys, basename+"*.ini")
	if err != nil {
		return nil, fmt.Errorf("glob locale files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found for basename %q", basename)
	}
	sort.Strings(paths)

	b := &Bundle{basename: basename, files: make(map[string]*ini.File)}
	for _, p := range paths {
		suffix, ok := localeSuffix(basename, path.Base(p))
		if !ok {
			continue
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read locale file %s: %w", p, err)
		}
		f, err := ini.LoadSources(loadOptions, data)
		if err != nil {
			return nil, fmt.Errorf("parse locale file %s: %w", p, err)
		}
		b.files[suffix] = f
	}
	return b, nil
}

// localeSuffix extracts "en_US" from "explanation_en_US.ini" and "" from "explanation.ini".
func localeSuffix(basename, file string) (string, bool) {
	name := strings.TrimSuffix(file, ".ini")
	if name == basename {
		return "", true
	}
	suffix, found := strings.CutPrefix(name, basename+"_")
	if !found || suffix == "" {
		return "", false
	}
	return suffix, true
}

// Locales lists the locale suffixes present in the bundle, root file included as "".
func (b *Bundle) Locales() []string {
	locales := make([]string, 0, len(b.files))
	for l := range b.files {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}

// Localizer returns a Localizer that looks keys up in lang_REGION, then lang, then the root file.
func (b *Bundle) Localizer(tag language.Tag) Localizer {
	var chain []*ini.File
	for _, key := range fallbackChain(tag) {
		if f, ok := b.files[key]; ok {
			chain = append(chain, f)
		}
	}
	return &bundleLocalizer{chain: chain}
}

func fallbackChain(tag language.Tag) []string {
	if tag == language.Und {
		return []string{""}
	}
	base, _ := tag.Base()
	region, conf := tag.Region()
	var keys []string
	if conf == language.Exact {
		keys = append(keys, base.String()+"_"+region.String())
	}
	return append(keys, base.String(), "")
}

type bundleLocalizer struct {
	chain []*ini.File
}

func (l *bundleLocalizer) lookup(section, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	for _, f := range l.chain {
		sec, err := f.GetSection(section)
		if err != nil {
			continue
		}
		if sec.HasKey(key) {
			return sec.Key(key).String(), true
		}
	}
	return "", false
}

func (l *bundleLocalizer) TranslateText(group, rule string, args []any) (string, bool) {
	pattern, ok := l.lookup(sectionText, group+"."+rule)
	if !ok {
		return "", false
	}
	return Format(pattern, args), true
}

func (l *bundleLocalizer) TranslateImageCaption(caption string) (string, bool) {
	return l.lookup(sectionImage, caption)
}

func (l *bundleLocalizer) TranslateDimensionName(name string) (string, bool) {
	return l.lookup(sectionDimension, name)
}

func (l *bundleLocalizer) TranslateUnit(unit string) (string, bool) {
	return l.lookup(sectionUnit, unit)
}
