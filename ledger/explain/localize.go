package explain

import (
	"regexp"
	"sort"
	"sync"

	"github.com/anyswap/xrpl-txmodel/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Params are the named parameters of a message template
type Params map[string]string

// Localizer resolves a message key with named parameters
type Localizer interface {
	T(key string, params Params) string
}

// CatalogLocalizer resolves keys through an x/text message catalog.
// Templates refer to parameters as {name}.
type CatalogLocalizer struct {
	printer *message.Printer
}

var placeholder = regexp.MustCompile(`\{([A-Za-z][A-Za-z0-9_]*)\}`)

// NewCatalogLocalizer builds a localizer for tag over per language message tables.
// English is the fallback language.
func NewCatalogLocalizer(tag language.Tag, messages map[language.Tag]map[string]string) (*CatalogLocalizer, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for lang, table := range messages {
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := builder.SetString(lang, k, table[k]); err != nil {
				return nil, err
			}
		}
	}
	return &CatalogLocalizer{printer: message.NewPrinter(tag, message.Catalog(builder))}, nil
}

// T impl Localizer. Missing parameters are left in place and logged.
func (l *CatalogLocalizer) T(key string, params Params) string {
	template := l.printer.Sprintf(key)
	return placeholder.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := params[name]
		if !ok {
			log.Debug("localization parameter missing", "key", key, "param", name)
			return m
		}
		return v
	})
}

var (
	defaultLocalizer     *CatalogLocalizer
	defaultLocalizerOnce sync.Once
)

// DefaultLocalizer is the English localizer over the built in messages
func DefaultLocalizer() *CatalogLocalizer {
	defaultLocalizerOnce.Do(func() {
		l, err := NewCatalogLocalizer(language.English, map[language.Tag]map[string]string{
			language.English: englishMessages,
		})
		if err != nil {
			log.Fatal("build default message catalog failed", "err", err)
		}
		defaultLocalizer = l
	})
	return defaultLocalizer
}
