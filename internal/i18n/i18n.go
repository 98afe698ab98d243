// Package i18n loads the message catalogs used by cards and the dashboard
// and negotiates which one to use.
//
// Catalogs are nested YAML files embedded in the binary. Keys are addressed
// with dots ("common.expired_in") and values may contain {{name}}
// placeholders that T fills from its params.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/rileyhilliard/nodeboard/internal/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Localizer maps a message key and optional params to display text.
type Localizer interface {
	T(key string, params map[string]any) string
}

// LocaleAuto picks the locale from LC_ALL, LC_MESSAGES or LANG.
const LocaleAuto = "auto"

//go:embed locales/*.yaml
var localeFS embed.FS

// supported lists catalogs in matcher priority order; the first entry is
// the fallback for missing keys.
var supported = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var matcher = language.NewMatcher(supported)

var placeholderPattern = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// Catalog is a flat key -> message table for one locale.
type Catalog struct {
	tag      language.Tag
	messages map[string]string
	fallback *Catalog
}

// Supported returns the locale names that have a catalog.
func Supported() []string {
	names := make([]string, len(supported))
	for i, tag := range supported {
		names[i] = catalogName(tag)
	}
	return names
}

// Load returns the catalog that best matches locale. "auto" or "" reads the
// environment. An explicit locale with no reasonable match is an error.
func Load(locale string) (*Catalog, error) {
	explicit := locale != "" && locale != LocaleAuto
	if !explicit {
		locale = envLocale()
	}

	tag := supported[0]
	if locale != "" {
		requested, err := language.Parse(normalizeLocale(locale))
		if err != nil && explicit {
			return nil, errors.WrapWithCode(err, errors.ErrLocale,
				fmt.Sprintf("'%s' is not a valid locale", locale),
				"Use one of: "+strings.Join(Supported(), ", "))
		}
		if err == nil {
			_, idx, conf := matcher.Match(requested)
			if conf == language.No && explicit {
				return nil, errors.New(errors.ErrLocale,
					fmt.Sprintf("No translations for '%s'", locale),
					"Use one of: "+strings.Join(Supported(), ", "))
			}
			if conf != language.No {
				tag = supported[idx]
			}
		}
	}

	fallback, err := loadCatalog(supported[0])
	if err != nil {
		return nil, err
	}
	if tag == supported[0] {
		return fallback, nil
	}

	cat, err := loadCatalog(tag)
	if err != nil {
		return nil, err
	}
	cat.fallback = fallback
	return cat, nil
}

// MustLoad is like Load but panics on error. Only use it with locales known
// to be supported.
func MustLoad(locale string) *Catalog {
	cat, err := Load(locale)
	if err != nil {
		panic(err)
	}
	return cat
}

// Locale returns the catalog's locale name.
func (c *Catalog) Locale() string {
	return catalogName(c.tag)
}

// T looks up key and fills {{placeholders}} from params. Unknown keys fall
// back to the default catalog and then to the key itself. Placeholders with
// no matching param are left as-is.
func (c *Catalog) T(key string, params map[string]any) string {
	msg, ok := c.lookup(key)
	if !ok {
		return key
	}
	if len(params) == 0 {
		return msg
	}
	return placeholderPattern.ReplaceAllStringFunc(msg, func(ph string) string {
		name := placeholderPattern.FindStringSubmatch(ph)[1]
		if v, ok := params[name]; ok {
			return fmt.Sprint(v)
		}
		return ph
	})
}

// Keys returns all keys of this catalog, sorted.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.messages))
	for k := range c.messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Catalog) lookup(key string) (string, bool) {
	if msg, ok := c.messages[key]; ok {
		return msg, true
	}
	if c.fallback != nil {
		return c.fallback.lookup(key)
	}
	return "", false
}

func loadCatalog(tag language.Tag) (*Catalog, error) {
	name := catalogName(tag)
	data, err := localeFS.ReadFile("locales/" + name + ".yaml")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrLocale,
			fmt.Sprintf("Missing catalog for %s", name),
			"Rebuild nodeboard; locale files are embedded at build time")
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrLocale,
			fmt.Sprintf("Catalog %s is not valid YAML", name),
			"Fix internal/i18n/locales/"+name+".yaml")
	}

	messages := make(map[string]string)
	flatten("", tree, messages)
	return &Catalog{tag: tag, messages: messages}, nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case nil:
			out[key] = ""
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

func catalogName(tag language.Tag) string {
	if tag == language.SimplifiedChinese {
		return "zh-CN"
	}
	base, _ := tag.Base()
	return base.String()
}

// normalizeLocale turns POSIX locale strings like "zh_CN.UTF-8" into BCP 47.
func normalizeLocale(s string) string {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}

func envLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" && v != "C" && v != "POSIX" {
			return v
		}
	}
	return ""
}
