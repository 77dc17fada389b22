package textio

import (
	"fmt"
	"strings"

	"github.com/go-garcide/garcide/element"
	"github.com/go-garcide/garcide/factor"
)

// printConfig holds the formatting knobs applied by PrintOption.
type printConfig struct {
	separator   string
	deltaSymbol string
}

// PrintOption customizes PrintElement's output.
type PrintOption func(cfg *printConfig)

func newPrintConfig(opts ...PrintOption) *printConfig {
	cfg := &printConfig{separator: " . ", deltaSymbol: "D"}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeparator overrides the default " . " term separator. Ignored if
// sep is empty.
func WithSeparator(sep string) PrintOption {
	return func(cfg *printConfig) {
		if sep != "" {
			cfg.separator = sep
		}
	}
}

// WithDeltaSymbol overrides the default "D" rendering of the Garside
// element. Ignored if sym is empty.
func WithDeltaSymbol(sym string) PrintOption {
	return func(cfg *printConfig) {
		if sym != "" {
			cfg.deltaSymbol = sym
		}
	}
}

// PrintElement renders b in the grammar ParseElement accepts: terms
// separated by cfg.separator, Delta powers rendered as "D" / "D ^ k",
// every other factor delegated to k.Print.
func PrintElement[P comparable, F any](k factor.Kind[P, F], b *element.Element[P, F]) string {
	return PrintElementWith(k, b)
}

// PrintElementWith is PrintElement with formatting options applied.
func PrintElementWith[P comparable, F any](k factor.Kind[P, F], b *element.Element[P, F], opts ...PrintOption) string {
	cfg := newPrintConfig(opts...)

	var parts []string
	switch {
	case b.Inf == 1:
		parts = append(parts, cfg.deltaSymbol)
	case b.Inf != 0:
		parts = append(parts, fmt.Sprintf("%s ^ %d", cfg.deltaSymbol, b.Inf))
	}
	for _, f := range b.Factors {
		parts = append(parts, k.Print(f))
	}

	if len(parts) == 0 {
		return k.Print(k.Identity(b.Parameter))
	}
	return strings.Join(parts, cfg.separator)
}
