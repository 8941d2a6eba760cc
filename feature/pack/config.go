package pack

import "strings"

// VariantStandard is the default output variant.
const VariantStandard = "standard"

// Config holds the directory layout and variant set for a sync run.
type Config struct {
	// ClientDir is the extracted game client data, authoritative for
	// which keys exist.
	ClientDir string `mapstructure:"client_dir" default:"client"`
	// ReferenceDir is the base translation maintained upstream.
	ReferenceDir string `mapstructure:"reference_dir" default:"l10n_reference"`
	// PatchDir is the translator-maintained override dictionary.
	PatchDir string `mapstructure:"patch_dir" default:"l10n_patch"`
	// OutputDir receives one installable pack per variant.
	OutputDir string `mapstructure:"output_dir" default:"output"`
	// Variants is the comma-separated list of output variants to build.
	Variants string `mapstructure:"variants" default:"standard"`
}

// VariantNames parses the configured variant list.
func (c Config) VariantNames() []string {
	var names []string
	for _, v := range strings.Split(c.Variants, ",") {
		if v = strings.TrimSpace(v); v != "" {
			names = append(names, v)
		}
	}
	if len(names) == 0 {
		names = []string{VariantStandard}
	}
	return names
}
