package config

// SampleConfig returns a full configuration file with every option
// documented
func SampleConfig() string {
	return `# manifestview configuration
version: "1.0"

ui:
  # default, high-contrast or minimal
  theme: default
  # auto, never, ansi, ansi256 or truecolor
  color_mode: auto
  # unicode or ascii
  glyphs: unicode
  alt_screen: true
  # 0 uses the full terminal width
  max_width: 0

manifest:
  # manifest used when no path is given; empty shows the demo
  path: ""
  # reload the manifest in the viewer when it changes on disk
  watch: false
  debounce: 150ms

output:
  # text, json, markdown or csv
  default_format: text
  verbose: false
  # cut text tables wider than this; 0 disables the limit
  width: 0

# Override theme colors per styling token. A value is one hex color or
# "light,dark".
theme_tokens: {}
#  brand.600: "#2B6CB0,#63B3ED"
#  gray.50: "#F7FAFC"
`
}

// MinimalSampleConfig returns a configuration file with only the common
// settings
func MinimalSampleConfig() string {
	return `version: "1.0"
ui:
  theme: default
manifest:
  path: ""
output:
  default_format: text
`
}
