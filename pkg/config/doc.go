// Package config loads pakt's two configuration layers: the per-project
// stage table (.paktrc / pakt.yaml), whose glob maps preserve key
// declaration order, and the tool-level settings (koanf: embedded
// defaults, user file, environment).
package config
