// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Dump writes cfg to w as YAML. The output is a valid file for Load.
func Dump(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: dump: %w", err)
	}

	return enc.Close()
}
