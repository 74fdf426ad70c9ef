package config

import (
	"fmt"
	"sort"
	"strings"
)

// aliasPrefix namespaces alias entries within the config file so they
// coexist with regular settings.
const aliasPrefix = "alias."

// SetAlias stores a command alias
func (c *Config) SetAlias(name, command string) error {
	return c.Set(aliasPrefix+name, command)
}

// GetAlias retrieves the command for an alias
func (c *Config) GetAlias(name string) (string, error) {
	command, err := c.Get(aliasPrefix + name)
	if err != nil {
		return "", fmt.Errorf("alias not found: %s", name)
	}
	return command, nil
}

// HasAlias checks if an alias is defined
func (c *Config) HasAlias(name string) bool {
	return c.Exists(aliasPrefix + name)
}

// DeleteAlias removes an alias
func (c *Config) DeleteAlias(name string) error {
	if !c.HasAlias(name) {
		return fmt.Errorf("alias not found: %s", name)
	}
	return c.Delete(aliasPrefix + name)
}

// Aliases returns all defined aliases as a name -> command map
func (c *Config) Aliases() map[string]string {
	aliases := make(map[string]string)
	for key, value := range c.GetAll() {
		if name, ok := strings.CutPrefix(key, aliasPrefix); ok && name != "" {
			aliases[name] = value
		}
	}
	return aliases
}

// AliasNames returns all alias names in sorted order
func (c *Config) AliasNames() []string {
	aliases := c.Aliases()
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClearAliases removes all defined aliases
func (c *Config) ClearAliases() error {
	for name := range c.Aliases() {
		if err := c.Delete(aliasPrefix + name); err != nil {
			return fmt.Errorf("failed to remove alias %s: %w", name, err)
		}
	}
	return nil
}
