package common

import (
	"fmt"
	"strings"
)

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateAliasName validates an alias name (alphanumeric, underscore,
// hyphen; must start with a letter)
func ValidateAliasName(name string) error {
	if name == "" {
		return fmt.Errorf("alias name cannot be empty")
	}

	if len(name) > 64 {
		return fmt.Errorf("alias name too long (max 64 characters): %s", name)
	}

	firstChar := name[0]
	if !((firstChar >= 'a' && firstChar <= 'z') || (firstChar >= 'A' && firstChar <= 'Z')) {
		return fmt.Errorf("alias name must start with a letter: %s", name)
	}

	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-') {
			return fmt.Errorf("alias name contains invalid character: %s", name)
		}
	}

	return nil
}

// ValidateBranchName applies the common restrictions on git branch names.
// It is deliberately conservative; git itself is the final authority.
func ValidateBranchName(name string) error {
	if name == "" {
		return fmt.Errorf("branch name cannot be empty")
	}

	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("branch name cannot start with a hyphen: %s", name)
	}
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return fmt.Errorf("branch name cannot start or end with a slash: %s", name)
	}
	if strings.HasSuffix(name, ".lock") {
		return fmt.Errorf("branch name cannot end with .lock: %s", name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("branch name cannot contain '..': %s", name)
	}

	for _, c := range name {
		if c <= 0x20 || c == 0x7f {
			return fmt.Errorf("branch name contains control or space character: %s", name)
		}
		switch c {
		case '~', '^', ':', '?', '*', '[', '\\':
			return fmt.Errorf("branch name contains invalid character %q: %s", c, name)
		}
	}

	return nil
}

// ValidateCommitRef validates a commit reference (hash or abbreviated hash)
func ValidateCommitRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("commit reference cannot be empty")
	}

	if len(ref) > 40 {
		return fmt.Errorf("commit reference too long: %s", ref)
	}

	for _, c := range ref {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return fmt.Errorf("commit reference must be hexadecimal: %s", ref)
		}
	}

	return nil
}
