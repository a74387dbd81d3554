package enum

import (
	"encoding/json"
	"strings"
)

// AccessLevel is the coarse role flag gating menu visibility and the
// admin-only routes. The backend stores it as a plain string.
type AccessLevel string

const (
	AccessLevelAdmin AccessLevel = "admin"
	AccessLevelUser  AccessLevel = "user"
)

func (l AccessLevel) String() string {
	return string(l)
}

// IsAdmin reports whether the level grants access to admin-only screens
func (l AccessLevel) IsAdmin() bool {
	return l == AccessLevelAdmin
}

// IsValid reports whether the level is one of the known values
func (l AccessLevel) IsValid() bool {
	return l == AccessLevelAdmin || l == AccessLevelUser
}

func (l AccessLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(l))
}

func (l *AccessLevel) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*l = AccessLevel(str)
	return nil
}

// Normalize maps unknown or blank levels to the standard user level. The
// comparison ignores case and surrounding whitespace since the value
// arrives as a plain string from the backend.
func (l AccessLevel) Normalize() AccessLevel {
	if strings.EqualFold(strings.TrimSpace(string(l)), string(AccessLevelAdmin)) {
		return AccessLevelAdmin
	}
	return AccessLevelUser
}
