package auth

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/carebook/carebook/internal/platform/apperr"
)

type Role string

const (
	RolePatient  Role = "Patient"
	RoleDoctor   Role = "Doctor"
	RolePharmacy Role = "Pharmacy"
	RoleAdmin    Role = "Admin"
)

// Identity is the caller's asserted identity, reconstructed per request from
// the identity blob. It is never persisted and never verified against a
// credential store: the claim is trusted at face value. This is the
// documented trust model of the API, not an oversight.
type Identity struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// ParseIdentity decodes the caller-supplied identity blob. The blob is a
// JSON object, possibly URL-encoded once or wrapped in a JSON string by
// over-eager clients; one level of each is unwrapped before giving up.
func ParseIdentity(raw string) (*Identity, error) {
	if raw == "" {
		return nil, apperr.New(apperr.MissingIdentity, "Unauthorized. Please log in.")
	}

	id, ok := decodeIdentity(raw)
	if !ok {
		if unescaped, err := url.QueryUnescape(raw); err == nil && unescaped != raw {
			id, ok = decodeIdentity(unescaped)
		}
	}
	if !ok || id.Username == "" || id.Role == "" {
		return nil, apperr.New(apperr.InvalidIdentity, "Invalid user data in header.")
	}

	return id, nil
}

func decodeIdentity(raw string) (*Identity, bool) {
	var id Identity
	if err := json.Unmarshal([]byte(raw), &id); err == nil {
		return &id, true
	}

	// Double-encoded: a JSON string whose content is the object.
	if strings.HasPrefix(raw, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(raw), &inner); err == nil {
			if err := json.Unmarshal([]byte(inner), &id); err == nil {
				return &id, true
			}
		}
	}

	return nil, false
}
