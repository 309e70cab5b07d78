package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/inful/mdfp"
)

// KeyUID is the stable page identifier field.
const KeyUID = "uid"

// Fields excluded from the fingerprint: they identify a page rather than describe its content.
var fingerprintExcluded = map[string]bool{
	mdfp.FingerprintField: true,
	KeyUID:                true,
	"lastmod":             true,
	"aliases":             true,
}

// ComputeFingerprint computes the content fingerprint of a page.
func ComputeFingerprint(fields map[string]any, body []byte) (string, error) {
	if fields == nil {
		return "", errors.New("fields map is nil")
	}

	hashed := make(map[string]any, len(fields))
	for k, v := range fields {
		if !fingerprintExcluded[k] {
			hashed[k] = v
		}
	}

	serialized, err := Serialize(hashed)
	if err != nil {
		return "", err
	}
	return mdfp.CalculateFingerprintFromParts(strings.TrimSuffix(string(serialized), "\n"), string(body)), nil
}

// EnsureUID sets a fresh uid when fields has none and returns the effective value.
func EnsureUID(fields map[string]any) (string, bool) {
	if v, ok := fields[KeyUID]; ok {
		return strings.TrimSpace(fmt.Sprint(v)), false
	}
	id := uuid.NewString()
	fields[KeyUID] = id
	return id, true
}

// Stamp builds a complete page from fields and body: it assigns a uid when
// missing, stores the fingerprint and prepends the serialized block.
func Stamp(fields map[string]any, body []byte) ([]byte, error) {
	if fields == nil {
		return nil, errors.New("fields map is nil")
	}

	EnsureUID(fields)

	fp, err := ComputeFingerprint(fields, body)
	if err != nil {
		return nil, err
	}
	fields[mdfp.FingerprintField] = fp

	fm, err := Serialize(fields)
	if err != nil {
		return nil, err
	}
	return Join(fm, body), nil
}
