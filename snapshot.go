package main

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"
)

const dataParam = "data"

// Snapshot is the shareable form of a scene.
type Snapshot struct {
	Items   []Item       `json:"items"`
	Wrapper WrapperColor `json:"wrapper"`
}

// wireSnapshot tells a missing field apart from an empty one.
type wireSnapshot struct {
	Items   *[]Item       `json:"items"`
	Wrapper *WrapperColor `json:"wrapper"`
}

// EncodeSnapshot serializes the scene: JSON, percent-escaped, then base64.
func EncodeSnapshot(s *Scene) (string, error) {
	raw, err := json.Marshal(Snapshot{Items: s.Items(), Wrapper: s.Wrapper()})
	if err != nil {
		return "", wrapError(ErrCodeExportFailed, err, "marshal scene")
	}
	escaped := url.PathEscape(string(raw))
	return base64.StdEncoding.EncodeToString([]byte(escaped)), nil
}

// DecodeSnapshot reverses EncodeSnapshot and validates the result. Every
// failure is an ErrCodeInvalidSnapshot error.
func DecodeSnapshot(payload string) (Snapshot, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return Snapshot{}, wrapError(ErrCodeInvalidSnapshot, err, "decode base64")
	}
	text, err := url.PathUnescape(string(raw))
	if err != nil {
		return Snapshot{}, wrapError(ErrCodeInvalidSnapshot, err, "unescape payload")
	}

	var wire wireSnapshot
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return Snapshot{}, wrapError(ErrCodeInvalidSnapshot, err, "parse payload")
	}
	if wire.Items == nil {
		return Snapshot{}, newError(ErrCodeInvalidSnapshot, "missing items")
	}
	if wire.Wrapper == nil {
		return Snapshot{}, newError(ErrCodeInvalidSnapshot, "missing wrapper")
	}
	if !validWrapper(*wire.Wrapper) {
		return Snapshot{}, newError(ErrCodeInvalidSnapshot, "unknown wrapper %q", *wire.Wrapper)
	}

	selected := 0
	for i, it := range *wire.Items {
		if !knownKind(it.Kind) {
			return Snapshot{}, newError(ErrCodeInvalidSnapshot, "item %d: unknown type %q", i, it.Kind)
		}
		if it.Selected {
			selected++
		}
	}
	if selected > 1 {
		return Snapshot{}, newError(ErrCodeInvalidSnapshot, "%d items selected", selected)
	}

	return Snapshot{Items: *wire.Items, Wrapper: *wire.Wrapper}, nil
}

func knownKind(k Kind) bool {
	if k == KindNote {
		return true
	}
	for _, f := range FlowerKinds {
		if f == k {
			return true
		}
	}
	return false
}

// ShareLink puts payload into the data query parameter of base.
func ShareLink(base, payload string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", wrapError(ErrCodeExportFailed, err, "parse base url")
	}
	q := u.Query()
	q.Set(dataParam, payload)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// PayloadFromLink accepts a full share link, a bare "?data=" query or the
// payload itself and returns the payload. Base64 never contains '?', so
// anything without one is taken as a bare payload.
func PayloadFromLink(link string) string {
	link = strings.TrimSpace(link)
	i := strings.Index(link, "?")
	if i < 0 {
		return link
	}
	values, err := url.ParseQuery(link[i+1:])
	if err != nil || !values.Has(dataParam) {
		return link
	}
	// Links written without escaping carry base64 '+' as a raw plus, which
	// query parsing turns into a space.
	return strings.ReplaceAll(values.Get(dataParam), " ", "+")
}

// ExportSnapshot encodes s as a share link on base. Links longer than maxLen
// fail with ErrCodeSnapshotTooLarge; maxLen <= 0 disables the limit.
func ExportSnapshot(s *Scene, base string, maxLen int) (string, error) {
	payload, err := EncodeSnapshot(s)
	if err != nil {
		return "", err
	}
	link, err := ShareLink(base, payload)
	if err != nil {
		return "", err
	}
	if maxLen > 0 && len(link) > maxLen {
		return "", newError(ErrCodeSnapshotTooLarge, "link is %d characters, limit %d", len(link), maxLen)
	}
	return link, nil
}

// ImportSnapshot decodes link into s. On failure s is left untouched.
func ImportSnapshot(s *Scene, link string) error {
	snap, err := DecodeSnapshot(PayloadFromLink(link))
	if err != nil {
		return err
	}
	s.replace(snap.Items, snap.Wrapper)
	return nil
}
