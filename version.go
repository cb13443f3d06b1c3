package nlpearl

import (
	"strings"
	"sync/atomic"
)

// Version identifies an NLPearl API generation.
// Any string is accepted; unknown tags are passed through to the URL verbatim.
type Version string

// String returns the version tag.
func (v Version) String() string { return string(v) }

// Known API generations.
const (
	V1 Version = "v1"
	V2 Version = "v2"

	// DefaultVersion is used when no version has been selected.
	DefaultVersion = V2
)

// DefaultRoot is the API root that versioned base URLs hang off.
const DefaultRoot = "https://api.nlpearl.ai"

// RequestShape returns the generation whose request shapes apply to v.
// Only v1 selects the v1 shapes; v2 and any newer or unknown tag use v2.
func (v Version) RequestShape() Version {
	if v == V1 {
		return V1
	}
	return V2
}

var (
	currentVersion atomic.Pointer[Version]
	currentAPIKey  atomic.Pointer[string]
)

// SetVersion selects the process-wide API version.
// An empty version resets the selection to DefaultVersion.
//
// Operations read the version once, when they start. A call already in
// flight is not affected by a later SetVersion; calls that have not started
// yet will see the new value. Use client.Config.Version when several
// differently-versioned clients must coexist in one process.
func SetVersion(v Version) {
	if v == "" {
		currentVersion.Store(nil)
		return
	}
	currentVersion.Store(&v)
}

// CurrentVersion returns the process-wide API version (default "v2").
func CurrentVersion() Version {
	if v := currentVersion.Load(); v != nil {
		return *v
	}
	return DefaultVersion
}

// SetAPIKey sets the process-wide API key. An empty key clears it.
// The same in-flight caveat as SetVersion applies.
func SetAPIKey(key string) {
	if key == "" {
		currentAPIKey.Store(nil)
		return
	}
	currentAPIKey.Store(&key)
}

// ClearAPIKey removes the process-wide API key.
func ClearAPIKey() {
	currentAPIKey.Store(nil)
}

// APIKey returns the process-wide API key and whether one is set.
func APIKey() (string, bool) {
	if k := currentAPIKey.Load(); k != nil {
		return *k, true
	}
	return "", false
}

// ResolveBaseURL returns the base endpoint for the process-wide version,
// e.g. "https://api.nlpearl.ai/v2".
func ResolveBaseURL() string {
	return BaseURL(DefaultRoot, CurrentVersion())
}

// BaseURL joins an API root and a version tag.
func BaseURL(root string, v Version) string {
	if root == "" {
		root = DefaultRoot
	}
	return strings.TrimRight(root, "/") + "/" + string(v)
}
