// Package actions builds the colon-delimited action strings the MSX client
// interprets: <verb>:<subject>[@<target>]. The server only emits them.
package actions

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidAction is returned for any action that breaks the grammar.
var ErrInvalidAction = errors.New("invalid action")

var verbPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Builder accumulates the parts of one action. The zero value is not usable; start with New.
type Builder struct {
	verb    string
	subject []string
	target  string
	hasAt   bool
}

// New starts an action with a verb and one or more subject segments.
func New(verb string, subject ...string) Builder {
	return Builder{verb: verb, subject: append([]string(nil), subject...)}
}

// At sets the part after '@': a document URL or a data template.
func (b Builder) At(target string) Builder {
	b.target = target
	b.hasAt = true
	return b
}

// Build validates and renders the action.
func (b Builder) Build() (string, error) {
	if !verbPattern.MatchString(b.verb) {
		return "", fmt.Errorf("%w: bad verb %q", ErrInvalidAction, b.verb)
	}
	if len(b.subject) == 0 {
		return "", fmt.Errorf("%w: %s has no subject", ErrInvalidAction, b.verb)
	}
	for _, seg := range b.subject {
		if seg == "" {
			return "", fmt.Errorf("%w: empty subject segment in %s", ErrInvalidAction, b.verb)
		}
		if strings.ContainsRune(seg, '@') || hasSpace(seg) {
			return "", fmt.Errorf("%w: subject segment %q", ErrInvalidAction, seg)
		}
	}

	var sb strings.Builder
	sb.WriteString(b.verb)
	for _, seg := range b.subject {
		sb.WriteByte(':')
		sb.WriteString(seg)
	}
	if b.hasAt {
		if b.target == "" || hasSpace(b.target) {
			return "", fmt.Errorf("%w: target %q", ErrInvalidAction, b.target)
		}
		sb.WriteByte('@')
		sb.WriteString(b.target)
	}
	return sb.String(), nil
}

// MustBuild is Build for actions assembled from constants; it panics on error.
func (b Builder) MustBuild() string {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Placeholder renders the client-side substitution token for a control key: {key}.
func Placeholder(key string) string {
	return "{" + key + "}"
}

// Commit builds the action a form button fires: it commits the interaction and
// re-requests the plugin with phase, passing the value of control key as param.
func Commit(phase, param, key string) (string, error) {
	if key == "" || strings.ContainsAny(key, "{}:@") || hasSpace(key) {
		return "", fmt.Errorf("%w: control key %q", ErrInvalidAction, key)
	}
	if param == "" || strings.ContainsAny(param, "{}:@") {
		return "", fmt.Errorf("%w: param %q", ErrInvalidAction, param)
	}
	data := "{" + param + ":" + Placeholder(key) + "}"
	return New("interaction", "commit", "content", "request", "interaction", phase).At(data).Build()
}

// InteractionRequest points the client at an interaction plugin page and asks it for phase.
func InteractionRequest(phase, pluginURL string) (string, error) {
	return New("content", "request", "interaction", phase).At(pluginURL).Build()
}

// Menu is the startup parameter that loads a menu document.
func Menu(url string) (string, error) {
	return New("menu", url).Build()
}

// Video plays a media asset.
func Video(url string) (string, error) {
	return New("video", url).Build()
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) >= 0
}
