package command

import "strings"

// defaultVerbs are subcommand keywords allowed to extend a fuzzy signature
// past the program name. Membership is a tunable heuristic, not a grammar;
// it is overridable through the fuzzy.verbs config key.
var defaultVerbs = []string{
	"add", "apply", "branch", "build", "checkout", "clone", "commit",
	"diff", "down", "exec", "fetch", "get", "install", "log", "logs",
	"merge", "pull", "push", "rebase", "remove", "restart", "run",
	"start", "status", "stop", "test", "up", "update",
}

// DefaultVerbs returns a copy of the built-in subcommand verb allow-list.
func DefaultVerbs() []string {
	verbs := make([]string, len(defaultVerbs))
	copy(verbs, defaultVerbs)
	return verbs
}

// Signer derives aggregation keys from tokenized commands.
type Signer struct {
	verbs map[string]struct{}
}

// NewSigner creates a Signer with the given subcommand verb allow-list.
func NewSigner(verbs []string) *Signer {
	s := &Signer{verbs: make(map[string]struct{}, len(verbs))}
	for _, v := range verbs {
		s.verbs[v] = struct{}{}
	}
	return s
}

// Exact returns the exact signature of a raw command line.
func Exact(raw string) string {
	return strings.TrimSpace(raw)
}

// Fuzzy returns the normalized grouping key for a token sequence: the first
// token plus any following flag-like tokens and allow-listed verbs, stopping
// at the first free-form positional argument. The key doubles as the group's
// display label. A one-token command signs as itself.
func (s *Signer) Fuzzy(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}

	parts := make([]string, 1, len(tokens))
	parts[0] = tokens[0]
	for _, tok := range tokens[1:] {
		if strings.HasPrefix(tok, "-") || s.isVerb(tok) {
			parts = append(parts, tok)
			continue
		}
		break
	}

	return strings.Join(parts, " ")
}

func (s *Signer) isVerb(tok string) bool {
	_, ok := s.verbs[tok]
	return ok
}
