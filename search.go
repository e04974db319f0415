package treematch

import "github.com/sirupsen/logrus"

// searchConfig holds Search's optional knobs. Search starts from
// DefaultLimits and no logging ("nil logger means silent") before
// applying options.
type searchConfig struct {
	limits Limits
	log    *logrus.Logger
}

// Option configures a Search call.
type Option func(*searchConfig)

// WithLimits overrides the VM's resource bounds for this search.
func WithLimits(l Limits) Option {
	return func(c *searchConfig) { c.limits = l }
}

// WithLogger attaches an optional debug trace of descend/callback
// events. It is never consulted on the per-element match path, only
// when the search driver descends into a child sequence and before a
// match callback, so it cannot slow down the VM's hot loop.
func WithLogger(log *logrus.Logger) Option {
	return func(c *searchConfig) { c.log = log }
}

// OnMatch is called for every match found by Search. Returning
// cont=true continues scanning the same node at index next (the
// "re-run at same position" idiom after a mutating Replace); returning
// cont=false continues at the match's own end index, re-read after any
// mutation the callback made.
type OnMatch func(m *Match) (next int, cont bool)

// Search walks root pre-order, trying prog at every index of every
// encountered sequence. It never optimizes away a sequence just
// because an ancestor matched: every sequence, including
// ones nested inside a match, is visited.
func Search(root *Element, prog *Program, onMatch OnMatch, opts ...Option) error {
	cfg := searchConfig{limits: DefaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return searchNode(root, prog, &cfg, onMatch)
}

func searchNode(node *Element, prog *Program, cfg *searchConfig, onMatch OnMatch) error {
	i := 0
	for i <= len(node.items) {
		end, caps, matched, err := Run(prog, node, i, cfg.limits)
		if err != nil {
			return err
		}
		if !matched {
			i++
			continue
		}

		matchStart := i
		m := buildMatch(node, i, end, caps, prog)
		if cfg.log != nil {
			cfg.log.WithFields(logrus.Fields{"start": m.start, "end": m.end}).Debug("treematch: match")
		}
		next, cont := onMatch(m)
		if cont {
			i = next
		} else {
			i = m.end
			// Guard against a zero-length match stalling the scan
			// forever; a real advance is always preferred when one
			// was made.
			if i <= matchStart {
				i = matchStart + 1
			}
		}
	}

	for idx := 0; idx < len(node.items); idx++ {
		child := &node.items[idx]
		if !child.seq {
			continue
		}
		if cfg.log != nil {
			cfg.log.WithField("index", idx).Debug("treematch: descend")
		}
		if err := searchNode(child, prog, cfg, onMatch); err != nil {
			return err
		}
	}
	return nil
}

func buildMatch(node *Element, start, end int, caps map[int]capture, prog *Program) *Match {
	var groups map[string]*Match
	if len(prog.GroupNames) > 0 {
		groups = make(map[string]*Match, len(prog.GroupNames))
		for name, gid := range prog.GroupNames {
			c, ok := caps[gid]
			if !ok || !c.hasStart || !c.hasEnd {
				continue
			}
			groups[name] = &Match{node: c.node, start: c.start, end: c.end}
		}
	}
	return &Match{node: node, start: start, end: end, groups: groups}
}
