package model

// Score accumulates one run's measurements for a language.
// Both lists are append-only.
type Score struct {
	Name   string
	times  []Measurement
	memory []int64 // kilobytes
}

// NewScore creates an empty Score for name.
func NewScore(name string) *Score {
	return &Score{Name: name}
}

// AddTime appends a processing-time measurement.
func (s *Score) AddTime(m Measurement) { s.times = append(s.times, m) }

// AddMemory appends a memory reading in kilobytes.
func (s *Score) AddMemory(kb int64) { s.memory = append(s.memory, kb) }

// Times returns a copy of the time measurements.
func (s *Score) Times() []Measurement {
	out := make([]Measurement, len(s.times))
	copy(out, s.times)
	return out
}

// Memory returns a copy of the memory readings.
func (s *Score) Memory() []int64 {
	out := make([]int64, len(s.memory))
	copy(out, s.memory)
	return out
}

// Empty reports whether no measurement of either kind was recorded.
func (s *Score) Empty() bool { return len(s.times) == 0 && len(s.memory) == 0 }

// ScoreGroup holds every run of one language in run order.
type ScoreGroup struct {
	Name string
	Runs []*Score
}

// Len returns the number of runs.
func (g *ScoreGroup) Len() int { return len(g.Runs) }

// Last returns the most recent run or nil.
func (g *ScoreGroup) Last() *Score {
	if len(g.Runs) == 0 {
		return nil
	}
	return g.Runs[len(g.Runs)-1]
}

// Run returns the i-th run or nil when the group is shorter.
func (g *ScoreGroup) Run(i int) *Score {
	if i < 0 || i >= len(g.Runs) {
		return nil
	}
	return g.Runs[i]
}

// Registry maps language names to their groups, keeping first-seen order.
type Registry struct {
	order  []string
	groups map[string]*ScoreGroup
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{groups: make(map[string]*ScoreGroup)}
}

// Lookup returns the group for name.
func (r *Registry) Lookup(name string) (*ScoreGroup, bool) {
	g, ok := r.groups[name]
	return g, ok
}

// Append adds s as a new run of its language, creating the group on first sight.
func (r *Registry) Append(s *Score) *ScoreGroup {
	g, ok := r.groups[s.Name]
	if !ok {
		g = &ScoreGroup{Name: s.Name}
		r.groups[s.Name] = g
		r.order = append(r.order, s.Name)
	}
	g.Runs = append(g.Runs, s)
	return g
}

// Groups returns all groups in first-seen order.
func (r *Registry) Groups() []*ScoreGroup {
	out := make([]*ScoreGroup, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.groups[name])
	}
	return out
}

// Len returns the number of distinct languages.
func (r *Registry) Len() int { return len(r.order) }

// Runs returns the total number of runs across all groups.
func (r *Registry) Runs() int {
	n := 0
	for _, g := range r.groups {
		n += len(g.Runs)
	}
	return n
}
