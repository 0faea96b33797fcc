package matcher

// Path is the compiled remainder of a pattern below its literal base,
// zero or more directory segments followed by the name segment.
type Path struct {
	Dirs []Segment
	Name Segment
}

func CompilePath(dirs []string, name string) (Path, error) {
	var p = Path{Dirs: make([]Segment, 0, len(dirs))}
	for _, d := range dirs {
		s, err := CompileSegment(d)
		if err != nil {
			return Path{}, err
		}
		p.Dirs = append(p.Dirs, s)
	}
	s, err := CompileSegment(name)
	if err != nil {
		return Path{}, err
	}
	p.Name = s
	return p, nil
}

// Depth is the number of segments a relative path must have to be
// considered at all.
func (p Path) Depth() int { return len(p.Dirs) + 1 }

// Match compares the slash separated segments of a relative path,
// directories first (stopping at the first mismatch), then the name.
func (p Path) Match(rel []string) Result {
	if len(rel) != p.Depth() {
		return ResultDepthMismatch()
	}
	for i, d := range p.Dirs {
		if !d.DoesMatch(rel[i]) {
			return ResultDirSegmentMismatch(i)
		}
	}
	if !p.Name.DoesMatch(rel[len(rel)-1]) {
		return ResultFilenameMismatch()
	}
	return ResultSuccess()
}
