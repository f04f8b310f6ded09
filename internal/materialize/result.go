package materialize

// FileSpec is a file to materialize: a slash separated path relative to the
// target root and the exact text it must contain.
type FileSpec struct {
	Path    string
	Content string
}

// Outcome is what happened to a single FileSpec during a run
type Outcome int

const (
	// Created means the file now holds exactly the specified content
	Created Outcome = iota
	// DirectoryError means the parent directory could not be created; no write was attempted
	DirectoryError
	// WriteError means the file could not be opened or written
	WriteError
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case DirectoryError:
		return "directory error"
	case WriteError:
		return "write error"
	default:
		return "unknown"
	}
}

// Result records the outcome for one FileSpec
type Result struct {
	Path    string
	Outcome Outcome
	// Dir is the parent directory of Path, empty when Path has none
	Dir string
	Err error
}

// Report holds one Result per FileSpec, in input order
type Report []Result

// Created returns the number of files written successfully
func (r Report) Created() int {
	count := 0
	for _, result := range r {
		if result.Outcome == Created {
			count++
		}
	}
	return count
}

// Failed returns the number of entries that hit a directory or write error
func (r Report) Failed() int {
	return len(r) - r.Created()
}

// OK reports whether every entry was created
func (r Report) OK() bool {
	return r.Failed() == 0
}
