package app

type ProgressReporter interface {
	Increment(label string)
	Done()
}

type Reporter interface {
	Info(message string)
	Warning(message string)
	Problem(message string)
	Built(slug, path string)
	ListTool(slug, layout, title, category string)
	ValidationSummary(errors, warnings int)
	CleanRemoved(path string)
	CleanMissing(path string)
	CleanSummary(removed, missing int)
	Summary(message string)
	Progress(label string, total int) ProgressReporter
}

type noopReporter struct{}

func (n noopReporter) Info(string)                             {}
func (n noopReporter) Warning(string)                          {}
func (n noopReporter) Problem(string)                          {}
func (n noopReporter) Built(string, string)                    {}
func (n noopReporter) ListTool(string, string, string, string) {}
func (n noopReporter) ValidationSummary(int, int)              {}
func (n noopReporter) CleanRemoved(string)                     {}
func (n noopReporter) CleanMissing(string)                     {}
func (n noopReporter) CleanSummary(int, int)                   {}
func (n noopReporter) Summary(string)                          {}
func (n noopReporter) Progress(string, int) ProgressReporter   { return noopProgress{} }

type noopProgress struct{}

func (n noopProgress) Increment(string) {}
func (n noopProgress) Done()            {}

func ensureReporter(reporter Reporter) Reporter {
	if reporter == nil {
		return noopReporter{}
	}
	return reporter
}
