package command

import (
	"strings"
	"sync"
)

// MockResponse is a scripted result for MockRunner.
type MockResponse struct {
	Stdout string
	Err    error
}

// MockCall records a single invocation of MockRunner.Run.
type MockCall struct {
	WorkDir string
	Command string
	Args    []string
}

// MockRunner is a Runner that returns scripted responses.
//
// Lookup order for a call: directory-specific exact match, exact match,
// command-only match, wildcard, DefaultResponse.
type MockRunner struct {
	mu sync.Mutex

	// Responses maps a key ("git status --short", "git", "*") to a response.
	Responses map[string]MockResponse

	// DirResponses maps a working directory to its own response table.
	DirResponses map[string]map[string]MockResponse

	// DefaultResponse is returned when nothing else matches.
	DefaultResponse MockResponse

	// Calls records every invocation in order.
	Calls []MockCall
}

// NewMockRunner creates an empty MockRunner.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Responses:    make(map[string]MockResponse),
		DirResponses: make(map[string]map[string]MockResponse),
	}
}

// MockExpectation finishes an OnCommand registration.
type MockExpectation struct {
	runner *MockRunner
	dir    string
	key    string
}

// OnCommand registers a response for an exact command line in any directory.
func (m *MockRunner) OnCommand(name string, args ...string) *MockExpectation {
	return &MockExpectation{runner: m, key: commandKey(name, args)}
}

// OnCommandIn registers a response for an exact command line run in dir.
func (m *MockRunner) OnCommandIn(dir, name string, args ...string) *MockExpectation {
	return &MockExpectation{runner: m, dir: dir, key: commandKey(name, args)}
}

// OnAnyCommand registers a wildcard response.
func (m *MockRunner) OnAnyCommand() *MockExpectation {
	return &MockExpectation{runner: m, key: "*"}
}

// Return sets the scripted result.
func (e *MockExpectation) Return(stdout string, err error) *MockRunner {
	e.runner.mu.Lock()
	defer e.runner.mu.Unlock()

	resp := MockResponse{Stdout: stdout, Err: err}
	if e.dir == "" {
		e.runner.Responses[e.key] = resp
		return e.runner
	}
	if e.runner.DirResponses[e.dir] == nil {
		e.runner.DirResponses[e.dir] = make(map[string]MockResponse)
	}
	e.runner.DirResponses[e.dir][e.key] = resp
	return e.runner
}

// Run implements Runner.
func (m *MockRunner) Run(workDir, name string, args ...string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{WorkDir: workDir, Command: name, Args: args})

	key := commandKey(name, args)
	if resp, ok := m.DirResponses[workDir][key]; ok {
		return resp.Stdout, resp.Err
	}
	if resp, ok := m.Responses[key]; ok {
		return resp.Stdout, resp.Err
	}
	if resp, ok := m.Responses[name]; ok {
		return resp.Stdout, resp.Err
	}
	if resp, ok := m.Responses["*"]; ok {
		return resp.Stdout, resp.Err
	}
	return m.DefaultResponse.Stdout, m.DefaultResponse.Err
}

// WasCalled reports whether a call started with name and the given args.
func (m *MockRunner) WasCalled(name string, args ...string) bool {
	return m.CallCount(name, args...) > 0
}

// CallCount counts calls to name whose arguments start with args.
func (m *MockRunner) CallCount(name string, args ...string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, call := range m.Calls {
		if call.Command != name || len(call.Args) < len(args) {
			continue
		}
		if argsMatch(call.Args[:len(args)], args) {
			count++
		}
	}
	return count
}

func commandKey(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

func argsMatch(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i := range actual {
		if actual[i] != expected[i] {
			return false
		}
	}
	return true
}
