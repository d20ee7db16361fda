package nodes

import "fmt"

// ErrTempDirUnwritable is returned when the working directory exists but
// cannot be written to, or cannot be created at all.
var ErrTempDirUnwritable = fmt.Errorf("temp directory not writable")

// ScriptError reports a runscript subprocess that exited nonzero or could
// not run to completion.
type ScriptError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ScriptError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("script %q exited with code %d: %s", e.Command, e.ExitCode, e.Stderr)
	}
	if e.Err != nil {
		return fmt.Sprintf("script %q failed: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("script %q exited with code %d", e.Command, e.ExitCode)
}

func (e *ScriptError) Unwrap() error { return e.Err }

// HTTPError reports an httpgetfile request that failed to connect, timed
// out, or answered with a non-2xx status (StatusCode 0 when no response
// was received).
type HTTPError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *HTTPError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *HTTPError) Unwrap() error { return e.Err }
