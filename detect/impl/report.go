package impl

import (
	"errors"
	"fmt"
	"io"

	"google.golang.org/grpc/status"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Reporter is the only place that writes results and errors.
// Result lines go to Stdout, errors go to Stderr.
type Reporter struct {
	Stdout io.Writer
	Stderr io.Writer
}

func NewReporter(stdout io.Writer, stderr io.Writer) *Reporter {
	return &Reporter{Stdout: stdout, Stderr: stderr}
}

// Print writes the result lines in order.
func (r *Reporter) Print(result Result) {
	for _, line := range result.Lines {
		fmt.Fprintln(r.Stdout, line)
	}
}

// Fail writes err, if any, and returns the process exit code for it.
func (r *Reporter) Fail(err error) int {
	if err == nil {
		return ExitOK
	}
	fmt.Fprintf(r.Stderr, "Error: %s\n", describe(err))
	return ExitCode(err)
}

// Report prints the result followed by the error.
func (r *Reporter) Report(result Result, err error) int {
	r.Print(result)
	return r.Fail(err)
}

func ExitCode(err error) int {
	var usageErr *UsageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usageErr):
		return ExitUsage
	default:
		return ExitError
	}
}

func describe(err error) string {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Message
	}
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Error()
	}
	// Transport and authentication failures from the client libraries carry a gRPC status.
	if s, ok := status.FromError(err); ok {
		return fmt.Sprintf("%s (code: %s)", s.Message(), s.Code())
	}
	return err.Error()
}
