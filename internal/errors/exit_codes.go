package errors

type ExitCode int

const (
	ExitSuccess      ExitCode = 0
	ExitGeneralError ExitCode = 1
	ExitUsageError   ExitCode = 2
	ExitConfigError  ExitCode = 3
	ExitOutputError  ExitCode = 4
	ExitExportError  ExitCode = 5
)

func (e ExitCode) Int() int {
	return int(e)
}
