package errors

// Error message constants for the py-imports-group application
const (
	// File processing errors
	ErrMsgFailedToReadFile  = "failed to read file"
	ErrMsgFailedToParseFile = "failed to parse imports"
	ErrMsgFailedToWriteFile = "failed to write file"

	// Directory processing errors
	ErrMsgFailedToCheckPath       = "failed to check path"
	ErrMsgFailedToFindPythonFiles = "failed to find Python files in directory"
	ErrMsgFilesFailedToProcess    = "%d files failed to process"

	// Configuration errors
	ErrMsgFailedToLoadConfig    = "failed to load configuration"
	ErrMsgFailedToResolveConfig = "failed to resolve configuration"

	// Info/warning messages
	WarnMsgProcessingDirWithoutInPlace = "processing directory without --in-place; no files will be modified"
)
