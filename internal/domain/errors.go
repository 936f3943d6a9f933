package domain

import "errors"

// Error taxonomy for the generation pipeline. Callers classify failures with
// errors.Is; detail is attached by wrapping with fmt.Errorf("...: %w", ...).
var (
	// ErrUnsupportedFileType is returned for file uploads whose extension is
	// neither .txt nor .docx. Previously loaded content is left untouched.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrExtractionFailed is returned when a supported file cannot be read or
	// its text cannot be extracted. Previously loaded content is cleared.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrEmptyDocument is returned when generation is requested with no
	// usable document content.
	ErrEmptyDocument = errors.New("document is empty")

	// ErrEmptyResponse is returned when the model produced no output text.
	ErrEmptyResponse = errors.New("empty model response")

	// ErrInvalidResponseFormat is returned when the model output is not valid
	// JSON or does not match the expected scenario shape.
	ErrInvalidResponseFormat = errors.New("invalid response format")

	// ErrServiceUnavailable is returned for transport, auth, quota and
	// timeout failures talking to the generation service.
	ErrServiceUnavailable = errors.New("generation service unavailable")

	// ErrGenerationInFlight is returned when a generation attempt is started
	// while another one is still running.
	ErrGenerationInFlight = errors.New("generation already in progress")

	// ErrNothingToExport is returned when an export is requested but there is
	// no content to write.
	ErrNothingToExport = errors.New("nothing to export")

	// ErrEntryNotFound is returned when a history entry id does not exist.
	ErrEntryNotFound = errors.New("history entry not found")
)
