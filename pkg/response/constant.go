package response

const (
	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"

	// CodeSuccess is the error_code for successful responses.
	CodeSuccess = 0
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"
	// MessageInternalError is the message for unexpected failures.
	MessageInternalError = "Something went wrong"
)
