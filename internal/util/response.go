package util

type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}

// FieldErrors wraps form validation failures for a 400 response body.
func FieldErrors(errs ValidationErrors) Envelope {
	return Envelope{"errors": []FieldError(errs)}
}
