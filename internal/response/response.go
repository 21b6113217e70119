package response

// ErrorBody is the single-field error object every failing endpoint returns.
type ErrorBody struct {
	Error string `json:"error"`
}

type Status struct {
	Status string `json:"status"`
}

func Error(msg string) ErrorBody {
	return ErrorBody{Error: msg}
}

func OK() Status {
	return Status{Status: "ok"}
}
