package model

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// FieldError reports a validation failure at a field path such as
// "interactions[2].target.tagName".
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

func (e *FieldError) Unwrap() error { return ErrInvalidInput }

// within prefixes the field path of a FieldError.
func within(prefix string, err error) error {
	var fe *FieldError
	if !errors.As(err, &fe) {
		return err
	}
	field := prefix
	if fe.Field != "" {
		field = prefix + "." + fe.Field
	}
	return &FieldError{Field: field, Msg: fe.Msg}
}

// Validate checks the required fields of an element descriptor.
func (e Element) Validate() error {
	if e.TagName == "" {
		return &FieldError{Field: "tagName", Msg: "required"}
	}
	return nil
}

// Validate checks a captured exchange. An empty or malformed URL is accepted;
// mock generation skips it.
func (r NetworkRequest) Validate() error {
	if r.Method == "" {
		return &FieldError{Field: "method", Msg: "required"}
	}
	if !r.Response.Body.IsDefined() {
		return &FieldError{Field: "response.body", Msg: "required"}
	}
	if r.Response.Status < 0 {
		return &FieldError{Field: "response.status", Msg: fmt.Sprintf("invalid status %d", r.Response.Status)}
	}
	return nil
}

// Validate checks an interaction. Navigate events do not need a target.
func (i Interaction) Validate() error {
	switch i.Type {
	case Click, TypeText:
		if err := i.Target.Validate(); err != nil {
			return within("target", err)
		}
	case Navigate:
	case "":
		return &FieldError{Field: "type", Msg: "required"}
	default:
		return &FieldError{Field: "type", Msg: fmt.Sprintf("unknown interaction type %q (use click, type, or navigate)", i.Type)}
	}
	return nil
}

// Validate checks every request in the capture.
func (c NetworkCapture) Validate() error {
	if c.Requests == nil {
		return &FieldError{Field: "requests", Msg: "required"}
	}
	return validateRequests("requests", c.Requests)
}

// Validate checks every interaction and network call in the recording.
func (r Recording) Validate() error {
	if r.Interactions == nil {
		return &FieldError{Field: "interactions", Msg: "required"}
	}
	for idx, in := range r.Interactions {
		if err := in.Validate(); err != nil {
			return within(fmt.Sprintf("interactions[%d]", idx), err)
		}
	}
	return validateRequests("networkCalls", r.NetworkCalls)
}

func validateRequests(field string, requests []NetworkRequest) error {
	for idx, req := range requests {
		if err := req.Validate(); err != nil {
			return within(fmt.Sprintf("%s[%d]", field, idx), err)
		}
	}
	return nil
}
