// Copyright (c) 2026 Inkpost. All rights reserved.
// Author: h.m.tran.dev@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/hmtran/inkpost/internal/platform/ctxutil"
	"github.com/hmtran/inkpost/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
FormValues returns the submitted key/value pairs of a browser form post.

Description: The public comment and read-later endpoints accept both
classic HTML form submissions (application/x-www-form-urlencoded) and
JSON bodies. JSON bodies are flattened to string values so that both
content types feed the same validation path.

Returns:
  - url.Values: The submitted fields (never nil on success)
  - error: validate.ErrInvalidJSON when the body cannot be parsed
*/
func FormValues(request *http.Request) (url.Values, error) {
	contentType, _, _ := mime.ParseMediaType(request.Header.Get("Content-Type"))

	if contentType == "application/json" {
		fields := map[string]json.RawMessage{}
		if err := json.NewDecoder(request.Body).Decode(&fields); err != nil {
			return nil, validate.ErrInvalidJSON
		}

		values := url.Values{}
		for name, raw := range fields {
			var asString string
			if err := json.Unmarshal(raw, &asString); err == nil {
				values.Set(name, asString)
				continue
			}
			// Non-string scalars (e.g. a numeric post_id) keep their literal form.
			values.Set(name, string(raw))
		}
		return values, nil
	}

	if err := request.ParseForm(); err != nil {
		return nil, validate.ErrInvalidJSON
	}
	return request.PostForm, nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
SessionToken returns the visitor's browser session token.

Returns an empty string when the session middleware did not run
(infrastructure endpoints).
*/
func SessionToken(request *http.Request) string {
	return ctxutil.GetSessionToken(request.Context())
}
