// Copyright (c) 2026 ArtScope. All rights reserved.

// Package respond writes every HTTP response the API produces.
//
// # Envelopes
//
// Success bodies are {"data": ...}. Failures are {"error", "code", "details"}
// built from an [apperr.AppError]; anything else is reported as INTERNAL_ERROR
// with its cause kept out of the body. Session snapshots are also pushed as
// server-sent events through [Stream].
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jenna9192/artscope/internal/platform/apperr"
	"github.com/jenna9192/artscope/internal/platform/ctxutil"
)

// SuccessEnvelope is the JSON envelope for successful responses.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes payload with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes 200 with data in the success envelope.
func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

// Created writes 201 with data in the success envelope.
func Created(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{Data: data})
}

// NoContent writes 204.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error maps err to its status and error envelope. 5xx responses are logged
// with the request's logger, including the cause hidden from the client.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	logger := ctxutil.Logger(request.Context())

	appError := apperr.As(err)
	if appError == nil {
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed", slog.Any("error", err))
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}

// # Event Streams

// ErrStreamingUnsupported is returned by [OpenStream] for writers that cannot flush.
var ErrStreamingUnsupported = errors.New("respond: response writer does not support flushing")

// Stream writes server-sent events, flushing after each one.
type Stream struct {
	writer  http.ResponseWriter
	flusher http.Flusher
}

// OpenStream sends the event-stream headers and a 200 status.
func OpenStream(writer http.ResponseWriter) (*Stream, error) {
	flusher, ok := writer.(http.Flusher)
	if !ok {
		return nil, ErrStreamingUnsupported
	}

	header := writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &Stream{writer: writer, flusher: flusher}, nil
}

// Event writes one named event with a JSON data line.
func (stream *Stream) Event(name string, id uint64, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	frame := make([]byte, 0, len(payload)+64)
	frame = append(frame, "event: "...)
	frame = append(frame, name...)
	frame = append(frame, "\nid: "...)
	frame = strconv.AppendUint(frame, id, 10)
	frame = append(frame, "\ndata: "...)
	frame = append(frame, payload...)
	frame = append(frame, "\n\n"...)

	return stream.write(frame)
}

// Comment writes a comment line; clients ignore it, proxies see traffic.
func (stream *Stream) Comment(text string) error {
	return stream.write([]byte(": " + text + "\n\n"))
}

func (stream *Stream) write(frame []byte) error {
	if _, err := stream.writer.Write(frame); err != nil {
		return err
	}
	stream.flusher.Flush()
	return nil
}
