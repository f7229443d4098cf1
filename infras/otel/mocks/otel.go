// Package mocks provides a tracer that records nothing, for unit tests.
package mocks

import (
	"context"
	"mallbook/infras/otel"
)

type silentTracer struct{}

type silentScope struct{}

func NewOtel() otel.Otel {
	return silentTracer{}
}

func NewScope() otel.Scope {
	return silentScope{}
}

func (silentTracer) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, silentScope{}
}

func (silentTracer) Shutdown(context.Context) error { return nil }

func (silentScope) End() {}
func (silentScope) TraceError(error) {}
func (silentScope) TraceIfError(error) {}
func (silentScope) AddEvent(string) {}
func (silentScope) SetAttribute(string, any) {}
func (silentScope) SetAttributes(map[string]any) {}
