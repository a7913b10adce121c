// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package logging carries a logrus logger in a context.Context.
//
// Code which wants to log takes a ctx and calls Errorf(ctx, ...) etc.; the
// program entry point decides where that goes with Set. Without a logger in
// the context, logging is discarded.
package logging

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

type loggerKey struct{}

var discard = func() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}()

// Set returns a context which logs to l.
func Set(ctx context.Context, l *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// Get returns the logger installed in ctx.
func Get(ctx context.Context) *logrus.Entry {
	if l, ok := ctx.Value(loggerKey{}).(*logrus.Entry); ok {
		return l
	}
	return discard
}

// SetField returns a context whose logger carries the given field.
func SetField(ctx context.Context, key string, value any) context.Context {
	return Set(ctx, Get(ctx).WithField(key, value))
}

// New builds a text logger writing to w.
func New(w io.Writer, level logrus.Level) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return logrus.NewEntry(l)
}

func Debugf(ctx context.Context, format string, args ...any) {
	Get(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	Get(ctx).Infof(format, args...)
}

func Warningf(ctx context.Context, format string, args ...any) {
	Get(ctx).Warningf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	Get(ctx).Errorf(format, args...)
}
