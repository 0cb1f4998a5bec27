// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

// serverHealthWorker periodically probes the server and records its
// availability in the client log. The terminal UI owns the screen, so the
// worker never prints; the log file is the place to look when the client
// feels unresponsive.
type serverHealthWorker struct {
	ctx      context.Context
	users    service.ClientUserService
	interval time.Duration
	logger   *logger.Logger
}

func newServerHealthWorker(ctx context.Context, users service.ClientUserService, interval time.Duration, log *logger.Logger) *serverHealthWorker {
	return &serverHealthWorker{
		ctx:      ctx,
		users:    users,
		interval: interval,
		logger:   log,
	}
}

// Run starts the polling goroutine and returns immediately. The goroutine
// stops when the context captured at construction is cancelled.
func (w *serverHealthWorker) Run() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				version, err := w.users.ServerVersion(w.ctx)
				if err != nil {
					w.logger.Warn().Err(err).Msg("server is unavailable")
					continue
				}
				w.logger.Debug().Str("server_version", version).Msg("server is up")
			}
		}
	}()
}
