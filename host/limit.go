// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/canvasd/fault"
)

// a rate of zero or less admits everything
func newLimiter(requestRate float64, burst int) *rate.Limiter {
	if requestRate <= 0 {
		return rate.NewLimiter(rate.Inf, burst)
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(requestRate), burst)
}

// SetRequestLimit - replace the admission limit, calls already waiting
// keep their reservation on the previous limiter
func (h *Host) SetRequestLimit(requestRate float64, burst int) {
	limiter := newLimiter(requestRate, burst)

	h.limitLock.Lock()
	h.limiter = limiter
	h.limitLock.Unlock()

	h.log.Infof("request limit: %v  burst: %d", limiter.Limit(), limiter.Burst())
}

// wait for the limiter, giving up if the context ends first
func (h *Host) admit(ctx context.Context) error {
	h.limitLock.RLock()
	r := h.limiter.Reserve()
	h.limitLock.RUnlock()

	if !r.OK() {
		return fault.RateLimited
	}

	delay := r.Delay()
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
