package service

import "time"

// LockoutPolicy maps a failed-attempt count and last-attempt time to a
// lockout state. Pure functions; all mutable state lives in the store.
type LockoutPolicy struct {
	thresholds              []int
	durations               []time.Duration
	permanentBlockThreshold int
}

// NewLockoutPolicy takes parallel slices: attempts at or above thresholds[i]
// lock the account for durations[i]. Thresholds are inclusive lower bounds.
func NewLockoutPolicy(thresholds []int, durations []time.Duration, permanentBlockThreshold int) *LockoutPolicy {
	return &LockoutPolicy{
		thresholds:              thresholds,
		durations:               durations,
		permanentBlockThreshold: permanentBlockThreshold,
	}
}

// CalculateLockoutDuration picks the duration of the highest threshold not
// exceeding attempts. Attempts beyond the last tier keep its duration.
func (p *LockoutPolicy) CalculateLockoutDuration(attempts int) time.Duration {
	if len(p.thresholds) == 0 || attempts < p.thresholds[0] {
		return 0
	}

	index := 0
	for i, threshold := range p.thresholds {
		if attempts < threshold {
			break
		}
		index = i
	}

	return p.durations[index]
}

// IsAccountLocked reports whether a timed lockout is still active.
func (p *LockoutPolicy) IsAccountLocked(attempts int, lastAttempt *time.Time) bool {
	if len(p.thresholds) == 0 || attempts < p.thresholds[0] || lastAttempt == nil {
		return false
	}

	expiry := lastAttempt.Add(p.CalculateLockoutDuration(attempts))

	return time.Now().Before(expiry)
}

// ShouldBlockUser reports whether the attempt count has crossed the permanent
// block threshold. Terminal, independent of lockout timing.
func (p *LockoutPolicy) ShouldBlockUser(attempts int) bool {
	return attempts >= p.permanentBlockThreshold
}

// RemainingLockoutTime is for user-facing messaging only, never control flow.
func (p *LockoutPolicy) RemainingLockoutTime(attempts int, lastAttempt *time.Time) time.Duration {
	if !p.IsAccountLocked(attempts, lastAttempt) {
		return 0
	}

	remaining := time.Until(lastAttempt.Add(p.CalculateLockoutDuration(attempts)))
	if remaining < 0 {
		return 0
	}

	return remaining
}
