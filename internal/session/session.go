// Package session owns the single in-memory state container the engines
// operate on and runs the per-second timers that drive them. Every
// operation runs to completion under one lock, so the timer callbacks and
// user intents interleave atomically — the Go analogue of the
// single-threaded event loop this economy was designed for.
package session

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lumen-network/lumen/internal/adgate"
	"github.com/lumen-network/lumen/internal/clock"
	"github.com/lumen-network/lumen/internal/config"
	"github.com/lumen-network/lumen/internal/domain"
	"github.com/lumen-network/lumen/internal/engine"
	"github.com/lumen-network/lumen/internal/ledger"
	"github.com/lumen-network/lumen/internal/metrics"
)

// Publisher receives every Decision the session emits. The API layer's SSE
// hub implements it; a nil publisher drops decisions.
type Publisher interface {
	Publish(domain.Decision)
}

// Session is the single-user economy state machine.
type Session struct {
	mu   sync.Mutex
	cfg  config.Config
	clk  clock.Clock
	cal  clock.Calendar
	led  *ledger.Ledger
	gate adgate.Gate
	pub  Publisher

	mining     engine.Mining
	boost      engine.Boost
	bonus      engine.Bonus
	milestones engine.Milestones

	miningState    domain.MiningSession
	boostState     domain.BoostSession
	streak         domain.StreakRecord
	lastDailyClaim domain.CalendarDate
	milestoneList  []domain.ReferralMilestone
	tasks          []domain.SocialTask
	referrals      []domain.Referral
	referralCode   string
	sessionEarned  float64 // LSN accrued since the session (re)started

	cancel context.CancelFunc
	done   chan struct{}
}

// New builds a session from config. A nil rng seeds from the wall clock;
// tests inject a fixed source.
func New(cfg config.Config, clk clock.Clock, led *ledger.Ledger, gate adgate.Gate, pub Publisher, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cal := clock.NewCalendar(cfg.Mining.TimezoneOffsetMinutes)

	s := &Session{
		cfg:  cfg,
		clk:  clk,
		cal:  cal,
		led:  led,
		gate: gate,
		pub:  pub,
		mining: engine.Mining{
			FullDayReset: cfg.Mining.FullDayReset,
		},
		boost: engine.Boost{
			DurationSeconds: cfg.Boost.DurationSeconds,
			Cooldown:        time.Duration(cfg.Boost.CooldownMinutes) * time.Minute,
			DailyLimit:      cfg.Boost.DailyLimit,
			ResetUsesDaily:  cfg.Boost.ResetUsesDaily,
			DateOf:          cal.DateOf,
		},
		bonus: engine.Bonus{
			DailyMin: cfg.Bonus.DailyMin, DailyMax: cfg.Bonus.DailyMax,
			WeeklyMin: cfg.Bonus.WeeklyMin, WeeklyMax: cfg.Bonus.WeeklyMax,
			WeeklyStreakTarget: cfg.Bonus.WeeklyStreakTarget,
			Rand:               rng,
		},
		milestones:   engine.Milestones{Rand: rng},
		miningState:  domain.MiningSession{Remaining: domain.FullDay},
		referralCode: "lsn-" + uuid.NewString()[:8],
	}

	for _, m := range cfg.Referral.Milestones {
		s.milestoneList = append(s.milestoneList, domain.ReferralMilestone{
			ID:        fmt.Sprintf("m-%d", m.Target),
			Target:    m.Target,
			MinReward: m.MinReward,
			MaxReward: m.MaxReward,
			Status:    domain.MilestonePending,
		})
	}
	for _, tk := range cfg.Social.Tasks {
		id := tk.ID
		if id == "" {
			id = uuid.NewString()
		}
		s.tasks = append(s.tasks, domain.SocialTask{
			ID: id, Name: tk.Name, Reward: tk.Reward, Status: domain.TaskPending,
		})
	}
	return s
}

// ─── Timers ─────────────────────────────────────────────────────────────────

// Start launches the three 1 Hz periodic tasks: the mining tick, the boost
// tick, and the UI refresh pulse. Each fires on its own ticker; ordering
// between them within the same second is unspecified.
func (s *Session) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx)
	log.Printf("[session] timers started")
}

// Stop cancels the periodic tasks and waits for them to drain, so no timer
// can mutate state after its owning session is gone.
func (s *Session) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	log.Printf("[session] timers stopped")
}

func (s *Session) run(ctx context.Context) {
	defer close(s.done)

	miningTicker := time.NewTicker(time.Second)
	defer miningTicker.Stop()
	boostTicker := time.NewTicker(time.Second)
	defer boostTicker.Stop()
	refreshTicker := time.NewTicker(time.Second)
	defer refreshTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-miningTicker.C:
			s.MiningTick()
		case <-boostTicker.C:
			s.BoostTick()
		case <-refreshTicker.C:
			s.RefreshTick()
		}
	}
}

// MiningTick advances the mining countdown by one second, accruing one
// per-second fraction of the effective rate.
func (s *Session) MiningTick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	metrics.TicksTotal.WithLabelValues("mining").Inc()

	if !s.miningState.Active {
		return
	}

	rate := s.effectiveRateLocked()
	res := s.mining.Tick(s.miningState.Remaining, rate)
	s.miningState.Remaining = res.Next
	s.sessionEarned += res.RewardDelta
	s.led.Accrue(res.RewardDelta)
	s.publish(domain.BalanceDelta(res.RewardDelta, "mining", s.clk.Now()))

	if res.Finished {
		s.miningState.Active = false
		s.settleSessionLocked("countdown complete")
		s.publish(domain.SessionFinished(s.clk.Now()))
		log.Printf("[session] mining session finished, countdown reset to %s", s.miningState.Remaining)
	}
}

// BoostTick advances the boost countdown by one second.
func (s *Session) BoostTick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	metrics.TicksTotal.WithLabelValues("boost").Inc()

	if !s.boostState.Active {
		return
	}
	next, finished := s.boost.Tick(s.boostState.RemainingSeconds)
	s.boostState.RemainingSeconds = next
	if finished {
		s.boostState.Active = false
		s.publish(domain.ShowInfo("Boost ended", "Your boosted rate has expired.", s.clk.Now()))
	}
}

// RefreshTick is the general UI refresh pulse; it keeps the exported
// balance gauge current.
func (s *Session) RefreshTick() {
	metrics.TicksTotal.WithLabelValues("refresh").Inc()
	metrics.Balance.Set(s.led.Balance())
}

// ─── User Intents ───────────────────────────────────────────────────────────

// PressPower toggles the mining session. An active session stops
// immediately; an inactive one starts after the ad gate, recording the
// day's streak participation once.
func (s *Session) PressPower(ctx context.Context) error {
	s.mu.Lock()
	press := engine.PressPower(s.miningState.Active)
	if press.Stop {
		s.miningState.Active = false
		s.settleSessionLocked("stopped by user")
		s.publish(domain.ShowInfo("Mining stopped", "Your mining session has been stopped.", s.clk.Now()))
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	// The ad plays outside the lock: nothing below the UI's modal overlay
	// prevents another intent from landing during the delay, matching the
	// shipped behavior.
	if err := s.gate.Present(ctx, "mining"); err != nil {
		return fmt.Errorf("ad gate: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.miningState.Active = true
	s.streak = engine.RecordParticipation(s.streak, s.cal.DateOf(s.clk.Now()))
	s.publish(domain.ShowInfo("Mining started", "You are now earning LSN.", s.clk.Now()))
	log.Printf("[session] mining started, streak=%d", s.streak.ConsecutiveDays)
	return nil
}

// PressBoost activates the boost if its preconditions hold. Re-pressing
// while the boost runs surfaces its countdown instead of an error.
func (s *Session) PressBoost(ctx context.Context) error {
	s.mu.Lock()
	now := s.clk.Now()
	verdict, rej := s.boost.CanActivate(s.boostState, s.miningState.Active, now)
	if rej != nil {
		s.mu.Unlock()
		return s.reject(rej)
	}
	if verdict == engine.ShowStatus {
		s.publish(domain.BoostStatus(s.boostState.RemainingSeconds, now))
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	if err := s.gate.Present(ctx, "boost"); err != nil {
		return fmt.Errorf("ad gate: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.boostState = s.boost.Activate(s.boostState, s.clk.Now())
	metrics.BoostActivations.Inc()
	s.publish(domain.ShowInfo("Boost active", "Mining rate doubled for 30 minutes.", s.clk.Now()))
	log.Printf("[session] boost activated, uses today=%d", s.boostState.UsesToday)
	return nil
}

// ClaimDailyBonus claims the once-per-calendar-day bonus.
func (s *Session) ClaimDailyBonus(ctx context.Context) error {
	s.mu.Lock()
	today := s.cal.DateOf(s.clk.Now())
	reward, rej := s.bonus.ClaimDaily(s.lastDailyClaim, today)
	if rej != nil {
		s.mu.Unlock()
		return s.reject(rej)
	}
	s.mu.Unlock()

	if err := s.gate.Present(ctx, "daily_bonus"); err != nil {
		return fmt.Errorf("ad gate: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastDailyClaim = today
	return s.grantLocked("daily_bonus", float64(reward), "Daily bonus", "daily bonus")
}

// ClaimWeeklyBonus claims the streak-gated weekly bonus and fully resets
// the streak to 0. The daily bonus date is untouched.
func (s *Session) ClaimWeeklyBonus(ctx context.Context) error {
	s.mu.Lock()
	reward, rej := s.bonus.ClaimWeekly(s.streak.ConsecutiveDays)
	if rej != nil {
		s.mu.Unlock()
		return s.reject(rej)
	}
	s.mu.Unlock()

	if err := s.gate.Present(ctx, "weekly_bonus"); err != nil {
		return fmt.Errorf("ad gate: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.streak.ConsecutiveDays = 0
	return s.grantLocked("weekly_bonus", float64(reward), "Weekly bonus", "7-day streak bonus")
}

// ClaimMilestone claims a referral milestone by ID.
func (s *Session) ClaimMilestone(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.milestoneList {
		if s.milestoneList[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrUnknownMilestone, id)
	}
	valid := engine.ValidReferralCount(s.referrals)
	updated, reward, rej := s.milestones.Claim(s.milestoneList[idx], valid)
	if rej != nil {
		s.mu.Unlock()
		return s.reject(rej)
	}
	s.mu.Unlock()

	if err := s.gate.Present(ctx, "milestone"); err != nil {
		return fmt.Errorf("ad gate: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.milestoneList[idx] = updated
	return s.grantLocked("milestone:"+id, float64(reward), "Milestone reached", "referral milestone")
}

// AdvanceSocialTask moves a social task one step along its lifecycle. The
// reward lands on the final step; verification itself pays nothing.
func (s *Session) AdvanceSocialTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		updated, reward, rej := engine.AdvanceSocialTask(s.tasks[i])
		if rej != nil {
			return s.reject(rej)
		}
		s.tasks[i] = updated
		if reward > 0 {
			return s.grantLocked("social:"+id, float64(reward), "Task complete", updated.Name)
		}
		s.publish(domain.ShowInfo("Verifying", "We are verifying your task.", s.clk.Now()))
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrUnknownTask, id)
}

// SetReferrals replaces the referral list reported by the upstream feed.
func (s *Session) SetReferrals(refs []domain.Referral) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.referrals = append([]domain.Referral(nil), refs...)
}

// ─── Internals ──────────────────────────────────────────────────────────────

// effectiveRateLocked computes the current LSN/hr accrual rate.
func (s *Session) effectiveRateLocked() float64 {
	return domain.EffectiveRate(s.cfg.Mining.BaseRate, engine.ActiveReferralCount(s.referrals), s.boostState.Active)
}

// settleSessionLocked journals the mining accrual gathered since the
// session started. The balance already carries the ticks; this writes the
// single EARN row that represents them.
func (s *Session) settleSessionLocked(reason string) {
	if s.sessionEarned <= 0 {
		return
	}
	if err := s.led.Settle(domain.TxEarn, "mining", s.sessionEarned, reason); err != nil {
		log.Printf("[session] settle mining earnings: %v", err)
	}
	metrics.RewardsTotal.WithLabelValues("mining").Inc()
	metrics.RewardAmount.WithLabelValues("mining").Add(s.sessionEarned)
	s.sessionEarned = 0
}

// grantLocked credits a discrete reward and publishes the matching
// decisions.
func (s *Session) grantLocked(source string, amount float64, title, description string) error {
	if _, err := s.led.Credit(domain.TxBonus, source, amount, description); err != nil {
		return fmt.Errorf("credit %s: %w", source, err)
	}
	metrics.RewardsTotal.WithLabelValues(source).Inc()
	metrics.RewardAmount.WithLabelValues(source).Add(amount)
	now := s.clk.Now()
	s.publish(domain.BalanceDelta(amount, source, now))
	s.publish(domain.ShowInfo(title, fmt.Sprintf("+%.0f LSN — %s.", amount, description), now))
	return nil
}

// reject counts and returns a rejection.
func (s *Session) reject(r *domain.Rejection) error {
	metrics.RejectionsTotal.WithLabelValues(string(r.Code)).Inc()
	return r
}

func (s *Session) publish(d domain.Decision) {
	if s.pub != nil {
		s.pub.Publish(d)
	}
}
