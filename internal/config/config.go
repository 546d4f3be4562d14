// Package config loads the lumen daemon configuration from a TOML file,
// overlaying user values on top of the economy defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full daemon configuration.
type Config struct {
	API      APIConfig      `toml:"api"`
	Mining   MiningConfig   `toml:"mining"`
	Boost    BoostConfig    `toml:"boost"`
	Bonus    BonusConfig    `toml:"bonus"`
	Referral ReferralConfig `toml:"referral"`
	Social   SocialConfig   `toml:"social"`
}

// APIConfig controls the HTTP surface consumed by the UI.
type APIConfig struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	MetricsEnabled bool   `toml:"metrics_enabled"`
}

// MiningConfig tunes the mining session engine.
type MiningConfig struct {
	BaseRate float64 `toml:"base_rate"` // LSN per hour
	// FullDayReset swaps the shipped 23:59:59 post-finish wrap for a clean
	// full-day reset.
	FullDayReset bool `toml:"full_day_reset"`
	// TimezoneOffsetMinutes fixes the calendar used for all daily gating.
	TimezoneOffsetMinutes int `toml:"timezone_offset_minutes"`
}

// BoostConfig tunes the boost engine.
type BoostConfig struct {
	DurationSeconds int `toml:"duration_seconds"`
	CooldownMinutes int `toml:"cooldown_minutes"`
	DailyLimit      int `toml:"daily_limit"`
	// ResetUsesDaily opts into clearing the daily usage counter at the
	// calendar day boundary. The shipped economy never resets it.
	ResetUsesDaily bool `toml:"reset_uses_daily"`
}

// BonusConfig tunes daily and weekly bonus issuance.
type BonusConfig struct {
	DailyMin           int `toml:"daily_min"`
	DailyMax           int `toml:"daily_max"`
	WeeklyMin          int `toml:"weekly_min"`
	WeeklyMax          int `toml:"weekly_max"`
	WeeklyStreakTarget int `toml:"weekly_streak_target"`
}

// MilestoneConfig seeds one referral milestone.
type MilestoneConfig struct {
	Target    int `toml:"target"`
	MinReward int `toml:"min_reward"`
	MaxReward int `toml:"max_reward"`
}

// ReferralConfig seeds the referral milestone ladder.
type ReferralConfig struct {
	Milestones []MilestoneConfig `toml:"milestones"`
}

// TaskConfig seeds one social task.
type TaskConfig struct {
	ID     string `toml:"id"`
	Name   string `toml:"name"`
	Reward int    `toml:"reward"`
}

// SocialConfig seeds the social task list.
type SocialConfig struct {
	Tasks []TaskConfig `toml:"tasks"`
}

// DefaultConfig returns the shipped economy defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Host:           "127.0.0.1",
			Port:           7420,
			MetricsEnabled: true,
		},
		Mining: MiningConfig{
			BaseRate:              3.15,
			TimezoneOffsetMinutes: 330, // IST, UTC+5:30
		},
		Boost: BoostConfig{
			DurationSeconds: 1800,
			CooldownMinutes: 30,
			DailyLimit:      5,
		},
		Bonus: BonusConfig{
			DailyMin:           10,
			DailyMax:           15,
			WeeklyMin:          100,
			WeeklyMax:          130,
			WeeklyStreakTarget: 7,
		},
		Referral: ReferralConfig{
			Milestones: []MilestoneConfig{
				{Target: 1, MinReward: 20, MaxReward: 30},
				{Target: 3, MinReward: 50, MaxReward: 75},
				{Target: 5, MinReward: 90, MaxReward: 120},
				{Target: 10, MinReward: 200, MaxReward: 260},
			},
		},
		Social: SocialConfig{
			Tasks: []TaskConfig{
				{ID: "follow_x", Name: "Follow us on X", Reward: 5},
				{ID: "join_telegram", Name: "Join the Telegram channel", Reward: 5},
				{ID: "subscribe_youtube", Name: "Subscribe on YouTube", Reward: 8},
			},
		},
	}
}

// Load reads a TOML config file on top of the defaults. A missing file is
// not an error — the defaults stand.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}
