package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lumen-network/lumen/internal/adgate"
	"github.com/lumen-network/lumen/internal/clock"
	"github.com/lumen-network/lumen/internal/config"
	"github.com/lumen-network/lumen/internal/domain"
	"github.com/lumen-network/lumen/internal/ledger"
	"github.com/lumen-network/lumen/internal/session"
)

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntP("ticks", "t", 3600, "Mining ticks to fast-forward (one tick = one second)")
	simulateCmd.Flags().Int("referrals", 0, "Active referrals to seed (each adds 10% to the rate)")
	simulateCmd.Flags().Bool("boost", false, "Activate a boost before ticking")
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Fast-forward the economy headlessly",
	Long: `Run a mining session for a number of ticks without waiting for wall
time, then print the resulting balance. Useful for demoing rate tuning.`,
	RunE: runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ticks, _ := cmd.Flags().GetInt("ticks")
	referralCount, _ := cmd.Flags().GetInt("referrals")
	withBoost, _ := cmd.Flags().GetBool("boost")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	led, err := ledger.Open()
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer led.Close()

	sess := session.New(cfg, clock.System{}, led, adgate.Nop{}, nil, nil)

	var refs []domain.Referral
	for i := 0; i < referralCount; i++ {
		refs = append(refs, domain.Referral{
			Code:            "lsn-" + uuid.NewString()[:8],
			Active:          true,
			ConsecutiveDays: 3,
		})
	}
	sess.SetReferrals(refs)

	if err := sess.PressPower(cmd.Context()); err != nil {
		return err
	}
	if withBoost {
		if err := sess.PressBoost(cmd.Context()); err != nil {
			return err
		}
	}

	for i := 0; i < ticks; i++ {
		sess.MiningTick()
		sess.BoostTick()
	}

	snap := sess.Snapshot()
	fmt.Fprintf(os.Stdout, "Ticks:          %d\n", ticks)
	fmt.Fprintf(os.Stdout, "Effective rate: %.4f LSN/hr\n", snap.EffectiveRate)
	fmt.Fprintf(os.Stdout, "Balance:        %.4f LSN\n", snap.Balance)
	fmt.Fprintf(os.Stdout, "Remaining:      %s\n", snap.Mining.Remaining)
	fmt.Fprintf(os.Stdout, "Streak:         %d day(s)\n", snap.Streak.ConsecutiveDays)
	return nil
}
