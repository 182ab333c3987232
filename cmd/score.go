package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/logiflow/teambalance/infra/logger"
)

var scoreInput string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a roster without partitioning it",
	Long:  "score runs ingestion and skill scoring only and prints the derived player records, one row per player.",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "input", "i", "", "roster CSV file (required)")
	_ = scoreCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.New("score")

	players, err := readPlayers(cfg.Roster.Now(), scoreInput, logg)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(os.Stdout)
	if err := cw.Write([]string{"name", "cohort", "position", "birth_year", "age", "skill_score"}); err != nil {
		return err
	}
	for _, p := range players {
		rec := []string{
			p.Name,
			p.Cohort,
			p.Position,
			strconv.Itoa(p.BirthYear),
			strconv.Itoa(p.Age),
			strconv.Itoa(p.SkillScore),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
