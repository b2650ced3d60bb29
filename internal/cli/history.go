package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/legalens/legalens/internal/audit"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent contract analyses from the audit log",
	Long: `List recent analysis runs recorded in the local audit log.

The log stores metadata only (file name, contract type, risk score),
never contract text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()
		if !cfg.Audit.Enabled || cfg.Audit.Path == "" {
			return fmt.Errorf("audit log is disabled")
		}

		log, err := audit.Open(cfg.Audit.Path)
		if err != nil {
			return fmt.Errorf("open audit log: %w", err)
		}
		defer func() { _ = log.Close() }()

		entries, err := log.Recent(historyLimit)
		if err != nil {
			return fmt.Errorf("read audit log: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No analyses recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tFILE\tTYPE\tRISK\tCLAUSES")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.0f/100 %s\t%d\n",
				e.Timestamp.Format("2006-01-02 15:04"),
				e.FileName, e.ContractType, e.RiskScore, e.RiskLevel, e.ClauseCount)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of entries to show")
}
