package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var quotaCmd = &cobra.Command{
	Use:         "quota",
	Short:       "Show the remaining API calls",
	Annotations: map[string]string{annotationService: "true"},
	Args:        cobra.NoArgs,
	RunE:        runQuota,
}

func init() {
	rootCmd.AddCommand(quotaCmd)
}

func runQuota(cmd *cobra.Command, _ []string) error {
	if portfolioService == nil {
		return errors.New("portfolio service not configured")
	}

	q, err := portfolioService.Quota(cmd.Context())
	if err != nil {
		return err
	}

	if q.Unlimited() {
		cmd.Println("Quota: unlimited")
		return nil
	}

	cmd.Printf("Quota: %d of %d calls remaining\n", q.Remaining, q.Limit)
	if !q.ResetAt.IsZero() {
		cmd.Printf("Resets at %s (in %s)\n",
			q.ResetAt.Local().Format(time.RFC1123),
			time.Until(q.ResetAt).Round(time.Second))
	}
	if q.Exhausted() {
		cmd.Println("No calls remain; generate will fail until the quota resets.")
	}
	return nil
}
