package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/portfolio/core/config"
	"github.com/dmitrymomot/portfolio/integration/database/sqlite"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "List archived contact messages",
	RunE:  runMessages,
}

var (
	messagesLimit int
	messagesJSON  bool
)

func init() {
	messagesCmd.Flags().IntVarP(&messagesLimit, "limit", "n", 20, "Maximum number of messages, newest first (0 for all)")
	messagesCmd.Flags().BoolVar(&messagesJSON, "json", false, "Print messages as JSON")
	rootCmd.AddCommand(messagesCmd)
}

func runMessages(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	log, err := newLogger()
	if err != nil {
		return err
	}

	var dbCfg sqlite.Config
	if err := config.Load(&dbCfg); err != nil {
		return err
	}
	db, err := sqlite.Open(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := sqlite.Migrate(ctx, db, log); err != nil {
		return err
	}

	records, err := sqlite.NewContactStore(db).List(ctx, messagesLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if messagesJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tSTATUS\tLOCALE\tFROM\tSUBJECT")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s <%s>\t%s\n",
			rec.CreatedAt.Format(time.DateTime),
			rec.Status,
			rec.Locale,
			rec.Message.Name,
			rec.Message.Email,
			rec.Message.Subject)
	}
	return tw.Flush()
}
