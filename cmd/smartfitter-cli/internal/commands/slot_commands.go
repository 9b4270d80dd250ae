package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/bootstrap"
)

// SlotsCmd prints the free consultation slots between two dates
func SlotsCmd(cmd *cobra.Command, _ []string) error {
	startFlag, err := requiredString(cmd, "start")
	if err != nil {
		return err
	}
	endFlag, err := requiredString(cmd, "end")
	if err != nil {
		return err
	}
	from, err := time.Parse(time.DateOnly, startFlag)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	to, err := time.Parse(time.DateOnly, endFlag)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}

	env, err := setupEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	services, err := bootstrap.NewServices(cmd.Context(), env.cfg, env.store, env.logger)
	if err != nil {
		return err
	}

	slots, err := services.Availability.Slots(cmd.Context(), from, to)
	if err != nil {
		return err
	}

	loc := services.Rules.Location
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "START (%s)\tEND\tUTC\n", loc)
	for _, s := range slots {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			s.Start.In(loc).Format("Mon 2006-01-02 15:04"),
			s.End.In(loc).Format("15:04"),
			s.Start.UTC().Format(time.RFC3339))
	}
	return w.Flush()
}

// InitSlotCommands registers the slot preview command
func InitSlotCommands(rootCmd *cobra.Command) {
	slotsCmd := &cobra.Command{
		Use:   "slots",
		Short: "Preview free consultation slots from the calendar",
		RunE:  SlotsCmd,
	}
	slotsCmd.Flags().String("start", "", "First day (YYYY-MM-DD)")
	slotsCmd.Flags().String("end", "", "Last day (YYYY-MM-DD)")
	rootCmd.AddCommand(slotsCmd)
}
