package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/app"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
)

// ProfileCommandHandler encapsulates member review operations.
type ProfileCommandHandler struct {
	env            *environment
	profileService profiles.ProfileService
}

func newProfileCommandHandler(cmd *cobra.Command) (*ProfileCommandHandler, error) {
	env, err := setupEnvironment(cmd)
	if err != nil {
		return nil, err
	}

	profileService, err := app.NewProfileService(env.store.ProfileRepo, env.store.Transactor, env.logger)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}

	return &ProfileCommandHandler{env: env, profileService: profileService}, nil
}

// ListProfilesCmd prints profiles, optionally filtered by status
func ListProfilesCmd(cmd *cobra.Command, _ []string) error {
	status, err := cmd.Flags().GetString("status")
	if err != nil {
		return fmt.Errorf("invalid status flag: %w", err)
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("invalid limit flag: %w", err)
	}

	handler, err := newProfileCommandHandler(cmd)
	if err != nil {
		return err
	}
	defer handler.env.Close()

	query := profiles.NewProfileQuery()
	query.Status = profiles.Status(status)
	query.Limit = limit
	if err := query.Validate(); err != nil {
		return err
	}

	// Operators are trusted, so the listing reads the repository directly.
	list, err := handler.env.store.ProfileRepo.List(cmd.Context(), query)
	if err != nil {
		return err
	}

	return printProfiles(cmd.OutOrStdout(), list)
}

// ApproveCmd approves a profile on behalf of an admin
func ApproveCmd(cmd *cobra.Command, _ []string) error {
	profileID, err := requiredString(cmd, "profile-id")
	if err != nil {
		return err
	}
	adminID, err := requiredString(cmd, "admin-id")
	if err != nil {
		return err
	}

	handler, err := newProfileCommandHandler(cmd)
	if err != nil {
		return err
	}
	defer handler.env.Close()

	profile, err := handler.profileService.Approve(cmd.Context(), adminID, profileID)
	if err != nil {
		return err
	}
	return printProfiles(cmd.OutOrStdout(), []*profiles.Profile{profile})
}

// RejectCmd rejects a profile on behalf of an admin
func RejectCmd(cmd *cobra.Command, _ []string) error {
	profileID, err := requiredString(cmd, "profile-id")
	if err != nil {
		return err
	}
	adminID, err := requiredString(cmd, "admin-id")
	if err != nil {
		return err
	}
	reason, err := requiredString(cmd, "reason")
	if err != nil {
		return err
	}

	handler, err := newProfileCommandHandler(cmd)
	if err != nil {
		return err
	}
	defer handler.env.Close()

	profile, err := handler.profileService.Reject(cmd.Context(), adminID, profileID, reason)
	if err != nil {
		return err
	}
	return printProfiles(cmd.OutOrStdout(), []*profiles.Profile{profile})
}

// SetRoleCmd grants or revokes the admin role
func SetRoleCmd(cmd *cobra.Command, _ []string) error {
	profileID, err := requiredString(cmd, "profile-id")
	if err != nil {
		return err
	}
	role, err := requiredString(cmd, "role")
	if err != nil {
		return err
	}

	handler, err := newProfileCommandHandler(cmd)
	if err != nil {
		return err
	}
	defer handler.env.Close()

	profile, err := handler.profileService.SetRole(cmd.Context(), profileID, profiles.Role(role))
	if err != nil {
		return err
	}
	handler.env.logger.Info("Role updated", "profile_id", profile.ID, "role", profile.Role)
	return printProfiles(cmd.OutOrStdout(), []*profiles.Profile{profile})
}

func printProfiles(out io.Writer, list []*profiles.Profile) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tSTATUS\tROLE\tCREATED")
	for _, p := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Email, p.FullName, p.Status, p.Role, p.DateTimeCreated.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

// InitProfileCommands registers the member review commands
func InitProfileCommands(rootCmd *cobra.Command) {
	listCmd := &cobra.Command{
		Use:   "list-profiles",
		Short: "List member profiles",
		RunE:  ListProfilesCmd,
	}
	listCmd.Flags().String("status", "", "Only profiles in this onboarding status")
	listCmd.Flags().Int("limit", 50, "Maximum number of profiles")
	rootCmd.AddCommand(listCmd)

	approveCmd := &cobra.Command{
		Use:   "approve",
		Short: "Approve a member after the consultation",
		RunE:  ApproveCmd,
	}
	approveCmd.Flags().String("profile-id", "", "Profile to approve")
	approveCmd.Flags().String("admin-id", "", "Admin profile performing the approval")
	rootCmd.AddCommand(approveCmd)

	rejectCmd := &cobra.Command{
		Use:   "reject",
		Short: "Reject a member after the consultation",
		RunE:  RejectCmd,
	}
	rejectCmd.Flags().String("profile-id", "", "Profile to reject")
	rejectCmd.Flags().String("admin-id", "", "Admin profile performing the rejection")
	rejectCmd.Flags().String("reason", "", "Reason shown to the member")
	rootCmd.AddCommand(rejectCmd)

	setRoleCmd := &cobra.Command{
		Use:   "set-role",
		Short: "Grant (admin) or revoke (member) staff rights",
		RunE:  SetRoleCmd,
	}
	setRoleCmd.Flags().String("profile-id", "", "Profile to update")
	setRoleCmd.Flags().String("role", string(profiles.RoleAdmin), "member or admin")
	rootCmd.AddCommand(setRoleCmd)
}
