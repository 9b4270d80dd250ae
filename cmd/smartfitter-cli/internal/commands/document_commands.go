package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/app"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
)

// PublishDocumentCmd stores a new NDA or contract version read from a file
func PublishDocumentCmd(cmd *cobra.Command, _ []string) error {
	kind, err := requiredString(cmd, "kind")
	if err != nil {
		return err
	}
	title, err := requiredString(cmd, "title")
	if err != nil {
		return err
	}
	contentFile, err := requiredString(cmd, "content-file")
	if err != nil {
		return err
	}
	adminID, err := requiredString(cmd, "admin-id")
	if err != nil {
		return err
	}

	content, err := os.ReadFile(contentFile)
	if err != nil {
		return fmt.Errorf("failed to read content file: %w", err)
	}

	env, err := setupEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	documentService, err := app.NewDocumentService(env.store.DocumentRepo, env.store.SignatureRepo, env.store.ProfileRepo, env.store.Transactor, env.logger)
	if err != nil {
		return fmt.Errorf("failed to create document service: %w", err)
	}

	doc, err := documentService.Publish(cmd.Context(), adminID, documents.Kind(kind), title, string(content))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "published %s version %d (%s)\n", doc.Kind, doc.Version, doc.ID)
	return nil
}

// InitDocumentCommands registers the agreement commands
func InitDocumentCommands(rootCmd *cobra.Command) {
	publishCmd := &cobra.Command{
		Use:   "publish-document",
		Short: "Publish a new NDA or contract version",
		RunE:  PublishDocumentCmd,
	}
	publishCmd.Flags().String("kind", "", "nda or contract")
	publishCmd.Flags().String("title", "", "Title shown to members")
	publishCmd.Flags().String("content-file", "", "File holding the agreement text")
	publishCmd.Flags().String("admin-id", "", "Admin profile publishing the document")
	rootCmd.AddCommand(publishCmd)
}
