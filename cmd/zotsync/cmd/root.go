package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"zotsync/internal/adapters/keychain"
	"zotsync/internal/adapters/logseqcli"
	"zotsync/internal/adapters/zoteroweb"
	"zotsync/internal/application"
	"zotsync/internal/application/commands"
	"zotsync/internal/config"
	"zotsync/internal/domain"
)

// errReported marks a failure whose diagnostics were already printed, so
// Execute only has to set the exit status.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "zotsync [graph-name]",
	Short: "Tag Zotero items referenced in a Logseq graph",
	Long: `zotsync reconciles tagging state between a Logseq graph and a Zotero
library: every Zotero item referenced from the graph gets the "in_logseq"
tag, and items already carrying it are left untouched. Re-running is a
no-op when nothing new was referenced.

Without an argument the graph is auto-detected from ` + "`logseq list`" + `.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSync,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "%s Error: %v\n", failMark(), err)
		}
		os.Exit(1)
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	printBanner("Logseq to Zotero Sync")
	fmt.Println()

	store := keychain.NewStore(config.ServiceName)
	loadCmd := commands.NewLoadCredentialsCommand(store, config.KeyLibraryID, config.KeyAPIKey)
	creds, err := loadCmd.Execute(cmd.Context())
	if err != nil {
		if errors.Is(err, application.ErrMissingCredentials) {
			fmt.Printf("%s Error: Credentials not found in Keychain\n", failMark())
			fmt.Println()
			fmt.Println("Store your Zotero credentials first:")
			fmt.Println("  zotsync setup <library-id> <api-key>")
			fmt.Println()
			return errReported
		}
		return err
	}

	source := logseqcli.NewGraph(
		logseqcli.WithBinary(config.LogseqBin()),
		logseqcli.WithProperty(config.ZoteroProperty()),
	)
	library := zoteroweb.NewClient(config.ZoteroAPI(), creds.LibraryID, creds.APIKey)

	syncCmd := commands.NewSyncCommand(source, library, config.TagName)
	if len(args) > 0 {
		syncCmd.Graph = args[0]
	}
	syncCmd.Progress = func(format string, args ...any) {
		fmt.Printf(format+"\n", args...)
	}
	syncCmd.OnWorkSet = printWorkSet
	syncCmd.TagProgress = printTagProgress

	result, err := syncCmd.Execute(cmd.Context())
	if err != nil {
		if errors.Is(err, application.ErrNoGraph) {
			fmt.Printf("%s Error: Could not auto-detect graph. Please provide graph name.\n", failMark())
			fmt.Println()
			fmt.Println("Usage: zotsync [graph-name]")
			return errReported
		}
		return err
	}

	if result.NothingToDo() {
		fmt.Println()
		fmt.Printf("%s All Logseq items are already tagged in Zotero!\n", okMark())
		fmt.Println("  No action needed.")
		return nil
	}

	printSummary(result.Report, result.WorkSet.Len())
	if !result.OK() {
		return errReported
	}
	return nil
}

func printWorkSet(work domain.KeySet) {
	if work.Len() == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("Found %d items that need tagging:\n", work.Len())
	for _, key := range work.Sorted() {
		fmt.Printf("  - %s\n", key)
	}
	fmt.Println()
	fmt.Printf("Tagging %d items with %q...\n", work.Len(), config.TagName)
	fmt.Println()
}

func printTagProgress(i, n int, res domain.TagResult) {
	switch res.Status {
	case domain.StatusTagged:
		fmt.Printf("[%d/%d] %s %s: %s\n", i, n, okMark(), res.Key, res.Title)
	case domain.StatusAlreadyTagged:
		fmt.Printf("[%d/%d] %s %s (already tagged)\n", i, n, skipMark(), res.Key)
	case domain.StatusFailed:
		fmt.Printf("[%d/%d] %s %s: %s\n", i, n, failMark(), res.Key, res.Err)
	}
}

func printSummary(report *domain.TagReport, total int) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Summary:")
	fmt.Printf("  Successful: %d/%d\n", report.Successful(), total)
	fmt.Printf("  Failed: %d/%d\n", report.Failed(), total)
	fmt.Printf("  Tag: %s\n", config.TagName)
	fmt.Println(strings.Repeat("=", 60))

	if failures := report.Failures(); len(failures) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, res := range failures {
			fmt.Printf("  %s: %s\n", res.Key, res.Err)
		}
	}
}
