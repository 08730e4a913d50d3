package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unowned-ai/reflections/pkg/insights"
	"github.com/unowned-ai/reflections/pkg/share"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Compose a shareable summary of a reflection and copy it to the clipboard",
	Long: `Compose the same summary the journal form shares, from the given fields,
print it and copy it to the system clipboard. Nothing is saved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := insights.ShareText(draftFromFlags(cmd, time.Now()))
		fmt.Fprintln(cmd.OutOrStdout(), text)

		if printOnly, _ := cmd.Flags().GetBool("print-only"); printOnly {
			return nil
		}
		if err := (share.Clipboard{}).Share(cmd.Context(), text); err != nil {
			if errors.Is(err, share.ErrUnavailable) {
				logger.Warn(cmd.Context(), "clipboard unavailable, text printed only", zap.Error(err))
				return nil
			}
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
		return nil
	},
}

var defineCmd = &cobra.Command{
	Use:   "define <word>",
	Short: "Print a web lookup URL for a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url, ok := insights.DefineURL(args[0])
		if !ok {
			return errors.New("a non-empty word is required")
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

func initShareCmds() {
	addDraftFlags(shareCmd)
	shareCmd.Flags().Bool("print-only", false, "Print the text without copying it")
	rootCmd.AddCommand(shareCmd, defineCmd)
}
