package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/csheth/newsreframer/internal/reframe"
	"github.com/csheth/newsreframer/internal/rewrite"
)

const defaultPrintWidth = 80

func newRewriteCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "rewrite <topic...>",
		Short: "Reframe a topic once and print the cards",
		Example: `  reframer rewrite wildfires in California
  reframer rewrite --api-url https://reframer.example.com "chip export rules"
  reframer rewrite --json student loan interest`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, opts, false)
			if err != nil {
				return err
			}
			topic := strings.Join(args, " ")
			result, err := app.client().Rewrite(cmd.Context(), topic)
			if err != nil {
				if rewrite.IsValidation(err) {
					cmd.PrintErrln(cmd.UsageString())
				}
				return errors.New(rewrite.Message(err))
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), result.Outputs)
			}
			printOutputs(cmd.OutOrStdout(), result.Outputs, printWidth(cmd.OutOrStdout()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the outputs as a JSON object in response order")
	return cmd
}

func printJSON(w io.Writer, outputs rewrite.Outputs) error {
	data, err := json.Marshal(outputs)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printWidth uses the terminal width when writing to one.
func printWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultPrintWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultPrintWidth
	}
	return width
}

func printOutputs(w io.Writer, outputs rewrite.Outputs, width int) {
	for i, entry := range outputs.Entries() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		label := reframe.Label(entry.Key)
		fmt.Fprintln(w, label)
		fmt.Fprintln(w, strings.Repeat("─", len([]rune(label))))

		body := reframe.Format(entry.Key, entry.Value)
		switch body.Kind {
		case reframe.BodyHeadline:
			fmt.Fprintln(w, wordwrap.String(body.Blocks[0], width))
		case reframe.BodyBullets:
			for _, item := range body.Blocks {
				fmt.Fprintln(w, "• "+strings.ReplaceAll(wordwrap.String(item, width-2), "\n", "\n  "))
			}
		default:
			fmt.Fprintln(w, wordwrap.String(strings.Join(body.Blocks, "\n\n"), width))
		}
	}
}
