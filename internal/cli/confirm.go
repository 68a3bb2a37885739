package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var confirmCmd = LeafCommand{
	Use:   "confirm",
	Short: "List the distinct order/task codes to commit for this snapshot",
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip the confirmation prompt"},
	},
	StrFlags: []StringFlag{
		{Name: "plan", Usage: "path to the schedule payload JSON"},
		{Name: "out", Usage: "write the code list to a file instead of stdout"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm := NewConfirmFunc()
		if yesFlag, _ := cmd.Flags().GetBool("yes"); yesFlag {
			confirm = AlwaysYes()
		}
		return runConfirm(cmd, confirm)
	},
}.Build()

func runConfirm(cmd *cobra.Command, confirm ConfirmFunc) error {
	payload, err := loadPayload(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	codes := payload.ConfirmationCodes()
	if len(codes) == 0 {
		_, _ = fmt.Fprintln(w, "No codes to confirm.")
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Confirm %d codes from snapshot %s?", len(codes), payload.Fingerprint()))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, "Aborted.")
		return nil
	}

	outFlag, _ := cmd.Flags().GetString("out")
	if outFlag != "" {
		if err := os.WriteFile(outFlag, []byte(strings.Join(codes, "\n")+"\n"), 0644); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "Wrote %d codes to %s\n", len(codes), outFlag)
		return nil
	}

	for _, code := range codes {
		_, _ = fmt.Fprintln(w, code)
	}
	return nil
}
