package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lazharichir/dealer/cards"
	"github.com/lazharichir/dealer/dealer"
)

func newDealCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "deal <players>",
		Short: "Deal one shuffled deck and print the hands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := dealer.NewService(dealer.WithLogger(slog.New(slog.NewJSONHandler(io.Discard, nil))))

			result, err := svc.DealRaw(cmd.Context(), args[0])
			if err != nil {
				return errors.New(dealer.Message(err))
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return renderHands(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the hands as JSON")
	return cmd
}

func renderHands(w io.Writer, result cards.DealResult) error {
	data := pterm.TableData{{"Player", "Cards", "Hand"}}
	for i, hand := range result {
		cell := hand.String()
		if !hand.Dealt() {
			cell = "(no hand)"
		}
		data = append(data, []string{strconv.Itoa(i), strconv.Itoa(len(hand)), cell})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
