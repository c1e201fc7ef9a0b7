package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlexanderYastrebov/wideint"
	"github.com/AlexanderYastrebov/wideint/mimc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) hashCommand() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "hash [file|-]",
		Short: "Compute the MiMC7 hash of a file, standard input or text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.format()
			if err != nil {
				return err
			}

			var r io.Reader
			switch {
			case cmd.Flags().Changed("text"):
				if len(args) > 0 {
					return errors.New("both --text and file given")
				}
				r = strings.NewReader(text)
			case len(args) == 0 || args[0] == "-":
				r = a.in
			default:
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			h := mimc.New()
			n, err := io.Copy(h, r)
			if err != nil {
				return errors.Wrap(err, "failed to read input")
			}
			sum := h.Sum(nil)
			a.log.Debug("Hashed input", zap.Int64("bytes", n))

			if format == "hex" {
				a.println(fmt.Sprintf("0x%x", sum))
			} else {
				a.println(wideint.FromBytes[wideint.U256](sum).String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "text to hash")

	return cmd
}

func (a *app) constantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Print the MiMC7 round constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := a.format()
			if err != nil {
				return err
			}
			for i, c := range mimc.Constants() {
				if format == "hex" {
					a.println(i, c.Hex())
				} else {
					a.println(i, c.String())
				}
			}
			return nil
		},
	}
}
