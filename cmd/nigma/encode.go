package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newEncodeCmd builds the encode command.
func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encode [message]",
		Short:   "Encode a message with a classical cipher",
		Example: `  nigma encode --cipher caesar --key 3 "ATTACK AT DAWN"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, false)
		},
	}
	addCipherFlags(cmd)

	return cmd
}

// newDecodeCmd builds the decode command.
func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decode [message]",
		Short:   "Decode a message with a classical cipher",
		Example: `  nigma decode --cipher caesar --key 3 "DWWDFN DW GDZQ"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, true)
		},
	}
	addCipherFlags(cmd)

	return cmd
}

// addCipherFlags attaches the flags shared by encode and decode.
func addCipherFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("cipher", "c", "caesar", "cipher family: "+strings.Join(cipherNames(), ", "))
	cmd.Flags().StringP("key", "k", "", "primary key (integer, keyword or permutation, per cipher)")
	cmd.Flags().String("key2", "", "secondary key (two-square / adfgvx / quagmire)")
	cmd.Flags().String("indicator", "", "indicator letter (quagmire4)")
}

// runTransform builds the requested cipher and runs one direction.
func runTransform(cmd *cobra.Command, args []string, decoding bool) error {
	name, _ := cmd.Flags().GetString("cipher")
	key, _ := cmd.Flags().GetString("key")
	key2, _ := cmd.Flags().GetString("key2")
	indicator, _ := cmd.Flags().GetString("indicator")

	c, err := buildCipher(name, strings.Join(args, " "), key, key2, indicator)
	if err != nil {
		return err
	}

	var out string
	if decoding {
		out, err = c.Decode()
	} else {
		out, err = c.Encode()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	cmd.Println(out)

	return nil
}
